package types

import (
	"fmt"
	"math/big"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// NewBuiltinRegistry creates a Registry pre-populated with entries for
// every built-in Kind. None of the built-ins carry a type-level default;
// the supplier slot exists for caller registrations.
func NewBuiltinRegistry() *Registry {
	registry := NewRegistry()
	registry.RegisterConverter(toString, KindString)
	registry.RegisterConverter(toSymbol, KindSymbol)
	registry.RegisterConverter(toBool, KindBool)
	registry.RegisterConverter(toInt, KindInt)
	registry.RegisterConverter(toInt64, KindInt64)
	registry.RegisterConverter(toUint, KindUint)
	registry.RegisterConverter(toUint64, KindUint64)
	registry.RegisterConverter(toFloat32, KindFloat32)
	registry.RegisterConverter(toFloat64, KindFloat64)
	registry.RegisterConverter(toRational, KindRational)
	registry.RegisterConverter(toComplex, KindComplex)
	registry.RegisterConverter(toDecimal, KindDecimal)
	registry.RegisterConverter(toTime, KindDate, KindTime, KindDateTime)
	registry.RegisterConverter(toDuration, KindDuration)
	registry.RegisterConverter(toPath, KindPath)
	registry.RegisterConverter(toURI, KindURI)
	registry.RegisterConverter(toUUID, KindUUID)

	return registry
}

func toString(raw string) (any, error) {
	return raw, nil
}

func toSymbol(raw string) (any, error) {
	return Symbol(raw), nil
}

func toBool(raw string) (any, error) {
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid bool", ErrCoerce, raw)
	}

	return val, nil
}

// Integer conversions accept base prefixes (0x, 0o, 0b) the way the
// standard flag package does.
func toInt(raw string) (any, error) {
	val, err := strconv.ParseInt(raw, 0, strconv.IntSize)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid int", ErrCoerce, raw)
	}

	return int(val), nil
}

func toInt64(raw string) (any, error) {
	val, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid int64", ErrCoerce, raw)
	}

	return val, nil
}

func toUint(raw string) (any, error) {
	val, err := strconv.ParseUint(raw, 0, strconv.IntSize)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid uint", ErrCoerce, raw)
	}

	return uint(val), nil
}

func toUint64(raw string) (any, error) {
	val, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid uint64", ErrCoerce, raw)
	}

	return val, nil
}

func toFloat32(raw string) (any, error) {
	val, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid float32", ErrCoerce, raw)
	}

	return float32(val), nil
}

func toFloat64(raw string) (any, error) {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid float64", ErrCoerce, raw)
	}

	return val, nil
}

func toRational(raw string) (any, error) {
	val, ok := new(big.Rat).SetString(raw)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a valid rational", ErrCoerce, raw)
	}

	return val, nil
}

func toComplex(raw string) (any, error) {
	val, err := strconv.ParseComplex(raw, 128)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid complex number", ErrCoerce, raw)
	}

	return val, nil
}

func toDecimal(raw string) (any, error) {
	val, ok := new(big.Float).SetString(raw)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a valid decimal", ErrCoerce, raw)
	}

	return val, nil
}

// toTime backs the date, time and datetime kinds. Parsing is permissive
// about input layout and never touches the network or filesystem.
func toTime(raw string) (any, error) {
	val, err := dateparse.ParseLocal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid date/time", ErrCoerce, raw)
	}

	return val, nil
}

func toDuration(raw string) (any, error) {
	val, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid duration", ErrCoerce, raw)
	}

	return val, nil
}

// toPath cleans the path lexically. No filesystem access happens here,
// absent files are a caller concern.
func toPath(raw string) (any, error) {
	return filepath.Clean(raw), nil
}

func toURI(raw string) (any, error) {
	val, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid URI", ErrCoerce, raw)
	}

	return val, nil
}

func toUUID(raw string) (any, error) {
	val, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' is not a valid UUID", ErrCoerce, raw)
	}

	return val, nil
}
