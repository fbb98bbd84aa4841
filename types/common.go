// Package types holds the conversion registry which turns raw
// command-line parameters into typed values, keyed by open-ended type
// tags. A pre-populated default registry covers the stock tags; callers
// extend it (or build their own) before parsing begins.
package types

import (
	"errors"
)

// Kind names a registry entry. The tag set is open: any string can be
// registered, the constants below only cover the built-in handlers.
type Kind string

const (
	KindString   Kind = "string"   // identity, the default for options without an explicit kind
	KindSymbol   Kind = "symbol"   // interned name (Symbol)
	KindBool     Kind = "bool"     // strconv.ParseBool syntax
	KindInt      Kind = "int"      // int, base prefixes honored (0b, 0o, 0x)
	KindInt64    Kind = "int64"    // int64, base prefixes honored
	KindUint     Kind = "uint"     // uint, base prefixes honored
	KindUint64   Kind = "uint64"   // uint64, base prefixes honored
	KindFloat32  Kind = "float32"  // float32
	KindFloat64  Kind = "float64"  // float64
	KindRational Kind = "rational" // *big.Rat, accepts "22/7" and decimal forms
	KindComplex  Kind = "complex"  // complex128, accepts "1+2i"
	KindDecimal  Kind = "decimal"  // *big.Float, arbitrary-precision decimal
	KindDate     Kind = "date"     // time.Time via permissive date parsing
	KindTime     Kind = "time"     // time.Time via permissive date parsing
	KindDateTime Kind = "datetime" // time.Time via permissive date parsing
	KindDuration Kind = "duration" // time.Duration syntax ("1h30m")
	KindPath     Kind = "path"     // lexically cleaned file path, no I/O
	KindURI      Kind = "uri"      // *url.URL, syntactic only
	KindUUID     Kind = "uuid"     // uuid.UUID
)

// Symbol is the interned-name value produced by KindSymbol entries.
type Symbol string

// Converter coerces one raw command-line parameter into a typed value.
// Converters are pure functions: no I/O, no shared state, no retries.
type Converter func(raw string) (any, error)

// Entry couples a Converter with an optional default supplier. A nil
// Default means values of this kind carry no type-level default.
type Entry struct {
	Convert Converter
	Default func() any
}

var (
	ErrNoHandler = errors.New("no handler registered for type")
	ErrCoerce    = errors.New("cannot coerce value")
)
