package acclaim

import (
	"fmt"
)

// Values is the result mapping of a parse: option key to converted
// value. Flags store booleans, single-parameter options store the
// converted scalar, and everything else stores a slice of converted
// values. Entries exist for every declared option, parsed or not.
type Values map[string]any

// Has reports whether a value exists under key.
func (v Values) Has(key string) bool {
	_, ok := v[key]

	return ok
}

// Get returns the value stored under key and true, or nil and false
// when the key was never declared.
func (v Values) Get(key string) (any, bool) {
	value, ok := v[key]

	return value, ok
}

// GetOrDefault returns the value stored under key, or fallback when the
// key is absent or holds nil.
func (v Values) GetOrDefault(key string, fallback any) any {
	value, ok := v[key]
	if !ok || value == nil {
		return fallback
	}

	return value
}

// GetString returns the string stored under key.
func (v Values) GetString(key string) (string, error) {
	return As[string](v, key)
}

// GetBool returns the bool stored under key.
func (v Values) GetBool(key string) (bool, error) {
	return As[bool](v, key)
}

// GetInt returns the int stored under key.
func (v Values) GetInt(key string) (int, error) {
	return As[int](v, key)
}

// GetFloat returns the float64 stored under key.
func (v Values) GetFloat(key string) (float64, error) {
	return As[float64](v, key)
}

// GetStrings returns the list stored under key with every element
// asserted to string. Both []string values and []any values whose
// elements are all strings qualify.
func (v Values) GetStrings(key string) ([]string, error) {
	value, ok := v.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}

	switch list := value.(type) {
	case []string:
		return list, nil
	case []any:
		strs := make([]string, 0, len(list))
		for _, item := range list {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: '%s' holds a %T element, wanted string", ErrWrongValueType, key, item)
			}
			strs = append(strs, str)
		}

		return strs, nil
	default:
		return nil, fmt.Errorf("%w: '%s' holds %T, wanted a list of strings", ErrWrongValueType, key, value)
	}
}

// GetList returns the []any stored under key.
func (v Values) GetList(key string) ([]any, error) {
	return As[[]any](v, key)
}

// As returns the value stored under key asserted to T. A missing key
// yields ErrKeyNotFound, a value of a different type ErrWrongValueType.
func As[T any](v Values, key string) (T, error) {
	var zero T
	value, ok := v.Get(key)
	if !ok {
		return zero, fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: '%s' holds %T, wanted %T", ErrWrongValueType, key, value, zero)
	}

	return typed, nil
}
