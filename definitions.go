package acclaim

import (
	"errors"
	"fmt"
)

// ConfigureOptionFunc is used when declaring options through NewOption.
type ConfigureOptionFunc func(cfg *Config, err *error)

// Handler replaces the default value-assignment behavior of one option.
// A flag match invokes the handler with a nil parameter list; a
// parameterized match passes the converted parameters. The handler owns
// the mutation of vals entirely: no default assignment runs for the
// option when a handler is set.
type Handler func(vals Values, params []any)

// OnMultiple selects what happens when an option matches more than one
// token during a single parse.
type OnMultiple int

const (
	// Overwrite keeps the last match's value.
	Overwrite OnMultiple = iota
	// Append concatenates each match's values onto the previous ones.
	Append
	// Collect merges exactly like Append; the separate name keeps
	// declarations readable when the option gathers a list by design.
	Collect
	// Raise fails the parse when the option matches twice, before any
	// extraction begins.
	Raise
)

// String returns the policy name used in declarations and diagnostics.
func (m OnMultiple) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case Append:
		return "append"
	case Collect:
		return "collect"
	case Raise:
		return "raise"
	default:
		return fmt.Sprintf("on-multiple(%d)", int(m))
	}
}

var (
	ErrRequired       = errors.New("missing required option")
	ErrRepeated       = errors.New("option does not allow repetition")
	ErrArgumentCount  = errors.New("wrong number of arguments")
	ErrBadSwitch      = errors.New("invalid switch")
	ErrEmptyKey       = errors.New("option key must not be empty")
	ErrKeyNotFound    = errors.New("key not found")
	ErrWrongValueType = errors.New("wrong value type")
)

// MissingRequiredError reports a required option which matched no token
// in the whole input sequence. It is raised before any extraction.
type MissingRequiredError struct {
	Option *Option
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrRequired, e.Option.Key())
}

func (e *MissingRequiredError) Unwrap() error {
	return ErrRequired
}

// RepeatedOptionError reports an option declared with Raise which
// matched more than one token. It is raised before any extraction.
type RepeatedOptionError struct {
	Option *Option
	Count  int
}

func (e *RepeatedOptionError) Error() string {
	return fmt.Sprintf("%s: '%s' matched %d times", ErrRepeated, e.Option.Key(), e.Count)
}

func (e *RepeatedOptionError) Unwrap() error {
	return ErrRepeated
}

// ArityError reports a matched option whose parameter window closed
// before reaching the arity's minimum. Found carries the number of
// parameters collected before the boundary.
type ArityError struct {
	Key   string
	Found int
	Arity Arity
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: option '%s' expects %s, got %d", ErrArgumentCount, e.Key, e.Arity, e.Found)
}

func (e *ArityError) Unwrap() error {
	return ErrArgumentCount
}
