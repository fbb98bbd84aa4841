package acclaim

import (
	"fmt"

	"github.com/rc-chuah/acclaim/types"
)

// NewOption builds an immutable Option keyed by key from the supplied
// configuration functions.
//
// Usage example:
//
//	opt, err := NewOption("volume",
//	    WithSwitches("-v", "--volume"),
//	    WithDescription("playback volume"),
//	    WithKind(types.KindFloat),
//	    WithArityBounds(1, 0),
//	)
//	if err != nil {
//	    // handle error
//	}
func NewOption(key string, configs ...ConfigureOptionFunc) (*Option, error) {
	cfg := Config{}
	if err := cfg.Set(configs...); err != nil {
		return nil, err
	}

	return cfg.Build(key)
}

// Set configures the Config instance with the provided
// ConfigureOptionFunc(s), and returns an error if a configuration
// results in an error.
func (cfg *Config) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(cfg, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithSwitches sets the switch strings matching the option on the
// command line, dash prefixes included. Both short ("-v") and long
// ("--volume") forms are accepted; anything else is rejected.
func WithSwitches(names ...string) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		for _, name := range names {
			if !IsSwitch(name) {
				*err = fmt.Errorf("%w: '%s'", ErrBadSwitch, name)
				return
			}
		}
		cfg.Names = append(cfg.Names, names...)
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Description = description
	}
}

// WithKind selects the registry type which coerces the option's raw
// parameters. Unset, the option produces strings.
func WithKind(kind types.Kind) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Kind = kind
	}
}

// WithArity sets the option's parameter-count contract.
func WithArity(arity Arity) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Arity = arity
	}
}

// WithArityBounds sets the parameter-count contract from its two
// bounds: minimum required parameters and additional optional ones,
// where a negative optional count means unlimited.
func WithArityBounds(minimum, optional int) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Arity = NewArity(minimum, optional)
	}
}

// WithDefault sets the value seeded for the option before parsing.
// An explicit default takes precedence over the default registered for
// the option's kind, including an explicit nil.
func WithDefault(value any) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Default = value
		cfg.HasDefault = true
	}
}

// SetRequired when true, the option must be supplied on the command-line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Required = required
	}
}

// WithOnMultiple selects the policy applied when the option matches
// more than one token in a single parse.
func WithOnMultiple(policy OnMultiple) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.OnMultiple = policy
	}
}

// WithHandler installs a custom handler invoked on every match in place
// of default value assignment. The handler decides what, if anything,
// lands in the result mapping.
func WithHandler(handler Handler) ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Handler = handler
	}
}

// AsPositional declares the option positional: it matches any token
// which is neither a switch nor a separator, and cannot carry switch
// strings of its own.
func AsPositional() ConfigureOptionFunc {
	return func(cfg *Config, err *error) {
		cfg.Positional = true
	}
}
