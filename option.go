package acclaim

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/rc-chuah/acclaim/types"
)

// Config collects the declarative fields of an option under construction.
// Zero values mean "not set": an empty Kind falls back to the string
// type and a zero Arity declares a flag. Configs freeze into immutable
// Options through Build or NewOption.
type Config struct {
	// Names holds the switch strings matching the option, dash prefixes
	// included. Leave empty to derive a switch from the key, or set
	// Positional to declare a keyless option instead.
	Names []string
	// Description is free text consumed by help rendering.
	Description string
	// Kind names the registry entry which coerces raw parameters.
	Kind types.Kind
	// Arity bounds the option's parameter count.
	Arity Arity
	// Default pre-populates the result mapping before parsing and takes
	// precedence over the kind's registered default. Set HasDefault when
	// declaring nil as an explicit default.
	Default    any
	HasDefault bool
	// Required makes the parse fail when no token matches the option.
	Required bool
	// OnMultiple selects the multiplicity policy.
	OnMultiple OnMultiple
	// Handler, when non-nil, replaces default value assignment.
	Handler Handler
	// Positional declares an option without switches, matching any
	// token which is neither a switch nor a separator.
	Positional bool
}

// Option is one immutable command-line option definition. The parser
// reads it through accessors during a parse, and the command/help layer
// consumes the same accessors for rendering.
type Option struct {
	key         string
	names       []string
	description string
	kind        types.Kind
	arity       Arity
	defValue    any
	hasDefault  bool
	required    bool
	onMultiple  OnMultiple
	handler     Handler
}

// Build validates the configuration and freezes it into an Option keyed
// by key. Switch strings must look like switches; an option declared
// without switches derives one from its key unless it is positional.
func (cfg Config) Build(key string) (*Option, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	if cfg.Positional && len(cfg.Names) > 0 {
		return nil, fmt.Errorf("%w: positional option '%s' cannot declare switches", ErrBadSwitch, key)
	}

	for _, name := range cfg.Names {
		if !IsSwitch(name) {
			return nil, fmt.Errorf("%w: '%s' for option '%s'", ErrBadSwitch, name, key)
		}
	}

	names := make([]string, len(cfg.Names))
	copy(names, cfg.Names)
	if len(names) == 0 && !cfg.Positional {
		derived := deriveSwitch(key)
		if !IsSwitch(derived) {
			return nil, fmt.Errorf("%w: cannot derive a switch from key '%s'", ErrBadSwitch, key)
		}
		names = []string{derived}
	}

	kind := cfg.Kind
	if kind == "" {
		kind = types.KindString
	}

	return &Option{
		key:         key,
		names:       names,
		description: cfg.Description,
		kind:        kind,
		arity:       NewArity(cfg.Arity.Minimum, cfg.Arity.Optional),
		defValue:    cfg.Default,
		hasDefault:  cfg.HasDefault || cfg.Default != nil,
		required:    cfg.Required,
		onMultiple:  cfg.OnMultiple,
		handler:     cfg.Handler,
	}, nil
}

// deriveSwitch derives a switch from an option key: single-rune keys
// become short switches, longer keys long kebab-case switches.
func deriveSwitch(key string) string {
	if utf8.RuneCountInString(key) == 1 {
		return "-" + key
	}

	return "--" + strcase.ToKebab(key)
}

// Key returns the identifier under which the option's value lands in
// the result mapping.
func (o *Option) Key() string {
	return o.key
}

// Names returns a copy of the option's switch strings; an empty result
// means the option is positional.
func (o *Option) Names() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)

	return names
}

// Description returns the free-text description used by help output.
func (o *Option) Description() string {
	return o.description
}

// Kind returns the type tag coercing the option's raw parameters.
func (o *Option) Kind() types.Kind {
	return o.kind
}

// Arity returns the option's parameter-count contract.
func (o *Option) Arity() Arity {
	return o.arity
}

// Default returns the declared default value and whether one was
// declared at all.
func (o *Option) Default() (any, bool) {
	return o.defValue, o.hasDefault
}

// Required reports whether a parse fails when the option is absent.
func (o *Option) Required() bool {
	return o.required
}

// OnMultiple returns the option's multiplicity policy.
func (o *Option) OnMultiple() OnMultiple {
	return o.onMultiple
}

// Handler returns the custom handler, or nil when default assignment
// applies.
func (o *Option) Handler() Handler {
	return o.handler
}

// Positional reports whether the option matches bare tokens instead of
// switches.
func (o *Option) Positional() bool {
	return len(o.names) == 0
}

// Flag reports whether the option takes no parameters.
func (o *Option) Flag() bool {
	return o.arity.Zero()
}

// Matches reports whether token invokes this option: exact string
// equality against one of its switches, or, for positional options, any
// token which is neither a switch nor a separator.
func (o *Option) Matches(token string) bool {
	if o.Positional() {
		return !IsSwitch(token) && !IsSeparator(token)
	}

	for _, name := range o.names {
		if name == token {
			return true
		}
	}

	return false
}

// ConvertParameters coerces each raw parameter, in order, through the
// registry entry for the option's kind. An unregistered kind surfaces
// the registry's configuration error; a rejected parameter surfaces the
// coercion failure, both wrapped with the option key.
func (o *Option) ConvertParameters(registry *types.Registry, params ...string) ([]any, error) {
	entry, err := registry.Lookup(o.kind)
	if err != nil {
		return nil, fmt.Errorf("option '%s': %w", o.key, err)
	}

	converted := make([]any, 0, len(params))
	for _, param := range params {
		value, err := entry.Convert(param)
		if err != nil {
			return nil, fmt.Errorf("option '%s': %w", o.key, err)
		}
		converted = append(converted, value)
	}

	return converted, nil
}

// DefaultValue resolves the value seeded for the option before parsing:
// the declared default when present, else the kind's registered default,
// else nil.
func (o *Option) DefaultValue(registry *types.Registry) any {
	if o.hasDefault {
		return o.defValue
	}

	if value, ok := registry.DefaultFor(o.kind); ok {
		return value
	}

	return nil
}

// String returns a one-line summary of the option.
func (o *Option) String() string {
	name := strings.Join(o.names, ", ")
	if o.Positional() {
		name = "<" + o.key + ">"
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s %s", name, o.describeDefault(), o.describeRequired()))
}

func (o *Option) describeDefault() string {
	if o.hasDefault && o.defValue != nil {
		return fmt.Sprintf("\"%s\" (defaults to: %v)", o.description, o.defValue)
	}

	return fmt.Sprintf("\"%s\"", o.description)
}

func (o *Option) describeRequired() string {
	requiredOrOptional := "optional"
	if o.required {
		requiredOrOptional = "required"
	}

	return "(" + requiredOrOptional + ")"
}
