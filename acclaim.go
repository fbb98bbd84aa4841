// Package acclaim provides declarative command-line option parsing.
//
// Options are declared up front (switches, description, parameter type,
// arity, default, multiplicity policy, optional handler) and a Parser
// consumes a token sequence against that collection in fixed phases:
//
//	Preprocess - combined short switches split apart (-abc → -a -b -c) and
//	             switch=params forms normalize (--s=1,2 → --s 1 2)
//	Validate   - required and repetition contracts checked over the whole
//	             sequence before anything is consumed
//	Extract    - a single left-to-right pass collects each matched option's
//	             parameter window, coerces it through the type registry and
//	             assembles the result mapping; consumed tokens are removed
//	             in one compaction at the end
//
// Tokens no option consumed stay in the sequence in their original
// relative order. Every declared option ends up in the result mapping,
// parsed or not, seeded with its declared or type-level default.
package acclaim

import (
	"reflect"

	"github.com/rc-chuah/acclaim/parse"
	"github.com/rc-chuah/acclaim/types"
	"github.com/rc-chuah/acclaim/types/orderedmap"
)

// Parser matches a token sequence against an ordered option collection.
// It owns the sequence for the duration of the parse and mutates it in
// place; the options and the registry are only read. Distinct Parser
// instances over independent inputs are safe to run concurrently.
type Parser struct {
	sequence *parse.Sequence
	options  *orderedmap.OrderedMap[string, *Option]
	registry *types.Registry
}

// NewParser creates a Parser over args. The slice is owned by the
// parser from here on, not copied. Options register in declaration
// order; re-declaring a key replaces the stored option but keeps its
// original position.
func NewParser(args []string, options ...*Option) *Parser {
	parser := &Parser{
		sequence: parse.NewSequence(args),
		options:  orderedmap.New[string, *Option](),
		registry: types.Default(),
	}
	parser.AddOptions(options...)

	return parser
}

// NewParserString creates a Parser over a command line split into
// tokens with shell-style quoting rules.
func NewParserString(line string, options ...*Option) (*Parser, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return NewParser(args, options...), nil
}

// AddOptions registers additional options behind the ones already
// declared. Nil options are skipped; a re-declared key replaces the
// stored option in place.
func (p *Parser) AddOptions(options ...*Option) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		p.options.Set(opt.Key(), opt)
	}
}

// SetRegistry replaces the type registry consulted during parameter
// conversion. The default is the process-wide registry pre-populated
// with the built-in kinds. A nil registry is ignored.
func (p *Parser) SetRegistry(registry *types.Registry) {
	if registry == nil {
		return
	}
	p.registry = registry
}

// Args returns the current token sequence: the raw input before Parse,
// the leftover tokens in their original relative order after. The slice
// is shared with the parser, not copied.
func (p *Parser) Args() []string {
	return p.sequence.Tokens()
}

// Options returns the declared options in declaration order.
func (p *Parser) Options() []*Option {
	options := make([]*Option, 0, p.options.Count())
	for pair := p.options.Front(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value())
	}

	return options
}

// Option returns the option declared under key, if any.
func (p *Parser) Option(key string) (*Option, bool) {
	return p.options.Get(key)
}

// Parse runs the full pipeline over the token sequence and returns the
// result mapping. Consumed tokens are removed from the sequence;
// unrecognized tokens survive in order and are available through Args.
// On error the mapping is nil and the sequence holds the preprocessed
// tokens.
func (p *Parser) Parse() (Values, error) {
	p.Preprocess()

	if err := p.validate(); err != nil {
		return nil, err
	}

	vals := make(Values, p.options.Count())
	p.seedDefaults(vals)

	if err := p.extract(vals); err != nil {
		return nil, err
	}

	return vals, nil
}

// Preprocess normalizes the token sequence in place: first every
// combined short switch splits into one switch per letter, then every
// switch=params form splits into the switch followed by one token per
// comma-separated parameter. Each pass examines the sequence it started
// with; inserted tokens are not re-examined. Running Preprocess over an
// already-normalized sequence changes nothing.
func (p *Parser) Preprocess() {
	p.splitAllCombinedShorts()
	p.splitAllSwitchParams()
}

func (p *Parser) splitAllCombinedShorts() {
	for i := 0; i < p.sequence.Len(); i++ {
		token, err := p.sequence.Token(i)
		if err != nil {
			return
		}

		parts, ok := splitCombinedShorts(token)
		if !ok {
			continue
		}

		if err := p.sequence.Expand(i, parts...); err != nil {
			return
		}
		i += len(parts) - 1
	}
}

func (p *Parser) splitAllSwitchParams() {
	for i := 0; i < p.sequence.Len(); i++ {
		token, err := p.sequence.Token(i)
		if err != nil {
			return
		}

		pieces, ok := splitSwitchParams(token)
		if !ok {
			continue
		}

		if err := p.sequence.Expand(i, pieces...); err != nil {
			return
		}
		i += len(pieces) - 1
	}
}

// validate enforces the static contracts over the whole sequence before
// any consumption: required options must match at least one token,
// raise-on-multiple options at most one.
func (p *Parser) validate() error {
	tokens := p.sequence.Tokens()
	for pair := p.options.Front(); pair != nil; pair = pair.Next() {
		opt := pair.Value()

		count := 0
		for _, token := range tokens {
			if opt.Matches(token) {
				count++
			}
		}

		if opt.Required() && count == 0 {
			return &MissingRequiredError{Option: opt}
		}
		if opt.OnMultiple() == Raise && count > 1 {
			return &RepeatedOptionError{Option: opt, Count: count}
		}
	}

	return nil
}

// seedDefaults enters every declared option's key into the mapping so
// unmatched options still appear with their declared or type-level
// default.
func (p *Parser) seedDefaults(vals Values) {
	for pair := p.options.Front(); pair != nil; pair = pair.Next() {
		opt := pair.Value()
		if _, present := vals[opt.Key()]; present {
			continue
		}
		vals[opt.Key()] = opt.DefaultValue(p.registry)
	}
}

// extract is the single left-to-right pass over the token indices.
// Every option matching a token fires, in declaration order. Deletion
// marks accumulate over the whole pass and are applied once at the end,
// so positions computed early stay valid for matches later in the same
// pass.
func (p *Parser) extract(vals Values) error {
	tokens := p.sequence.Tokens()
	deleted := make(map[int]struct{})

	for i, token := range tokens {
		for pair := p.options.Front(); pair != nil; pair = pair.Next() {
			opt := pair.Value()
			if !opt.Matches(token) {
				continue
			}

			if opt.Flag() {
				deleted[i] = struct{}{}
				p.foundFlag(opt, vals)
				continue
			}

			params := parameterWindow(tokens, i+1, opt.Arity())
			if len(params) < opt.Arity().Minimum {
				return &ArityError{Key: opt.Key(), Found: len(params), Arity: opt.Arity()}
			}

			converted, err := opt.ConvertParameters(p.registry, params...)
			if err != nil {
				return err
			}

			deleted[i] = struct{}{}
			for j := range params {
				deleted[i+1+j] = struct{}{}
			}
			p.foundParams(opt, vals, converted)
		}
	}

	p.sequence.Compact(deleted)

	return nil
}

// parameterWindow collects the parameters following a matched switch:
// contiguous tokens which are neither switches nor separators, capped
// at the arity's total when one exists.
func parameterWindow(tokens []string, start int, arity Arity) []string {
	var params []string
	total, bounded := arity.Total()

	for i := start; i < len(tokens); i++ {
		if bounded && len(params) >= total {
			break
		}
		token := tokens[i]
		if IsSwitch(token) || IsSeparator(token) {
			break
		}
		params = append(params, token)
	}

	return params
}

// foundFlag runs the flag-found behavior: the handler when present is
// the sole mutator, otherwise presence stores true.
func (p *Parser) foundFlag(opt *Option, vals Values) {
	if handler := opt.Handler(); handler != nil {
		handler(vals, nil)
		return
	}

	vals[opt.Key()] = true
}

// foundParams runs the params-found behavior. The handler when present
// is the sole mutator. Otherwise an arity totalling one parameter
// stores the converted scalar and anything else the converted list;
// append and collect policies concatenate onto the existing value, and
// an empty window never overwrites an existing or default value.
func (p *Parser) foundParams(opt *Option, vals Values, converted []any) {
	if handler := opt.Handler(); handler != nil {
		handler(vals, converted)
		return
	}

	if len(converted) == 0 {
		return
	}

	var value any = converted
	if total, bounded := opt.Arity().Total(); bounded && total == 1 {
		value = converted[0]
	}

	switch opt.OnMultiple() {
	case Append, Collect:
		vals[opt.Key()] = appendValues(vals[opt.Key()], value)
	default:
		vals[opt.Key()] = value
	}
}

// appendValues concatenates incoming onto existing, coercing either
// side into a list first: nil contributes nothing, a scalar becomes a
// one-element list, a list contributes its elements regardless of its
// element type, so a []string default flattens instead of nesting.
func appendValues(existing, incoming any) []any {
	return append(asList(existing), asList(incoming)...)
}

func asList(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice {
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}

		return list
	}

	return []any{value}
}
