// Package command layers a command tree on top of the option parser:
// each command carries its own option collection, subcommands nest to
// any depth, and Run walks the tree parsing each level's options before
// descending along the first leftover token. Actions matched during the
// descent are queued and executed root-most first once the walk ends.
//
// Help and version surfaces are opt-in through AddHelp and AddVersion,
// which install the conventional flags and subcommands. An explicit
// help or version request short-circuits the run before any queued
// action executes; the caller decides what exit code that maps to.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ef-ds/deque"

	"github.com/rc-chuah/acclaim"
	"github.com/rc-chuah/acclaim/types/orderedmap"
)

var (
	// ErrHelpRequested reports that Run rendered help instead of
	// executing actions. Callers usually map it to exit code 0.
	ErrHelpRequested = errors.New("help requested")
	// ErrVersionRequested reports that Run rendered version information
	// instead of executing actions.
	ErrVersionRequested = errors.New("version requested")
)

// Action is the work a command performs. It receives the values parsed
// at the command's own level and the leftover tokens of the whole run.
type Action func(vals acclaim.Values, args []string) error

// role distinguishes user commands from the built-in help and version
// subcommands, which short-circuit the run instead of queueing actions.
type role int

const (
	roleUser role = iota
	roleHelp
	roleVersion
)

// Command is one node in a command tree. Options declared on a command
// are parsed only at its own level; subcommands bring their own.
type Command struct {
	name        string
	description string
	version     string
	role        role
	options     *orderedmap.OrderedMap[string, *acclaim.Option]
	subcommands *orderedmap.OrderedMap[string, *Command]
	parent      *Command
	action      Action
	writer      io.Writer
}

// invocation is one queued action with the values its level parsed.
// Leftover tokens bind at drain time, once the full descent is known.
type invocation struct {
	action Action
	vals   acclaim.Values
}

// New creates a command and applies the given configuration functions.
func New(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		name:        name,
		options:     orderedmap.New[string, *acclaim.Option](),
		subcommands: orderedmap.New[string, *Command](),
	}
	cmd.Set(configs...)

	return cmd
}

// Name returns the token invoking this command on the command line.
func (c *Command) Name() string {
	return c.name
}

// Description returns the free-text description used by help output.
func (c *Command) Description() string {
	return c.description
}

// Version returns the version string declared on this command.
func (c *Command) Version() string {
	return c.version
}

// FullName returns the space-joined path from the root command down to
// this one.
func (c *Command) FullName() string {
	if c.parent == nil {
		return c.name
	}

	return c.parent.FullName() + " " + c.name
}

// Root returns the top of the command tree.
func (c *Command) Root() *Command {
	cmd := c
	for cmd.parent != nil {
		cmd = cmd.parent
	}

	return cmd
}

// Output returns the writer help and version output go to: the first
// writer configured on the path up to the root, or standard output.
func (c *Command) Output() io.Writer {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.writer != nil {
			return cmd.writer
		}
	}

	return os.Stdout
}

// AddOptions declares options on this command, in order. A re-declared
// key replaces the stored option but keeps its position.
func (c *Command) AddOptions(options ...*acclaim.Option) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		c.options.Set(opt.Key(), opt)
	}
}

// Option declares a single option on this command from configuration
// functions, sparing the caller the NewOption plumbing.
func (c *Command) Option(key string, configs ...acclaim.ConfigureOptionFunc) error {
	opt, err := acclaim.NewOption(key, configs...)
	if err != nil {
		return err
	}
	c.AddOptions(opt)

	return nil
}

// AddSubcommands attaches subcommands to this command, in order, and
// reparents them here. A re-declared name replaces the stored command.
func (c *Command) AddSubcommands(subcommands ...*Command) {
	for _, sub := range subcommands {
		if sub == nil {
			continue
		}
		sub.parent = c
		c.subcommands.Set(sub.name, sub)
	}
}

// Options returns the command's own options in declaration order.
func (c *Command) Options() []*acclaim.Option {
	options := make([]*acclaim.Option, 0, c.options.Count())
	for pair := c.options.Front(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value())
	}

	return options
}

// Subcommands returns the attached subcommands in declaration order.
func (c *Command) Subcommands() []*Command {
	subcommands := make([]*Command, 0, c.subcommands.Count())
	for pair := c.subcommands.Front(); pair != nil; pair = pair.Next() {
		subcommands = append(subcommands, pair.Value())
	}

	return subcommands
}

// Lookup returns the direct subcommand registered under name, if any.
func (c *Command) Lookup(name string) (*Command, bool) {
	return c.subcommands.Get(name)
}

// Run parses args against this command's options, descends into a
// subcommand when the first leftover token names one, and repeats until
// the walk ends. Matched actions queue up during the descent and run
// root-most first with the final leftover tokens.
//
// A help or version flag anywhere in args renders before any queued
// action runs and surfaces as ErrHelpRequested or ErrVersionRequested.
// Help describes the deepest command reached, so "app deploy --help"
// renders deploy's usage no matter which level consumed the flag.
//
// When the walk ends with nothing queued, Run renders the deepest
// command's help and returns nil.
func (c *Command) Run(args []string) error {
	pending := deque.New()
	current := c
	helpRequested := false
	versionRequested := false

	for {
		parser := acclaim.NewParser(args, current.Options()...)
		vals, err := parser.Parse()
		if err != nil {
			if helpRequested {
				current.PrintHelp()
				return ErrHelpRequested
			}
			if versionRequested {
				current.PrintVersion()
				return ErrVersionRequested
			}

			return fmt.Errorf("%s: %w", current.FullName(), err)
		}

		if requested, _ := acclaim.As[bool](vals, helpOptionKey); requested {
			helpRequested = true
		}
		if requested, _ := acclaim.As[bool](vals, versionOptionKey); requested {
			versionRequested = true
		}

		if current.action != nil {
			pending.PushBack(invocation{action: current.action, vals: vals})
		}

		args = parser.Args()
		sub, ok := current.nextCommand(args)
		if !ok {
			break
		}

		args = args[1:]
		switch sub.role {
		case roleHelp:
			target := current
			if len(args) > 0 {
				if named, found := current.Lookup(args[0]); found && named.role == roleUser {
					target = named
				}
			}
			target.PrintHelp()
			return ErrHelpRequested
		case roleVersion:
			current.PrintVersion()
			return ErrVersionRequested
		default:
			current = sub
		}
	}

	if helpRequested {
		current.PrintHelp()
		return ErrHelpRequested
	}
	if versionRequested {
		current.PrintVersion()
		return ErrVersionRequested
	}

	if pending.Len() == 0 {
		current.PrintHelp()
		return nil
	}

	for pending.Len() > 0 {
		item, _ := pending.PopFront()
		inv := item.(invocation)
		if err := inv.action(inv.vals, args); err != nil {
			return err
		}
	}

	return nil
}

// nextCommand resolves the subcommand the descent continues into: the
// first leftover token when it names one.
func (c *Command) nextCommand(leftovers []string) (*Command, bool) {
	if len(leftovers) == 0 {
		return nil, false
	}

	return c.Lookup(leftovers[0])
}
