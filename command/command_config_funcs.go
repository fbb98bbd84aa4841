package command

import (
	"io"

	"github.com/rc-chuah/acclaim"
)

// ConfigureCommandFunc configures a Command under construction.
type ConfigureCommandFunc func(cmd *Command)

// Set applies the provided configuration functions to the command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithDescription sets the description shown in help output.
func WithDescription(description string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.description = description
	}
}

// WithVersion sets the version string reported by the version surfaces
// installed through AddVersion.
func WithVersion(version string) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.version = version
	}
}

// WithAction sets the function run when the command is invoked.
func WithAction(action Action) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.action = action
	}
}

// WithOptions declares options on the command.
func WithOptions(options ...*acclaim.Option) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.AddOptions(options...)
	}
}

// WithSubcommands attaches subcommands to the command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.AddSubcommands(subcommands...)
	}
}

// WithOutput directs help and version output to writer instead of
// standard output. Subcommands inherit it unless they set their own.
func WithOutput(writer io.Writer) ConfigureCommandFunc {
	return func(cmd *Command) {
		cmd.writer = writer
	}
}
