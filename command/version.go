package command

import (
	"fmt"

	"github.com/rc-chuah/acclaim"
)

const versionOptionKey = "version"

// AddVersion installs the version surfaces on cmd: a -v/--version flag
// and a version subcommand. Both render through PrintVersion and
// short-circuit the run.
func AddVersion(cmd *Command) error {
	opt, err := acclaim.NewOption(versionOptionKey,
		acclaim.WithSwitches("-v", "--version"),
		acclaim.WithDescription("show version and exit"),
		acclaim.WithHandler(func(vals acclaim.Values, params []any) {
			vals[versionOptionKey] = true
		}),
	)
	if err != nil {
		return err
	}
	cmd.AddOptions(opt)

	versionCmd := New("version", WithDescription("show version information"))
	versionCmd.role = roleVersion
	cmd.AddSubcommands(versionCmd)

	return nil
}

// PrintVersion writes "name version" for the command's root, plus the
// root's description when one is set. Commands without a declared
// version report "dev".
func (c *Command) PrintVersion() {
	root := c.Root()
	version := root.version
	if version == "" {
		version = "dev"
	}

	writer := c.Output()
	_, _ = fmt.Fprintf(writer, "%s %s\n", root.name, version)
	if root.description != "" {
		_, _ = fmt.Fprintln(writer, root.description)
	}
}
