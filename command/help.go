package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/rc-chuah/acclaim"
	"github.com/rc-chuah/acclaim/util"
)

const (
	helpOptionKey = "help"

	// defaultHelpWidth applies when the output is not a terminal.
	defaultHelpWidth = 80
	// maxSwitchColumn caps the switch column so one long option does not
	// push every description off screen.
	maxSwitchColumn = 30
	minDescColumn   = 20
	columnGap       = 2
)

// AddHelp installs the help surfaces on cmd and, recursively, on every
// user subcommand already attached: a -h/--help flag and a help
// subcommand which renders a named sibling's help ("app help sub").
// Call it after the command tree is assembled.
func AddHelp(cmd *Command) error {
	opt, err := acclaim.NewOption(helpOptionKey,
		acclaim.WithSwitches("-h", "--help"),
		acclaim.WithDescription("show help and exit"),
		acclaim.WithHandler(func(vals acclaim.Values, params []any) {
			vals[helpOptionKey] = true
		}),
	)
	if err != nil {
		return err
	}
	cmd.AddOptions(opt)

	helpCmd := New("help", WithDescription("show help for a command"))
	helpCmd.role = roleHelp
	cmd.AddSubcommands(helpCmd)

	for _, sub := range cmd.Subcommands() {
		if sub.role != roleUser {
			continue
		}
		if err := AddHelp(sub); err != nil {
			return err
		}
	}

	return nil
}

// PrintHelp renders the command's usage, options and subcommands to its
// output writer, wrapped to the terminal width when one is available.
func (c *Command) PrintHelp() {
	data := usageData{
		Synopsis:    synopsis(c),
		Description: c.description,
		Options:     optionRows(c),
		Commands:    commandRows(c),
	}

	_ = usageTmpl.Execute(c.Output(), data)
}

func synopsis(c *Command) string {
	line := c.FullName()
	if c.options.Count() > 0 {
		line += " [options]"
	}
	for _, opt := range c.Options() {
		if opt.Positional() {
			line += " <" + opt.Key() + ">"
		}
	}
	if c.subcommands.Count() > 0 {
		line += " <command>"
	}

	return line
}

// optionRows renders the option table with the switch column padded to
// a shared width and descriptions wrapped to the remaining columns.
func optionRows(c *Command) []string {
	options := c.Options()
	if len(options) == 0 {
		return nil
	}

	cells := make([]string, 0, len(options))
	longest := 0
	for _, opt := range options {
		cell := optionCell(opt)
		cells = append(cells, cell)
		longest = util.Max(longest, len(cell))
	}

	column := util.Min(longest, maxSwitchColumn)
	descWidth := util.Max(helpWidth(c)-column-columnGap-2, minDescColumn)

	rows := make([]string, 0, len(options))
	for i, opt := range options {
		rows = append(rows, layoutRow(cells[i], describeOption(opt), column, descWidth)...)
	}

	return rows
}

func commandRows(c *Command) []string {
	subcommands := c.Subcommands()
	if len(subcommands) == 0 {
		return nil
	}

	longest := 0
	for _, sub := range subcommands {
		longest = util.Max(longest, len(sub.name))
	}

	column := util.Min(longest, maxSwitchColumn)
	descWidth := util.Max(helpWidth(c)-column-columnGap-2, minDescColumn)

	rows := make([]string, 0, len(subcommands))
	for _, sub := range subcommands {
		description := ""
		if sub.description != "" {
			description = "\"" + sub.description + "\""
		}
		rows = append(rows, layoutRow(sub.name, description, column, descWidth)...)
	}

	return rows
}

// optionCell renders the switch column for one option: its switches and
// the parameter placeholder its arity calls for.
func optionCell(opt *acclaim.Option) string {
	if opt.Positional() {
		return "<" + opt.Key() + ">"
	}

	cell := strings.Join(opt.Names(), ", ")
	if placeholder := arityPlaceholder(opt); placeholder != "" {
		cell += " " + placeholder
	}

	return cell
}

// arityPlaceholder derives the parameter placeholder from the option's
// key and arity: nothing for flags, NAME for a single parameter,
// [NAME] when that parameter is optional, NAME... for more.
func arityPlaceholder(opt *acclaim.Option) string {
	arity := opt.Arity()
	name := strcase.ToScreamingSnake(opt.Key())

	switch {
	case arity.Zero():
		return ""
	case arity.Unlimited():
		return name + "..."
	default:
		total, _ := arity.Total()
		switch {
		case arity.Minimum == 0 && total == 1:
			return "[" + name + "]"
		case total == 1:
			return name
		default:
			return name + "..."
		}
	}
}

func describeOption(opt *acclaim.Option) string {
	var parts []string
	if opt.Description() != "" {
		parts = append(parts, "\""+opt.Description()+"\"")
	}
	if value, declared := opt.Default(); declared && value != nil {
		parts = append(parts, fmt.Sprintf("(defaults to: %v)", value))
	}

	requiredOrOptional := "(optional)"
	if opt.Required() {
		requiredOrOptional = "(required)"
	}
	parts = append(parts, requiredOrOptional)

	return strings.Join(parts, " ")
}

// layoutRow pads the left cell to the column width and lays wrapped
// description lines beside it; an overlong left cell gets its own line.
func layoutRow(left, description string, column, descWidth int) []string {
	lines := wrap(description, descWidth)
	if len(lines) == 0 {
		return []string{left}
	}

	var rows []string
	indent := strings.Repeat(" ", column+columnGap)

	if len(left) > column {
		rows = append(rows, left)
		for _, line := range lines {
			rows = append(rows, indent+line)
		}

		return rows
	}

	rows = append(rows, fmt.Sprintf("%-*s%s%s", column, left, strings.Repeat(" ", columnGap), lines[0]))
	for _, line := range lines[1:] {
		rows = append(rows, indent+line)
	}

	return rows
}

// wrap greedily wraps text into lines of at most width characters,
// breaking on spaces. Words longer than width stand alone.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}

	return append(lines, line)
}

// helpWidth resolves the rendering width: the terminal width when the
// command writes to one, the default otherwise.
func helpWidth(c *Command) int {
	if file, ok := c.Output().(*os.File); ok {
		if width := util.TerminalWidth(file.Fd()); width > 0 {
			return width
		}
	}

	return defaultHelpWidth
}
