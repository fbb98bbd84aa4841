package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rc-chuah/acclaim"
)

func TestAddHelp(t *testing.T) {
	deploy := New("deploy")
	root := New("app", WithSubcommands(deploy))

	require.NoError(t, AddHelp(root))

	_, ok := root.Lookup("help")
	assert.True(t, ok, "a help subcommand is installed")

	foundFlag := false
	for _, opt := range root.Options() {
		if opt.Key() == helpOptionKey {
			foundFlag = true
			assert.Equal(t, []string{"-h", "--help"}, opt.Names())
		}
	}
	assert.True(t, foundFlag, "a help flag is installed")

	_, ok = deploy.Lookup("help")
	assert.True(t, ok, "help surfaces recurse into user subcommands")

	helpCmd, _ := root.Lookup("help")
	_, ok = helpCmd.Lookup("help")
	assert.False(t, ok, "built-in commands get no help surfaces of their own")
}

func TestCommand_Run_HelpFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	rootRan := false

	deploy := New("deploy", WithDescription("deploy the thing"))
	root := New("app", WithOutput(buf),
		WithAction(func(vals acclaim.Values, args []string) error {
			rootRan = true
			return nil
		}),
		WithSubcommands(deploy),
	)
	require.NoError(t, AddHelp(root))

	err := root.Run([]string{"deploy", "--help"})
	assert.ErrorIs(t, err, ErrHelpRequested)
	assert.Contains(t, buf.String(), "usage: app deploy")
	assert.False(t, rootRan, "an explicit help request runs no queued action")
}

func TestCommand_Run_HelpSubcommand(t *testing.T) {
	buf := &bytes.Buffer{}
	deploy := New("deploy", WithDescription("deploy the thing"))
	root := New("app", WithOutput(buf), WithSubcommands(deploy))
	require.NoError(t, AddHelp(root))

	err := root.Run([]string{"help"})
	assert.ErrorIs(t, err, ErrHelpRequested)
	assert.Contains(t, buf.String(), "usage: app", "bare help renders the parent's usage")

	buf.Reset()
	err = root.Run([]string{"help", "deploy"})
	assert.ErrorIs(t, err, ErrHelpRequested)
	assert.Contains(t, buf.String(), "usage: app deploy", "a named topic renders that command's usage")
	assert.Contains(t, buf.String(), "deploy the thing")
}

func TestCommand_PrintHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := New("app", WithDescription("does app things"), WithOutput(buf))

	require.NoError(t, cmd.Option("file",
		acclaim.WithSwitches("-f", "--file"),
		acclaim.WithDescription("file to process"),
		acclaim.WithArity(acclaim.Exactly(1)),
		acclaim.SetRequired(true),
	))
	require.NoError(t, cmd.Option("level",
		acclaim.WithSwitches("-l"),
		acclaim.WithDescription("log level"),
		acclaim.WithArityBounds(0, 1),
		acclaim.WithDefault("info"),
	))
	require.NoError(t, cmd.Option("tags",
		acclaim.WithSwitches("--tags"),
		acclaim.WithArity(acclaim.AtLeast(1)),
	))
	require.NoError(t, cmd.Option("input", acclaim.AsPositional(), acclaim.WithDescription("input source")))
	cmd.AddSubcommands(New("deploy", WithDescription("deploy the thing")))

	cmd.PrintHelp()
	help := buf.String()

	assert.Contains(t, help, "usage: app [options] <input> <command>")
	assert.Contains(t, help, "does app things")
	assert.Contains(t, help, "-f, --file FILE")
	assert.Contains(t, help, "\"file to process\" (required)")
	assert.Contains(t, help, "-l [LEVEL]")
	assert.Contains(t, help, "(defaults to: info)")
	assert.Contains(t, help, "--tags TAGS...")
	assert.Contains(t, help, "<input>")
	assert.Contains(t, help, "options:")
	assert.Contains(t, help, "commands:")
	assert.Contains(t, help, "deploy")
	assert.Contains(t, help, "\"deploy the thing\"")
}

func TestArityPlaceholder(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		arity acclaim.Arity
		want  string
	}{
		{"flag has none", "verbose", acclaim.Flag(), ""},
		{"single parameter", "file", acclaim.Exactly(1), "FILE"},
		{"single optional", "level", acclaim.NewArity(0, 1), "[LEVEL]"},
		{"unlimited", "tags", acclaim.AtLeast(1), "TAGS..."},
		{"several", "coords", acclaim.Exactly(2), "COORDS..."},
		{"snake cased", "logLevel", acclaim.Exactly(1), "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := acclaim.NewOption(tt.key, acclaim.WithArity(tt.arity))
			require.NoError(t, err)
			assert.Equal(t, tt.want, arityPlaceholder(opt))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"unbreakable"}, wrap("unbreakable", 4), "overlong words stand alone")
}

func TestCommand_PrintHelp_WrapsLongDescriptions(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := New("app", WithOutput(buf))

	long := strings.Repeat("word ", 40)
	require.NoError(t, cmd.Option("thing", acclaim.WithSwitches("-t"), acclaim.WithDescription(strings.TrimSpace(long))))

	cmd.PrintHelp()

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len(line), defaultHelpWidth, "no rendered line exceeds the fallback width")
	}
}
