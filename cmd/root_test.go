package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetIn(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootStartsConsole(t *testing.T) {
	out, _, err := execute(t, "file create /a hello\nfile read /a\nexit\n",
		"--banner=true", "--blocks=5", "--block-size=16", "--style=plain", "--metrics=false", "--log-level=warn")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Welcome to Storage CLI"))
	assert.Contains(t, out, "> File created: /a\n")
	assert.Contains(t, out, "> Reading /a: hello\n")
}

func TestShellUsesBlockFlags(t *testing.T) {
	out, _, err := execute(t, "block write 2 x\nblock write 1 abcd\nblock list\n",
		"shell", "--banner=false", "--blocks=2", "--block-size=3", "--style=plain", "--metrics=false", "--log-level=warn")
	require.NoError(t, err)

	assert.Contains(t, out, "Invalid block index!\n")
	assert.Contains(t, out, "Data too large for block (max 3 bytes)\n")
	assert.Contains(t, out, "Blocks:\n - Block 0: empty\n - Block 1: empty\n")
}

func TestMetricsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "file create /a x\n",
		"shell", "--banner=false", "--blocks=5", "--block-size=16", "--style=plain", "--metrics=true", "--log-level=warn")
	require.NoError(t, err)

	assert.NotContains(t, out, "tristore_commands_total")
	assert.Contains(t, errOut, `tristore_commands_total{engine="file",verb="create",outcome="ok"} 1`)
}

func TestStyledForcesEscapes(t *testing.T) {
	input := "file create /a x\nfile read /a\nfile list\nblock read 0\nhelp\n"
	flags := []string{"shell", "--banner=true", "--blocks=5", "--block-size=16", "--metrics=false", "--log-level=warn"}

	plain, _, err := execute(t, input, append(flags, "--style=plain")...)
	require.NoError(t, err)
	styled, _, err := execute(t, input, append(flags, "--style=styled")...)
	require.NoError(t, err)

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, styled, "\x1b[")
	assert.Equal(t, plain, ansi.Strip(styled))
}

func TestAutoStyleOnPipeIsPlain(t *testing.T) {
	out, _, err := execute(t, "file create /a x\n",
		"shell", "--banner=false", "--blocks=5", "--block-size=16", "--style=auto", "--metrics=false", "--log-level=warn")
	require.NoError(t, err)
	assert.Equal(t, "> File created: /a\n> ", out)
}

func TestInvalidConfigFails(t *testing.T) {
	_, _, err := execute(t, "", "--blocks=0", "--block-size=16", "--style=plain", "--log-level=warn")
	require.Error(t, err)

	_, _, err = execute(t, "", "--blocks=5", "--block-size=16", "--style=neon", "--log-level=warn")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "tristore v"+Version+"\n", out)
}
