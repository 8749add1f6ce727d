package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/ValentinKolb/tristore/lib/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	wrapped := WrapString(strings.Repeat("word ", 30))
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short text", WrapString("  short   text "))
	assert.Equal(t, "", WrapString(""))
}

func TestGetConfigFromFlags(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test"}
	SetupShellFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--blocks", "8", "--block-size=32", "--style", "STYLED", "--banner=false"}))
	require.NoError(t, BindCommandFlags(cmd))

	conf, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, conf.Blocks)
	assert.Equal(t, 32, conf.BlockSize)
	assert.Equal(t, common.StyleStyled, conf.Style)
	assert.False(t, conf.Banner)
	assert.Equal(t, "warn", conf.LogLevel)
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("TRISTORE_BLOCK_SIZE", "64")

	cmd := &cobra.Command{Use: "test"}
	SetupShellFlags(cmd)
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, BindCommandFlags(cmd))
	InitConfig()

	conf, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 64, conf.BlockSize)
	assert.Equal(t, 5, conf.Blocks)
}

func TestGetConfigRejectsInvalid(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test"}
	SetupShellFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--blocks", "0"}))
	require.NoError(t, BindCommandFlags(cmd))

	_, err := GetConfig()
	require.Error(t, err)
}

func TestUseStyledOutput(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, UseStyledOutput(common.StyleStyled, &buf))
	assert.False(t, UseStyledOutput(common.StylePlain, &buf))
	assert.False(t, UseStyledOutput(common.StyleAuto, &buf), "a buffer is never a terminal")

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, UseStyledOutput(common.StyleAuto, f), "a regular file is never a terminal")
}
