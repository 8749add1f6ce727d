package common

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())
	assert.Equal(t, 5, conf.Blocks)
	assert.Equal(t, 16, conf.BlockSize)
	assert.Equal(t, StylePlain, conf.Style)
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero blocks", func(c *Config) { c.Blocks = 0 }},
		{"negative block size", func(c *Config) { c.BlockSize = -1 }},
		{"unknown style", func(c *Config) { c.Style = "neon" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conf := DefaultConfig()
			tc.mutate(&conf)
			require.Error(t, conf.Validate())
		})
	}
}

func TestParsePresenterStyle(t *testing.T) {
	style, err := ParsePresenterStyle("Styled")
	require.NoError(t, err)
	assert.Equal(t, StyleStyled, style)

	_, err = ParsePresenterStyle("")
	require.Error(t, err)
}

func TestConfigString(t *testing.T) {
	conf := DefaultConfig()
	s := conf.String()
	assert.Contains(t, s, "BLOCK STORE")
	assert.Contains(t, s, "16 bytes")
	assert.Contains(t, s, "plain")
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
	} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("trace")
	require.Error(t, err)
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}
