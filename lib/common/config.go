package common

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/tristore/lib/store/bstore"
)

// --------------------------------------------------------------------------
// Presenter style
// --------------------------------------------------------------------------

type PresenterStyle string

const (
	StylePlain  PresenterStyle = "plain"
	StyleStyled PresenterStyle = "styled"
	StyleAuto   PresenterStyle = "auto" // styled if stdout is a terminal
)

// ParsePresenterStyle validates a style name.
func ParsePresenterStyle(s string) (PresenterStyle, error) {
	switch style := PresenterStyle(strings.ToLower(s)); style {
	case StylePlain, StyleStyled, StyleAuto:
		return style, nil
	default:
		return "", fmt.Errorf("invalid style %q. must be one of plain, styled, auto", s)
	}
}

// --------------------------------------------------------------------------
// Console configuration struct
// --------------------------------------------------------------------------

// Config holds all configuration parameters of the console.
type Config struct {
	// block store geometry
	Blocks    int
	BlockSize int

	// output
	Style  PresenterStyle
	Banner bool

	// diagnostics (written to stderr)
	LogLevel string
	Metrics  bool
}

// DefaultConfig returns the configuration used when no flag, env variable or
// env file is present.
func DefaultConfig() Config {
	return Config{
		Blocks:    bstore.DefaultNumBlocks,
		BlockSize: bstore.DefaultBlockSize,
		Style:     StylePlain,
		Banner:    true,
		LogLevel:  "warn",
		Metrics:   false,
	}
}

// Validate checks the configuration for values the console cannot run with.
func (c *Config) Validate() error {
	if c.Blocks <= 0 {
		return fmt.Errorf("blocks must be positive, got %d", c.Blocks)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("block-size must be positive, got %d", c.BlockSize)
	}
	if _, err := ParsePresenterStyle(string(c.Style)); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Block Store")
	addField("Blocks", fmt.Sprintf("%d", c.Blocks))
	addField("Block Size", fmt.Sprintf("%d bytes", c.BlockSize))

	addSection("Output")
	addField("Style", string(c.Style))
	addField("Banner", fmt.Sprintf("%t", c.Banner))

	addSection("Diagnostics")
	addField("Log Level", c.LogLevel)
	addField("Metrics", fmt.Sprintf("%t", c.Metrics))

	return sb.String()
}
