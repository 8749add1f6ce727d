package util

import (
	"io"
	"os"
	"strings"

	"github.com/ValentinKolb/tristore/lib/common"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by tristore
	EnvPrefix = "tristore"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupShellFlags adds the console flags to a command
func SetupShellFlags(cmd *cobra.Command) {
	def := common.DefaultConfig()

	key := "blocks"
	cmd.PersistentFlags().Int(key, def.Blocks, WrapString("Number of slots in the block store"))

	key = "block-size"
	cmd.PersistentFlags().Int(key, def.BlockSize, WrapString("Maximum number of bytes a single block can hold"))

	key = "style"
	cmd.PersistentFlags().String(key, string(def.Style), WrapString("Output style (plain, styled, auto). auto uses styled output when stdout is a terminal"))

	key = "banner"
	cmd.PersistentFlags().Bool(key, def.Banner, WrapString("Print the welcome line at startup"))

	key = "log-level"
	cmd.PersistentFlags().String(key, def.LogLevel, WrapString("Level of the diagnostic log written to stderr (debug, info, warn, error)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, def.Metrics, WrapString("Write command counters in Prometheus text format to stderr on exit"))
}

// InitConfig initializes configuration from env files and environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the console configuration from viper and validates it
func GetConfig() (common.Config, error) {
	conf := common.Config{
		Blocks:    viper.GetInt("blocks"),
		BlockSize: viper.GetInt("block-size"),
		Style:     common.PresenterStyle(strings.ToLower(viper.GetString("style"))),
		Banner:    viper.GetBool("banner"),
		LogLevel:  viper.GetString("log-level"),
		Metrics:   viper.GetBool("metrics"),
	}
	if err := conf.Validate(); err != nil {
		return common.Config{}, err
	}
	return conf, nil
}

// UseStyledOutput decides whether the styled presenter is used for out.
// StyleAuto picks styled output only when out is a terminal.
func UseStyledOutput(style common.PresenterStyle, out io.Writer) bool {
	switch style {
	case common.StyleStyled:
		return true
	case common.StyleAuto:
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	default:
		return false
	}
}
