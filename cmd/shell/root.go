package shell

import (
	"fmt"
	"io"

	"github.com/ValentinKolb/tristore/cmd/util"
	"github.com/ValentinKolb/tristore/lib/common"
	"github.com/ValentinKolb/tristore/lib/present"
	"github.com/ValentinKolb/tristore/lib/repl"
	"github.com/ValentinKolb/tristore/lib/store/bstore"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	shellConfig = common.DefaultConfig()

	// ShellCmd starts the interactive console
	ShellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive storage console",
		Long: `Start the interactive storage console. Commands are read line by line from stdin.
Type 'help' inside the console for the list of commands and 'exit' to quit.
The configuration can be set via command line flags or environment variables.
The format of the environment variables is TRISTORE_<flag> (e.g. TRISTORE_BLOCK_SIZE=32)`,
		PreRunE: ProcessConfig,
		RunE:    Run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)
}

// ProcessConfig reads the configuration from the command line flags and environment variables
func ProcessConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	conf, err := util.GetConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	shellConfig = conf
	return nil
}

// newPresenter returns the presenter selected by the configured style.
// StyleStyled forces escapes even when out is not a terminal, StyleAuto
// leaves the color profile to the renderer's detection.
func newPresenter(conf common.Config, out io.Writer) present.Presenter {
	if !util.UseStyledOutput(conf.Style, out) {
		return present.NewPlain(out)
	}
	if conf.Style == common.StyleStyled {
		return present.NewStyled(out, present.WithColorProfile(forcedColorProfile()))
	}
	return present.NewStyled(out)
}

// forcedColorProfile takes the profile from the environment but never drops
// to Ascii, which would render no styling at all.
func forcedColorProfile() termenv.Profile {
	if p := termenv.EnvColorProfile(); p != termenv.Ascii {
		return p
	}
	return termenv.ANSI256
}

// Run starts the console with the configuration resolved by ProcessConfig
func Run(cmd *cobra.Command, _ []string) error {
	conf := shellConfig

	logger, err := common.InitLogger(cmd.ErrOrStderr(), conf)
	if err != nil {
		return err
	}
	logger.Debug("resolved configuration", "config", conf.String())

	blocks, err := bstore.NewBlockStore(conf.Blocks, conf.BlockSize)
	if err != nil {
		return err
	}

	metrics := repl.NewMetrics()
	console := repl.New(
		cmd.InOrStdin(),
		newPresenter(conf, cmd.OutOrStdout()),
		repl.WithBlockStore(blocks),
		repl.WithLogger(logger),
		repl.WithMetrics(metrics),
		repl.WithBanner(conf.Banner),
	)

	err = console.Run(cmd.Context())

	if conf.Metrics {
		metrics.WritePrometheus(cmd.ErrOrStderr())
	}
	if err != nil {
		return fmt.Errorf("console output failed: %w", err)
	}
	return nil
}
