package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/tristore/cmd/shell"
	"github.com/ValentinKolb/tristore/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "tristore",
		Short: "interactive file, object and block storage console",
		Long: fmt.Sprintf(`tristore (v%s)

An interactive console that models three storage paradigms (file, object
and block) in process memory. Nothing is persisted: every session starts empty.

Running tristore without a subcommand starts the console.`, Version),
		SilenceUsage: true,
		PreRunE:      shell.ProcessConfig,
		RunE:         shell.Run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tristore",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tristore v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(shell.ShellCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags (inherited by the shell command)
	util.SetupShellFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
