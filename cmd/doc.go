// Package cmd implements the command-line interface of tristore, an
// interactive console over in-memory file, object and block stores.
//
// The package is organized into several subpackages:
//
//   - shell: The interactive console (also run by the root command)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See tristore -help for a list of all commands.
package cmd
