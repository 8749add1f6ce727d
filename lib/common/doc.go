// Package common holds the process-wide console configuration and the
// logging setup shared by the command-line layer.
package common
