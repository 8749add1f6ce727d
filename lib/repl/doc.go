// Package repl implements the tristore console: a line parser and a
// read-parse-dispatch-present loop over one file, one object and one block
// store.
//
// The loop has two states, Running and Terminated. It terminates on "exit"
// and on end of input. Every command is parsed and fully applied before the
// next line is read; failures are reported through the presenter and never
// end the loop. A block index that is not a non-negative integer is ignored
// without output.
//
// Usage Example:
//
//	r := repl.New(os.Stdin, present.NewPlain(os.Stdout), repl.WithBanner(true))
//	if err := r.Run(ctx); err != nil {
//		// the presenter could not write
//	}
package repl
