// Package present turns semantic console events into output lines.
//
// Every event is a Message built by one of the constructors in messages.go
// (FileCreated, BlockTooLarge, ...). A Message is a list of Segments, each
// tagged with a Role, and a Kind describing the outcome. Two presenters are
// provided:
//
//   - NewPlain writes Message.Text() followed by a newline.
//   - NewStyled renders every segment through lipgloss, coloring by Kind and
//     Role. Stripping the ANSI sequences from its output gives back the plain
//     output byte for byte.
//
// The console talks to the Presenter interface only, so tests can run it
// headless against the plain presenter.
package present
