package present

import (
	"io"
	"strings"
)

// --------------------------------------------------------------------------
// Message Types
// --------------------------------------------------------------------------

// Kind classifies a message by outcome. Styled presenters color by Kind;
// plain presenters ignore it.
type Kind int

const (
	KindInfo    Kind = iota // neutral output (reads, help lines)
	KindSuccess             // a mutation was applied
	KindFailure             // the command was rejected, nothing changed
	KindHeader              // a section header ("Files:", "Commands:")
)

// Role marks the part a segment plays inside one message line.
type Role int

const (
	RoleText    Role = iota // fixed wording
	RoleSubject             // path, id or block index
	RoleValue               // payload data
	RoleMuted               // list bullets, placeholders like "empty"
)

// Segment is one piece of a message line.
type Segment struct {
	Text string
	Role Role
}

// Message is one semantic output event, rendered as exactly one line.
type Message struct {
	Kind     Kind
	Segments []Segment
}

// Text returns the unstyled line, without the trailing newline.
func (m Message) Text() string {
	var sb strings.Builder
	for _, s := range m.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Presenter writes prompts and messages to the console.
// For the same sequence of calls, every implementation must produce output
// that is byte-identical to the Plain presenter once styling is stripped.
type Presenter interface {
	// Prompt writes the input prompt ("> ") without a line break.
	Prompt() error
	// Present writes each message on its own line.
	Present(msgs ...Message) error
}

// PromptText is the prompt glyph written before every input line.
const PromptText = "> "

// --------------------------------------------------------------------------
// Plain Presenter
// --------------------------------------------------------------------------

type plainImpl struct {
	w io.Writer
}

// NewPlain creates a presenter that writes unadorned UTF-8 lines to w.
func NewPlain(w io.Writer) Presenter {
	return &plainImpl{w: w}
}

func (p *plainImpl) Prompt() error {
	_, err := io.WriteString(p.w, PromptText)
	return err
}

func (p *plainImpl) Present(msgs ...Message) error {
	for _, m := range msgs {
		if _, err := io.WriteString(p.w, m.Text()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
