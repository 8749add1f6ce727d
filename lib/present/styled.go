package present

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette used by the styled presenter.
var (
	ColorSuccess = lipgloss.Color("#8BC34A") // Lime Green
	ColorFailure = lipgloss.Color("#e53935") // Red
	ColorHeader  = lipgloss.Color("#2196F3") // Blue
	ColorSubject = lipgloss.Color("#FFC107") // Yellow
	ColorMuted   = lipgloss.Color("#808080") // Grey
)

// StyledOption configures a styled presenter.
type StyledOption func(*styledImpl)

// WithColorProfile forces the color profile instead of detecting it from the
// writer. Use termenv.Ascii to disable escapes entirely.
func WithColorProfile(profile termenv.Profile) StyledOption {
	return func(s *styledImpl) {
		s.renderer.SetColorProfile(profile)
	}
}

type styledImpl struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	kinds    map[Kind]lipgloss.Style
	roles    map[Role]lipgloss.Style
	prompt   lipgloss.Style
}

// NewStyled creates a presenter that wraps message segments in terminal
// styling. Segments are rendered one by one, so stripping the escape
// sequences yields exactly the plain presenter's output.
func NewStyled(w io.Writer, opts ...StyledOption) Presenter {
	r := lipgloss.NewRenderer(w)
	s := &styledImpl{
		w:        w,
		renderer: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.kinds = map[Kind]lipgloss.Style{
		KindInfo:    r.NewStyle(),
		KindSuccess: r.NewStyle().Foreground(ColorSuccess),
		KindFailure: r.NewStyle().Foreground(ColorFailure),
		KindHeader:  r.NewStyle().Foreground(ColorHeader).Bold(true),
	}
	s.roles = map[Role]lipgloss.Style{
		RoleSubject: r.NewStyle().Foreground(ColorSubject).Bold(true),
		RoleValue:   r.NewStyle().Italic(true),
		RoleMuted:   r.NewStyle().Foreground(ColorMuted),
	}
	s.prompt = r.NewStyle().Foreground(ColorHeader).Bold(true)
	return s
}

// render styles a single segment. Text roles take the style of their kind.
func (s *styledImpl) render(kind Kind, seg Segment) string {
	if seg.Text == "" {
		return ""
	}
	style, ok := s.roles[seg.Role]
	if !ok {
		style = s.kinds[kind]
	}
	return style.Render(seg.Text)
}

func (s *styledImpl) Prompt() error {
	_, err := io.WriteString(s.w, s.prompt.Render(PromptText))
	return err
}

func (s *styledImpl) Present(msgs ...Message) error {
	for _, m := range msgs {
		var sb strings.Builder
		for _, seg := range m.Segments {
			sb.WriteString(s.render(m.Kind, seg))
		}
		sb.WriteString("\n")
		if _, err := io.WriteString(s.w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
