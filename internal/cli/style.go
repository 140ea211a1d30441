package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc"
)

// styles color REPL output on a terminal.
type styles struct {
	result lipgloss.Style
	err    lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	return &styles{
		result: r.NewStyle().Bold(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// styled returns a result as it should be printed. A nil *styles prints
// everything plain.
func (s *styles) styled(r string) string {
	if s == nil {
		return r
	}
	if r == calc.ErrorText {
		return s.err.Render(r)
	}
	return s.result.Render(r)
}

// note is like styled for messages that are not results.
func (s *styles) note(msg string) string {
	if s == nil {
		return msg
	}
	return s.muted.Render(msg)
}
