package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used to draw the keypad.
type Styles struct {
	Display      lipgloss.Style
	DisplayError lipgloss.Style
	Digit        lipgloss.Style
	Operator     lipgloss.Style
	Command      lipgloss.Style
	Selected     lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds the styles for a theme. The "mono" theme renders
// without colour regardless of what the terminal supports.
func NewStyles(theme string, w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	if theme == "mono" {
		r.SetColorProfile(termenv.Ascii)
	}

	button := r.NewStyle().Width(5).Align(lipgloss.Center).Padding(0, 0)
	display := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Right).
		Bold(true).
		Padding(0, 1)

	return Styles{
		Display:      display,
		DisplayError: display.Foreground(lipgloss.Color("9")),
		Digit:        button,
		Operator:     button.Foreground(lipgloss.Color("12")).Bold(true),
		Command:      button.Foreground(lipgloss.Color("11")),
		Selected:     button.Reverse(true).Bold(true),
		Help:         r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// buttonStyle picks the resting style for a keypad button.
func (s Styles) buttonStyle(tok token.Token) lipgloss.Style {
	switch {
	case tok.IsDigit(), tok == token.Decimal:
		return s.Digit
	case tok.IsOperator(), tok == token.Equals:
		return s.Operator
	default:
		return s.Command
	}
}
