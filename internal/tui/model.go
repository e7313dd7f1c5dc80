// Package tui implements the terminal keypad front end for the calculator.
//
// The model owns no arithmetic: every button press is forwarded to a
// calc.Engine and its display string is drawn verbatim.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// Options configures the keypad model.
type Options struct {
	Styles Styles
	Width  int // display width in cells, including the border
}

// Model is the bubbletea model for the keypad.
type Model struct {
	engine *calc.Engine
	keys   keyMap
	help   help.Model
	styles Styles
	width  int

	row, col int
	presses  int
}

// New creates a keypad model driving engine.
func New(engine *calc.Engine, opts Options) Model {
	width := opts.Width
	if minWidth := len(token.Keypad[0]) * 5; width < minWidth {
		width = minWidth
	}
	h := help.New()
	h.Styles.ShortKey = opts.Styles.Help
	h.Styles.ShortDesc = opts.Styles.Help
	h.Styles.ShortSeparator = opts.Styles.Help
	h.Styles.FullKey = opts.Styles.Help
	h.Styles.FullDesc = opts.Styles.Help
	h.Styles.FullSeparator = opts.Styles.Help
	h.Styles.Ellipsis = opts.Styles.Help
	return Model{
		engine: engine,
		keys:   defaultKeyMap(),
		help:   h,
		styles: opts.Styles,
		width:  width,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.row = (m.row + len(token.Keypad) - 1) % len(token.Keypad)
		case key.Matches(msg, m.keys.Down):
			m.row = (m.row + 1) % len(token.Keypad)
		case key.Matches(msg, m.keys.Left):
			m.col = (m.col + len(token.Keypad[0]) - 1) % len(token.Keypad[0])
		case key.Matches(msg, m.keys.Right):
			m.col = (m.col + 1) % len(token.Keypad[0])
		case key.Matches(msg, m.keys.Press):
			m.press(m.Selected())
		default:
			if tok, ok := m.keys.tokenForKey(msg); ok {
				m.selectToken(tok)
				m.press(tok)
			}
		}
	}
	return m, nil
}

func (m *Model) press(tok token.Token) {
	m.engine.Submit(tok)
	m.presses++
}

// selectToken moves the cursor onto tok's button.
func (m *Model) selectToken(tok token.Token) {
	for r, row := range token.Keypad {
		for c, t := range row {
			if t == tok {
				m.row, m.col = r, c
				return
			}
		}
	}
}

// Selected returns the token under the cursor.
func (m Model) Selected() token.Token {
	return token.Keypad[m.row][m.col]
}

// Display returns the engine's current display string.
func (m Model) Display() string {
	return m.engine.Display()
}

// Presses returns how many buttons have been pressed.
func (m Model) Presses() int {
	return m.presses
}

// View implements tea.Model.
func (m Model) View() string {
	display := m.styles.Display
	if m.engine.State().ErrorState {
		display = m.styles.DisplayError
	}
	// Border and padding take four cells.
	screen := display.Width(m.width - 2).Render(truncateLeft(m.engine.Display(), m.width-4))

	rows := make([]string, 0, len(token.Keypad))
	for r, row := range token.Keypad {
		cells := make([]string, 0, len(row))
		for c, tok := range row {
			style := m.styles.buttonStyle(tok)
			if r == m.row && c == m.col {
				style = m.styles.Selected
			}
			cells = append(cells, style.Render(tok.String()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	keypad := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString(keypad)
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// truncateLeft keeps the rightmost n characters of s, marking the cut.
// Long entries stay readable at the end where typing happens.
func truncateLeft(s string, n int) string {
	if n <= 1 || len(s) <= n {
		return s
	}
	return "…" + s[len(s)-(n-1):]
}
