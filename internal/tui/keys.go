package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/leapcalc/pkg/token"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Press      key.Binding
	Equals     key.Binding
	Delete     key.Binding
	ClearEntry key.Binding
	Clear      key.Binding
	Negate     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),
		Equals:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "=")),
		Delete:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "DEL")),
		ClearEntry: key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "CE")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "C")),
		Negate:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "+/-")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Equals, k.Delete, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Equals, k.Negate},
		{k.Delete, k.ClearEntry, k.Clear},
		{k.Help, k.Quit},
	}
}

// tokenForKey maps a key press that stands for a button directly
// (digits, operators, '.', '=' or enter, the clear keys) onto its token.
func (k keyMap) tokenForKey(msg tea.KeyMsg) (token.Token, bool) {
	switch {
	case key.Matches(msg, k.Equals):
		return token.Equals, true
	case key.Matches(msg, k.Delete):
		return token.Delete, true
	case key.Matches(msg, k.ClearEntry):
		return token.ClearEntry, true
	case key.Matches(msg, k.Clear):
		return token.Clear, true
	case key.Matches(msg, k.Negate):
		return token.Negate, true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return token.ILLEGAL, false
	}
	return token.Lookup(string(msg.Runes))
}
