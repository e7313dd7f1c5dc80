package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	var buf bytes.Buffer
	return New(calc.New(calc.Config{}), Options{Styles: NewStyles("mono", &buf), Width: 28})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msgs in order and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return a tui.Model")
	}
	return m
}

func TestModel_TypedKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("1"), runes("2"), runes("+"), runes("3"), runes("="))

	assert.Equal(t, "15", m.Display())
	assert.Equal(t, 5, m.Presses())
	assert.Equal(t, token.Equals, m.Selected(), "cursor follows the last typed button")
}

func TestModel_EnterComputes(t *testing.T) {
	m := send(t, newTestModel(t), runes("5"), runes("+"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "8", m.Display())
	assert.Equal(t, token.Equals, m.Selected())

	// Space still presses whatever is selected.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, token.Decimal, m.Selected())
	assert.Equal(t, "8.", m.Display())
}

func TestModel_EditingKeys(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"backspace deletes", []tea.Msg{runes("4"), runes("2"), tea.KeyMsg{Type: tea.KeyBackspace}}, "4"},
		{"delete is clear entry", []tea.Msg{runes("9"), tea.KeyMsg{Type: tea.KeyDelete}}, "0"},
		{"esc is clear", []tea.Msg{runes("7"), runes("*"), runes("2"), tea.KeyMsg{Type: tea.KeyEsc}}, "0"},
		{"n negates", []tea.Msg{runes("5"), runes("n")}, "-5"},
		{"c clears", []tea.Msg{runes("5"), runes("c")}, "0"},
		{"unbound rune ignored", []tea.Msg{runes("5"), runes("x")}, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, newTestModel(t), tt.msgs...)
			assert.Equal(t, tt.want, m.Display())
		})
	}
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, token.ClearEntry, m.Selected())

	// Row 2, column 1 holds 8.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, token.Digit8, m.Selected())

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "88", m.Display())

	// Movement wraps at the edges.
	m = send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, token.Equals, m.Selected())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := m.View()
	m = send(t, m, runes("?"))
	full := m.View()

	assert.NotContains(t, short, "left")
	assert.Contains(t, full, "left")
	assert.Contains(t, full, "CE")
}

func TestModel_View(t *testing.T) {
	m := send(t, newTestModel(t), runes("4"), runes("2"))
	view := m.View()

	assert.Contains(t, view, "42")
	for _, label := range []string{"CE", "DEL", "+/-", "7", "=", "/"} {
		assert.Contains(t, view, label)
	}
	assert.NotContains(t, view, "\x1b[", "mono theme renders without escape codes")
}

func TestModel_ViewErrorState(t *testing.T) {
	m := send(t, newTestModel(t), runes("8"), runes("/"), runes("0"), runes("="))
	assert.Contains(t, m.View(), calc.DefaultErrorMessage)
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "123", truncateLeft("123", 5))
	assert.Equal(t, "…345", truncateLeft("12345", 4))
}
