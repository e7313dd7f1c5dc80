// Package token defines the button tokens understood by the calculator engine.
//
// The vocabulary is closed: every button on the keypad maps to exactly one
// Token constant, and the engine dispatches on these values rather than on
// button labels.
package token

import (
	"fmt"
	"strings"
)

// Token is a single button press.
type Token int32

const (
	// ILLEGAL is the zero value and never reaches the engine.
	ILLEGAL Token = iota

	// Digits, in numeric order so that Digit0+d is the token for d.
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	Decimal // .

	// Operators
	Plus  // +
	Minus // -
	Star  // *
	Slash // /

	// Commands
	Negate     // +/-
	Delete     // DEL
	ClearEntry // CE
	Clear      // C
	Equals     // =

	maxToken
)

// String returns the button label of the token.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[Token]string{
	ILLEGAL: "ILLEGAL",

	Digit0: "0",
	Digit1: "1",
	Digit2: "2",
	Digit3: "3",
	Digit4: "4",
	Digit5: "5",
	Digit6: "6",
	Digit7: "7",
	Digit8: "8",
	Digit9: "9",

	Decimal: ".",

	Plus:  "+",
	Minus: "-",
	Star:  "*",
	Slash: "/",

	Negate:     "+/-",
	Delete:     "DEL",
	ClearEntry: "CE",
	Clear:      "C",
	Equals:     "=",
}

// labels maps button labels to tokens. Word labels are stored upper-case.
var labels = func() map[string]Token {
	m := make(map[string]Token, len(tokenNames))
	for t, name := range tokenNames {
		if t == ILLEGAL {
			continue
		}
		m[name] = t
	}
	return m
}()

// Lookup returns the token for a button label. Word labels (DEL, CE, C)
// match case-insensitively.
func Lookup(label string) (Token, bool) {
	t, ok := labels[strings.ToUpper(label)]
	return t, ok
}

// Digit returns the token for the decimal digit d.
// It returns ILLEGAL when d is outside 0-9.
func Digit(d int) Token {
	if d < 0 || d > 9 {
		return ILLEGAL
	}
	return Digit0 + Token(d)
}

// IsDigit returns true for Digit0 through Digit9.
func (t Token) IsDigit() bool {
	return t >= Digit0 && t <= Digit9
}

// DigitValue returns the numeric value of a digit token, or -1.
func (t Token) DigitValue() int {
	if !t.IsDigit() {
		return -1
	}
	return int(t - Digit0)
}

// IsOperator returns true for the four arithmetic operators.
func (t Token) IsOperator() bool {
	return t >= Plus && t <= Slash
}

// IsClear returns true for the tokens honoured while the engine shows an error.
func (t Token) IsClear() bool {
	return t == Clear || t == ClearEntry
}

// Valid reports whether t is a member of the vocabulary.
func (t Token) Valid() bool {
	return t > ILLEGAL && t < maxToken
}

// Keypad is the button layout of the calculator, row by row.
var Keypad = [5][4]Token{
	{ClearEntry, Clear, Delete, Slash},
	{Digit7, Digit8, Digit9, Star},
	{Digit4, Digit5, Digit6, Minus},
	{Digit1, Digit2, Digit3, Plus},
	{Negate, Digit0, Decimal, Equals},
}

// All returns every token in keypad order.
func All() []Token {
	out := make([]Token, 0, 20)
	for _, row := range Keypad {
		out = append(out, row[:]...)
	}
	return out
}
