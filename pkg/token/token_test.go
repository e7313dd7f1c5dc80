package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRoundTrip(t *testing.T) {
	for _, tok := range All() {
		got, ok := Lookup(tok.String())
		require.True(t, ok, "label %q should resolve", tok.String())
		assert.Equal(t, tok, got)
	}
}

func TestLookupWordLabelsIgnoreCase(t *testing.T) {
	tests := []struct {
		label string
		want  Token
	}{
		{"del", Delete},
		{"Ce", ClearEntry},
		{"c", Clear},
		{"DEL", Delete},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Lookup(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, label := range []string{"", "x", "++", "ILLEGAL", "10"} {
		_, ok := Lookup(label)
		assert.False(t, ok, "label %q should not resolve", label)
	}
}

func TestDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		tok := Digit(d)
		assert.True(t, tok.IsDigit())
		assert.Equal(t, d, tok.DigitValue())
	}
	assert.Equal(t, ILLEGAL, Digit(-1))
	assert.Equal(t, ILLEGAL, Digit(10))
	assert.Equal(t, -1, Plus.DigitValue())
}

func TestClassification(t *testing.T) {
	for _, tok := range []Token{Plus, Minus, Star, Slash} {
		assert.True(t, tok.IsOperator(), tok.String())
	}
	for _, tok := range []Token{Negate, Equals, Decimal, Digit0} {
		assert.False(t, tok.IsOperator(), tok.String())
	}
	assert.True(t, Clear.IsClear())
	assert.True(t, ClearEntry.IsClear())
	assert.False(t, Delete.IsClear())
	assert.False(t, ILLEGAL.Valid())
	assert.False(t, maxToken.Valid())
	assert.Equal(t, "TOKEN(99)", Token(99).String())
}

func TestKeypadCoversVocabulary(t *testing.T) {
	seen := make(map[Token]bool)
	for _, tok := range All() {
		assert.False(t, seen[tok], "duplicate %s", tok)
		seen[tok] = true
	}
	for tok := ILLEGAL + 1; tok < maxToken; tok++ {
		assert.True(t, seen[tok], "keypad is missing %s", tok)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{"empty", "", nil},
		{"compact", "12+3=", []Token{Digit1, Digit2, Plus, Digit3, Equals}},
		{"spaced", "9 + 4 CE 6 =", []Token{Digit9, Plus, Digit4, ClearEntry, Digit6, Equals}},
		{"negate beats plus", "7+/-", []Token{Digit7, Negate}},
		{"plus then negate", "7++/-", []Token{Digit7, Plus, Negate}},
		{"clear entry beats clear", "CEC", []Token{ClearEntry, Clear}},
		{"lower case words", "5 del c", []Token{Digit5, Delete, Clear}},
		{"commas", "1,.,5", []Token{Digit1, Decimal, Digit5}},
		{"all operators", "1*2/3-4", []Token{Digit1, Star, Digit2, Slash, Digit3, Minus, Digit4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanUnknown(t *testing.T) {
	_, err := Scan("12 + abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownToken))

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, "abc", scanErr.Text)
	assert.Equal(t, 5, scanErr.Pos.Offset)
	assert.Equal(t, 6, scanErr.Pos.Column)
	assert.Contains(t, err.Error(), "column 6")
}

func TestScanNULIsNotEndOfInput(t *testing.T) {
	toks, err := Scan("1\x002")
	require.Error(t, err)
	assert.Nil(t, toks)
	assert.ErrorIs(t, err, ErrUnknownToken)

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, Position{Column: 2, Offset: 1}, scanErr.Pos)
	assert.Equal(t, "\x002", scanErr.Text)
}
