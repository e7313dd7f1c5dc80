package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned (wrapped in a *ScanError) when input contains
// text that is not a button label.
var ErrUnknownToken = errors.New("unknown token")

// ScanError reports unrecognized input together with its position.
type ScanError struct {
	Pos  Position
	Text string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s %q at column %d", ErrUnknownToken, e.Text, e.Pos.Column)
}

// Unwrap allows errors.Is(err, ErrUnknownToken).
func (e *ScanError) Unwrap() error {
	return ErrUnknownToken
}

// Scanner splits textual input such as "12+3=" or "9 + 4 CE 6 =" into tokens.
// Whitespace and commas separate tokens but are never required.
type Scanner struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
}

// NewScanner creates a Scanner for the given input.
func NewScanner(input string) *Scanner {
	s := &Scanner{input: input}
	s.readChar()
	return s
}

func (s *Scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) currentPos() Position {
	return Position{Column: s.pos + 1, Offset: s.pos}
}

func (s *Scanner) skipSeparators() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' || s.ch == ',' {
		s.readChar()
	}
}

// hasPrefix reports whether the remaining input starts with lit, ignoring case.
func (s *Scanner) hasPrefix(lit string) bool {
	end := s.pos + len(lit)
	if end > len(s.input) {
		return false
	}
	return strings.EqualFold(s.input[s.pos:end], lit)
}

func (s *Scanner) advance(n int) {
	for i := 0; i < n; i++ {
		s.readChar()
	}
}

// multiChar lists labels longer than one byte, longest first so that "+/-"
// wins over "+" and "CE" wins over "C".
var multiChar = []struct {
	lit string
	tok Token
}{
	{"+/-", Negate},
	{"DEL", Delete},
	{"CE", ClearEntry},
}

// Next returns the next token. It returns ILLEGAL with a nil error at the
// end of input.
func (s *Scanner) Next() (Token, error) {
	s.skipSeparators()
	if s.atEnd() {
		return ILLEGAL, nil
	}

	for _, mc := range multiChar {
		if s.hasPrefix(mc.lit) {
			s.advance(len(mc.lit))
			return mc.tok, nil
		}
	}

	pos := s.currentPos()
	if tok, ok := Lookup(string(s.ch)); ok {
		s.readChar()
		return tok, nil
	}

	start := s.pos
	for !s.atEnd() && s.ch != ' ' && s.ch != '\t' && s.ch != '\n' && s.ch != '\r' && s.ch != ',' {
		s.readChar()
	}
	return ILLEGAL, &ScanError{Pos: pos, Text: s.input[start:s.pos]}
}

// Scan returns all tokens in input. It stops at the first unrecognized text.
func Scan(input string) ([]Token, error) {
	s := NewScanner(input)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok == ILLEGAL {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
