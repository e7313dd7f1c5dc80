package calc

import (
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// numeral draws a digit sequence with no leading zero.
func numeral(rt *rapid.T, label string) string {
	first := rapid.IntRange(1, 9).Draw(rt, label+"_first")
	rest := rapid.SliceOfN(rapid.IntRange(0, 9), 0, 8).Draw(rt, label+"_rest")
	var b strings.Builder
	b.WriteString(strconv.Itoa(first))
	for _, d := range rest {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

func typeNumber(e *Engine, s string) {
	for _, r := range s {
		tok, _ := token.Lookup(string(r))
		e.Submit(tok)
	}
}

func TestPropertyDigitsBuildLeftToRight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		zeros := rapid.IntRange(0, 3).Draw(rt, "zeros")
		n := numeral(rt, "n")

		e := New(Config{})
		typeNumber(e, strings.Repeat("0", zeros)+n)
		if got := e.Display(); got != n {
			rt.Fatalf("display = %q, want %q", got, n)
		}
	})
}

func TestPropertyDecimalIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := New(Config{})
		typeNumber(e, numeral(rt, "n"))
		e.Submit(token.Decimal)
		before := e.State()
		e.Submit(token.Decimal)
		if e.State() != before {
			rt.Fatalf("second decimal changed state: %+v -> %+v", before, e.State())
		}
	})
}

func TestPropertyNegateSelfInverse(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := New(Config{})
		n := numeral(rt, "n")
		typeNumber(e, n)
		if rapid.Bool().Draw(rt, "fraction") {
			e.Submit(token.Decimal)
			typeNumber(e, numeral(rt, "frac"))
		}
		original := e.Display()

		e.Submit(token.Negate)
		if got := e.Display(); got != "-"+FormatNumber(ParseDisplay(original)) {
			rt.Fatalf("negate(%q) = %q", original, got)
		}
		e.Submit(token.Negate)
		if got := e.Display(); got != FormatNumber(ParseDisplay(original)) {
			rt.Fatalf("negate twice(%q) = %q", original, got)
		}
	})
}

func TestPropertyIntegerArithmetic(t *testing.T) {
	ops := []token.Token{token.Plus, token.Minus, token.Star}

	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 99999).Draw(rt, "a")
		b := rapid.IntRange(0, 99999).Draw(rt, "b")
		op := rapid.SampledFrom(ops).Draw(rt, "op")

		e := New(Config{})
		typeNumber(e, strconv.Itoa(a))
		e.Submit(op)
		typeNumber(e, strconv.Itoa(b))
		got := e.Submit(token.Equals)

		var want int
		switch op {
		case token.Plus:
			want = a + b
		case token.Minus:
			want = a - b
		case token.Star:
			want = a * b
		}
		if got != strconv.Itoa(want) {
			rt.Fatalf("%d %s %d = %q, want %d", a, op, b, got, want)
		}
		// Integer results survive a parse/format round trip unchanged.
		if FormatNumber(ParseDisplay(got)) != got {
			rt.Fatalf("round trip of %q changed it", got)
		}
		if e.State().Operand1 != float64(want) {
			rt.Fatalf("operand1 = %v, want %d", e.State().Operand1, want)
		}
	})
}

func TestPropertyErrorStateAbsorbs(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := New(Config{})
		typeNumber(e, numeral(rt, "n"))
		e.SubmitAll([]token.Token{token.Slash, token.Digit0, token.Equals})
		stuck := e.State()

		noise := rapid.SliceOf(rapid.SampledFrom(token.All())).Draw(rt, "noise")
		for _, tok := range noise {
			if tok.IsClear() {
				continue
			}
			e.Submit(tok)
		}
		if e.State() != stuck {
			rt.Fatalf("error state changed: %+v -> %+v", stuck, e.State())
		}
	})
}

// The display invariant holds after any token sequence.
func TestPropertyDisplayAlwaysValid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := New(Config{})
		seq := rapid.SliceOf(rapid.SampledFrom(token.All())).Draw(rt, "seq")
		for _, tok := range seq {
			d := e.Submit(tok)
			if e.State().ErrorState {
				if d != DefaultErrorMessage && d != DefaultOverflowMessage {
					rt.Fatalf("unexpected error display %q", d)
				}
				continue
			}
			if !validNumeral(d) {
				rt.Fatalf("invalid display %q after %s", d, tok)
			}
		}
	})
}

func validNumeral(s string) bool {
	if s == "" {
		return false
	}
	body := strings.TrimPrefix(s, "-")
	if body == "" || strings.Count(body, ".") > 1 {
		return false
	}
	digits := 0
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits > 0
}
