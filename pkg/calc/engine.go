// Package calc implements the calculator's input state machine.
//
// An Engine reduces a stream of button tokens to a display string and a
// running value. It is a plain synchronous object: callers must not call
// Submit concurrently on the same Engine.
package calc

import (
	"log/slog"
	"math"
	"strings"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// Default display sentinels shown while the engine is in its error state.
const (
	DefaultErrorMessage    = "Cannot divide by zero"
	DefaultOverflowMessage = "Overflow"
)

// Engine owns all calculator state.
type Engine struct {
	display        string
	operand1       float64
	operand2       float64
	pending        Operator
	startNewNumber bool
	errorState     bool

	errorMessage    string
	overflowMessage string
	logger          *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// ErrorMessage is displayed after a division by zero (optional)
	ErrorMessage string
	// OverflowMessage is displayed when a result is not a finite number (optional)
	OverflowMessage string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// State is a read-only snapshot of an Engine.
type State struct {
	Display        string   `json:"display"`
	Operand1       float64  `json:"operand1"`
	Operand2       float64  `json:"operand2"`
	Pending        Operator `json:"pending"`
	StartNewNumber bool     `json:"start_new_number"`
	ErrorState     bool     `json:"error_state"`
}

// New creates an engine in its initial state.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		errorMessage:    cfg.ErrorMessage,
		overflowMessage: cfg.OverflowMessage,
		logger:          logger,
	}
	if e.errorMessage == "" {
		e.errorMessage = DefaultErrorMessage
	}
	if e.overflowMessage == "" {
		e.overflowMessage = DefaultOverflowMessage
	}
	e.reset()
	return e
}

// Display returns the current display string.
func (e *Engine) Display() string {
	return e.display
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return State{
		Display:        e.display,
		Operand1:       e.operand1,
		Operand2:       e.operand2,
		Pending:        e.pending,
		StartNewNumber: e.startNewNumber,
		ErrorState:     e.errorState,
	}
}

// SubmitAll submits each token in order and returns the final display.
func (e *Engine) SubmitAll(tokens []token.Token) string {
	for _, tok := range tokens {
		e.Submit(tok)
	}
	return e.display
}

// Submit processes one token and returns the new display.
func (e *Engine) Submit(tok token.Token) string {
	if e.errorState {
		if tok.IsClear() {
			e.reset()
			e.logger.Info("error state cleared", "token", tok.String())
		}
		return e.display
	}

	switch {
	case tok.IsDigit():
		e.appendDigit(tok)
	case tok.IsOperator():
		v, ok := e.capture()
		if !ok {
			return e.display
		}
		e.operand1 = v
		e.pending = OperatorFor(tok)
		e.startNewNumber = true
	default:
		switch tok {
		case token.Decimal:
			if !strings.Contains(e.display, ".") {
				e.display += "."
				e.startNewNumber = false
			}
		case token.Clear:
			e.reset()
		case token.ClearEntry:
			e.display = "0"
			e.startNewNumber = true
		case token.Delete:
			e.deleteLast()
		case token.Negate:
			e.show(-ParseDisplay(e.display))
		case token.Equals:
			e.calculate()
		default:
			e.logger.Debug("ignored token", "token", tok.String())
			return e.display
		}
	}

	e.logger.Debug("token applied",
		"token", tok.String(),
		"display", e.display,
		"pending", e.pending.String(),
		"start_new", e.startNewNumber)
	return e.display
}

func (e *Engine) reset() {
	e.display = "0"
	e.operand1 = 0
	e.operand2 = 0
	e.pending = OpNone
	e.startNewNumber = true
	e.errorState = false
}

func (e *Engine) appendDigit(tok token.Token) {
	if e.startNewNumber || e.display == "0" {
		e.display = tok.String()
		e.startNewNumber = false
		return
	}
	e.display += tok.String()
}

// deleteLast drops the final character. A display that would be left empty
// or holding only a sign resets to "0".
func (e *Engine) deleteLast() {
	if len(e.display) > 1 {
		rest := e.display[:len(e.display)-1]
		if rest != "-" {
			e.display = rest
			return
		}
	}
	e.display = "0"
	e.startNewNumber = true
}

func (e *Engine) calculate() {
	if e.pending == OpNone {
		return
	}

	v, ok := e.capture()
	if !ok {
		return
	}
	e.operand2 = v
	if e.pending == OpDivide && e.operand2 == 0 {
		e.fail(e.errorMessage, "division by zero")
		return
	}

	result := e.pending.Apply(e.operand1, e.operand2)
	if !e.show(result) {
		return
	}
	e.operand1 = result
	e.pending = OpNone
	e.startNewNumber = true
}

// capture parses the display as an operand. An entry too long to be a
// finite float64 enters the overflow state and is not stored.
func (e *Engine) capture() (float64, bool) {
	v := ParseDisplay(e.display)
	if !finite(v) {
		e.fail(e.overflowMessage, "overflow")
		return 0, false
	}
	return v, true
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// show formats v into the display. Non-finite values enter the error state
// instead; show reports whether the display holds v.
func (e *Engine) show(v float64) bool {
	if !finite(v) {
		e.fail(e.overflowMessage, "overflow")
		return false
	}
	e.display = FormatNumber(v)
	return true
}

func (e *Engine) fail(message, reason string) {
	e.errorState = true
	e.display = message
	e.logger.Info("entered error state",
		"reason", reason,
		"operand1", e.operand1,
		"operand2", e.operand2,
		"operator", e.pending.String())
}
