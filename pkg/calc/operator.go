package calc

import (
	"fmt"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

// Operator is the arithmetic operation waiting for its second operand.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operatorNames = map[Operator]string{
	OpNone:     "",
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// String returns the operator symbol, or "" for OpNone.
func (o Operator) String() string {
	return operatorNames[o]
}

// MarshalText encodes the operator as its symbol.
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an operator symbol. The empty string is OpNone.
func (o *Operator) UnmarshalText(text []byte) error {
	for op, name := range operatorNames {
		if name == string(text) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("unknown operator %q", text)
}

// OperatorFor maps an operator token to its Operator.
// Non-operator tokens map to OpNone.
func OperatorFor(t token.Token) Operator {
	switch t {
	case token.Plus:
		return OpAdd
	case token.Minus:
		return OpSubtract
	case token.Star:
		return OpMultiply
	case token.Slash:
		return OpDivide
	default:
		return OpNone
	}
}

// Apply computes a <op> b. Division by zero is the caller's concern.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return b
	}
}
