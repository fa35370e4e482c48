package vm

import (
	"github.com/pkg/errors"

	"github.com/agenthands/ncalc/pkg/lexer"
)

// shouldReduce reports whether the operator on top of the stack must be
// applied before incoming is pushed. Only '*' or '/' arriving over '+' or
// '-' defers the reduction; equal precedence reduces, giving left
// associativity.
func shouldReduce(incoming, top byte) bool {
	if (incoming == lexer.OpMul || incoming == lexer.OpDiv) && (top == lexer.OpAdd || top == lexer.OpSub) {
		return false
	}
	return true
}

func apply(op byte, a, b float64) (float64, error) {
	switch op {
	case lexer.OpAdd:
		return a + b, nil
	case lexer.OpSub:
		return a - b, nil
	case lexer.OpMul:
		return a * b, nil
	case lexer.OpDiv:
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, errors.Wrapf(ErrInvalidExpression, "unknown operator %q", op)
	}
}
