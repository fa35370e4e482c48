// Package calc evaluates arithmetic expressions made of non-negative decimal
// numbers and the binary operators + - * /.
//
// Multiplication and division bind tighter than addition and subtraction,
// and operators of equal precedence associate to the left. Characters that
// are neither digits, '.', nor operators are ignored.
package calc

import (
	"errors"

	"github.com/agenthands/ncalc/pkg/core/value"
	"github.com/agenthands/ncalc/pkg/lexer"
	"github.com/agenthands/ncalc/pkg/vm"
)

// Eval tokenizes and evaluates expr.
func Eval(expr string) (float64, error) {
	return vm.Evaluate(lexer.Tokenize(expr))
}

// EvalString evaluates expr and formats the result for display.
func EvalString(expr string) (string, error) {
	res, err := Eval(expr)
	if err != nil {
		return "", err
	}
	return value.Format(res), nil
}

// IsInvalidExpression reports whether err stems from a malformed expression.
func IsInvalidExpression(err error) bool {
	return errors.Is(err, vm.ErrInvalidExpression)
}

// IsDivisionByZero reports whether err stems from dividing by exactly zero.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, vm.ErrDivisionByZero)
}
