package vm

import (
	"github.com/pkg/errors"

	"github.com/agenthands/ncalc/pkg/lexer"
)

var (
	ErrInvalidExpression = errors.New("vm: invalid expression")
	ErrDivisionByZero    = errors.New("vm: division by zero")
)

// errStackUnderflow is raised as a panic by Pop and converted by Run.
var errStackUnderflow = errors.New("vm: stack underflow")

// Machine holds the two stacks of a single evaluation.
// The zero value is ready to use. A Machine must not be shared between
// concurrent evaluations.
type Machine struct {
	Operands  []float64
	Operators []lexer.Token
}

// Reset clears both stacks, keeping their capacity.
func (m *Machine) Reset() {
	m.Operands = m.Operands[:0]
	m.Operators = m.Operators[:0]
}

// Push adds a value to the operand stack.
func (m *Machine) Push(v float64) {
	m.Operands = append(m.Operands, v)
}

// Pop removes and returns the top operand. Panics on underflow.
func (m *Machine) Pop() float64 {
	n := len(m.Operands)
	if n == 0 {
		panic(errStackUnderflow)
	}
	v := m.Operands[n-1]
	m.Operands = m.Operands[:n-1]
	return v
}

func (m *Machine) pushOperator(tok lexer.Token) {
	m.Operators = append(m.Operators, tok)
}

func (m *Machine) popOperator() lexer.Token {
	n := len(m.Operators)
	tok := m.Operators[n-1]
	m.Operators = m.Operators[:n-1]
	return tok
}

// reduce applies the top operator to the two top operands.
func (m *Machine) reduce() error {
	op := m.popOperator()
	b := m.Pop()
	a := m.Pop()

	res, err := apply(op.Op, a, b)
	if err != nil {
		return errors.Wrapf(err, "operator %q at offset %d", op.Op, op.Offset)
	}
	m.Push(res)
	return nil
}

// Run evaluates tokens with operator precedence and returns the single
// remaining operand.
func (m *Machine) Run(tokens []lexer.Token) (result float64, err error) {
	m.Reset()

	// A missing operand surfaces as a Pop panic.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && e == errStackUnderflow {
				result = 0
				err = errors.Wrap(ErrInvalidExpression, "missing operand")
				return
			}
			panic(r)
		}
	}()

	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.KindNumber:
			m.Push(tok.Value)

		case lexer.KindOperator:
			for len(m.Operators) > 0 && shouldReduce(tok.Op, m.Operators[len(m.Operators)-1].Op) {
				if err := m.reduce(); err != nil {
					return 0, err
				}
			}
			m.pushOperator(tok)

		default:
			return 0, errors.Wrapf(ErrInvalidExpression, "unexpected %v token at offset %d", tok.Kind, tok.Offset)
		}
	}

	for len(m.Operators) > 0 {
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}

	if len(m.Operands) != 1 {
		return 0, errors.Wrapf(ErrInvalidExpression, "%d operands left after reduction", len(m.Operands))
	}
	return m.Operands[0], nil
}

// Evaluate runs tokens on a fresh Machine. It keeps no state between calls
// and is safe for concurrent use.
func Evaluate(tokens []lexer.Token) (float64, error) {
	var m Machine
	return m.Run(tokens)
}
