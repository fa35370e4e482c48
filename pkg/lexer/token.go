package lexer

import "strconv"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operator symbols recognized by the scanner.
const (
	OpAdd byte = '+'
	OpSub byte = '-'
	OpMul byte = '*'
	OpDiv byte = '/'
)

// IsOperator reports whether ch is one of the four binary operators.
func IsOperator(ch byte) bool {
	return ch == OpAdd || ch == OpSub || ch == OpMul || ch == OpDiv
}

// Token is either a parsed number or a single operator symbol.
// Offset and Length are byte positions in the scanned source.
type Token struct {
	Kind   Kind
	Op     byte    // set for KindOperator
	Value  float64 // set for KindNumber
	Offset int
	Length int
}

// Number builds a number token without source position.
func Number(v float64) Token {
	return Token{Kind: KindNumber, Value: v}
}

// Operator builds an operator token without source position.
func Operator(op byte) Token {
	return Token{Kind: KindOperator, Op: op, Length: 1}
}

// Lexeme returns the slice of src the token was scanned from.
func (t Token) Lexeme(src string) string {
	end := t.Offset + t.Length
	if t.Offset < 0 || t.Length < 0 || end > len(src) {
		return ""
	}
	return src[t.Offset:end]
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return "Number(" + strconv.FormatFloat(t.Value, 'g', -1, 64) + ")"
	case KindOperator:
		return "Operator(" + string(t.Op) + ")"
	default:
		return t.Kind.String()
	}
}
