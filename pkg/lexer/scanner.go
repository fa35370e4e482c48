package lexer

import (
	"errors"
	"strconv"
)

// Scanner splits an arithmetic expression into number and operator tokens.
// Characters that start neither are skipped without error.
type Scanner struct {
	source string
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
}

// Next returns the next token from the source, or a KindEOF token once the
// source is exhausted.
func (s *Scanner) Next() Token {
	for s.cursor < len(s.source) {
		start := s.cursor
		ch := s.source[s.cursor]

		if isDigit(ch) {
			if tok, ok := s.scanNumber(); ok {
				return tok
			}
			continue
		}

		s.cursor++
		if IsOperator(ch) {
			return Token{Kind: KindOperator, Op: ch, Offset: start, Length: 1}
		}
	}

	return Token{Kind: KindEOF, Offset: len(s.source)}
}

// scanNumber consumes digits, an optional '.', then more digits.
// The lexeme must pass a strict float parse to become a Number.
func (s *Scanner) scanNumber() (Token, bool) {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	if s.cursor < len(s.source) && s.source[s.cursor] == '.' {
		s.cursor++
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}

	lexeme := s.source[start:s.cursor]
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, false
	}

	// Out-of-range literals keep the ±Inf ParseFloat reports.
	return Token{Kind: KindNumber, Value: v, Offset: start, Length: s.cursor - start}, true
}

// Tokenize scans the whole input and returns its tokens in order.
// The EOF sentinel is not included.
func Tokenize(input string) []Token {
	s := NewScanner(input)
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Kind == KindEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
