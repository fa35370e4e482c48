// Package session models a calculator keypad and display without any UI
// toolkit: keys append to an input line, "=" evaluates it, and every
// failure is shown as one generic message.
package session

import (
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/agenthands/ncalc/pkg/calc"
)

// DefaultErrorMessage is shown in place of a result when evaluation fails.
const DefaultErrorMessage = "Error"

var ErrUnknownKey = errors.New("session: unknown key")

var keypad = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	".", "+", "-", "*", "/",
}

// Session holds the input line and the last result text.
// It is not safe for concurrent use.
type Session struct {
	Log          logr.Logger
	ErrorMessage string

	input   strings.Builder
	result  string
	lastErr error
}

// New creates a session that reports failures as errorMessage.
// An empty errorMessage falls back to DefaultErrorMessage.
func New(errorMessage string, log logr.Logger) *Session {
	if errorMessage == "" {
		errorMessage = DefaultErrorMessage
	}
	return &Session{Log: log, ErrorMessage: errorMessage}
}

// Press appends a keypad key to the input.
func (s *Session) Press(key string) error {
	if !slices.Contains(keypad, key) {
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	s.input.WriteString(key)
	return nil
}

// Type appends raw text to the input as if it was entered in the text field.
func (s *Session) Type(text string) {
	s.input.WriteString(text)
}

// Clear empties both the input and the result.
func (s *Session) Clear() {
	s.input.Reset()
	s.result = ""
	s.lastErr = nil
}

// Equals evaluates the current input and returns the new result text.
func (s *Session) Equals() string {
	expr := s.input.String()
	out, err := calc.EvalString(expr)
	s.lastErr = err
	if err != nil {
		s.Log.V(1).Info("evaluation failed", "expression", expr, "error", err.Error())
		s.result = s.ErrorMessage
		return s.result
	}

	s.Log.V(1).Info("evaluated", "expression", expr, "result", out)
	s.result = out
	return s.result
}

// Input returns the text entered so far.
func (s *Session) Input() string { return s.input.String() }

// Result returns the text shown after the last Equals.
func (s *Session) Result() string { return s.result }

// LastError returns the error behind the last Equals, if any.
func (s *Session) LastError() error { return s.lastErr }

// Keys returns the keypad keys accepted by Press.
func Keys() []string { return slices.Clone(keypad) }
