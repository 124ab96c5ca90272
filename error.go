package gocalc

import (
	"fmt"
)

// ErrorKind classifies failures of the pipeline. Each kind is itself an
// error so callers can match with errors.Is(err, ErrSyntax).
type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota + 1
	ErrSyntax
	ErrDivisionByZero
	ErrRange
	ErrInternal
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrSyntax:
		return "syntax error"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrRange:
		return "out of range"
	case ErrInternal:
		return "internal error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

type Error struct {
	Kind ErrorKind
	Pos  int

	// Char is the offending rune of an ErrInvalidCharacter.
	Char rune

	// Expected and Got describe a failed token expectation.
	Expected string
	Got      string

	Msg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidCharacter:
		return fmt.Sprintf("invalid character: '%c' (%d)", e.Char, e.Pos)
	case ErrSyntax:
		if e.Expected != "" {
			return fmt.Sprintf("syntax error: expected %s but got %s (%d)", e.Expected, e.Got, e.Pos)
		}
	}
	if e.Msg != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Kind
}
