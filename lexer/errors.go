package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCharacter = errors.New("Unknown character")
	ErrInvalidLiteral   = errors.New("Invalid integer literal")
)

// Error is a lexical error.  Err is one of the sentinel errors above.
type Error struct {
	Pos  Pos    // Where the offending text starts
	Text string // The offending text
	Word string // Word containing Text, if any
	Err  error
}

func (e *Error) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s: %s ‘%s’ in ‘%s’", e.Pos, e.Err, e.Text, e.Word)
	}
	return fmt.Sprintf("%s: %s ‘%s’", e.Pos, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}
