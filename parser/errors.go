package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"git.sr.ht/~mango/reckon/lexer"
)

var (
	ErrUnexpectedToken = errors.New("Unexpected token")
	ErrReused          = errors.New("Parser has already produced its tree")
)

// ExpectedError reports a lookahead token that does not fit the grammar at
// that point.  It matches ErrUnexpectedToken under errors.Is.
type ExpectedError struct {
	Want []lexer.TokenType
	Got  lexer.Token
	Open *lexer.Token // Innermost unclosed ‘(’ or ‘{’, if any
}

func (e *ExpectedError) Error() string {
	want := strings.Join(lo.Map(e.Want, func(k lexer.TokenType, _ int) string {
		return k.String()
	}), " or ")

	s := fmt.Sprintf("%s: Expected %s but got %s", e.Got.Pos, want, e.Got)
	if e.Open != nil {
		s += fmt.Sprintf(" (%s opened at %s)", e.Open, e.Open.Pos)
	}
	return s
}

func (e *ExpectedError) Is(target error) bool {
	return target == ErrUnexpectedToken
}
