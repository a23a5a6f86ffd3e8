package lexer

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

type TokenType int

const (
	TokEof     TokenType = iota // End of input
	TokInteger                  // A decimal integer literal

	TokPlus  // The ‘+’ operator
	TokMinus // The ‘-’ operator
	TokMul   // The ‘*’ operator
	TokDiv   // The ‘/’ operator

	TokParenOpen
	TokParenClose
	TokBraceOpen
	TokBraceClose
	TokSemicolon

	TokIf
	TokElse
)

var keywords = map[string]TokenType{
	"if":   TokIf,
	"else": TokElse,
}

var spellings = lo.Invert(keywords)

var punctuation = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokMul,
	'/': TokDiv,
	'(': TokParenOpen,
	')': TokParenClose,
	'{': TokBraceOpen,
	'}': TokBraceClose,
	';': TokSemicolon,
}

// IsArith reports whether t is one of the four binary arithmetic operators.
func (t TokenType) IsArith() bool {
	return t == TokPlus || t == TokMinus || t == TokMul || t == TokDiv
}

func (t TokenType) String() string {
	switch t {
	case TokEof:
		return "end of input"
	case TokInteger:
		return "integer"

	case TokPlus:
		return "‘+’"
	case TokMinus:
		return "‘-’"
	case TokMul:
		return "‘*’"
	case TokDiv:
		return "‘/’"

	case TokParenOpen:
		return "‘(’"
	case TokParenClose:
		return "‘)’"
	case TokBraceOpen:
		return "‘{’"
	case TokBraceClose:
		return "‘}’"
	case TokSemicolon:
		return "‘;’"

	case TokIf, TokElse:
		return "‘" + spellings[t] + "’"
	}

	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Pos is a 1-based line and column in the input, counted in runes.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Token struct {
	Kind TokenType
	Val  int64 // Value of a TokInteger
	Pos  Pos   // Position of the first rune of the token
}

func (t Token) String() string {
	if t.Kind == TokInteger {
		return fmt.Sprintf("‘%d’", t.Val)
	}
	return t.Kind.String()
}
