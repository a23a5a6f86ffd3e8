package vm

import (
	"errors"
	"fmt"

	"git.sr.ht/~mango/reckon/lexer"
)

var (
	ErrInvalidOperator    = errors.New("Invalid operator")
	ErrDivisionByZero     = errors.New("Division by zero")
	ErrArithmeticOverflow = errors.New("Arithmetic overflow")
)

// OpError is a failed arithmetic operation.  Err is one of the sentinel
// errors above.
type OpError struct {
	Op       lexer.Token
	Lhs, Rhs int64
	Err      error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s in %d %s %d", e.Op.Pos, e.Err, e.Lhs, e.Op, e.Rhs)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type errInternal struct {
	e error
}

func (e errInternal) Error() string {
	return e.e.Error()
}
