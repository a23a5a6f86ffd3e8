package vm

import (
	"fmt"

	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/lexer"
	"git.sr.ht/~mango/reckon/parser"
)

// Interpreter evaluates the program of the parser it was given.
type Interpreter struct {
	p *parser.Parser
}

func New(p *parser.Parser) *Interpreter {
	return &Interpreter{p}
}

// Interpret parses the program and reduces it to a single integer.
func (in *Interpreter) Interpret() (int64, error) {
	tree, err := in.p.Parse()
	if err != nil {
		return 0, err
	}
	return Eval(tree)
}

// Eval reduces n to an integer.  Both operands of an operator are evaluated,
// left first; of a conditional only the selected branch is.
func Eval(n ast.Node) (int64, error) {
	switch n := n.(type) {
	case *ast.Number:
		return n.Val, nil

	case *ast.BinaryOp:
		lhs, err := Eval(n.Lhs)
		if err != nil {
			return 0, err
		}
		rhs, err := Eval(n.Rhs)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, lhs, rhs)

	case *ast.Conditional:
		cond, err := Eval(n.Cond)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return Eval(n.Then)
		}
		return Eval(n.Else)
	}

	return 0, errInternal{fmt.Errorf("Cannot evaluate syntax tree node %T", n)}
}

func apply(op lexer.Token, lhs, rhs int64) (int64, error) {
	var (
		v  int64
		ok bool
	)

	switch op.Kind {
	case lexer.TokPlus:
		v, ok = add(lhs, rhs)
	case lexer.TokMinus:
		v, ok = sub(lhs, rhs)
	case lexer.TokMul:
		v, ok = mul(lhs, rhs)
	case lexer.TokDiv:
		if rhs == 0 {
			return 0, &OpError{op, lhs, rhs, ErrDivisionByZero}
		}
		v, ok = div(lhs, rhs)
	default:
		return 0, &OpError{op, lhs, rhs, ErrInvalidOperator}
	}

	if !ok {
		return 0, &OpError{op, lhs, rhs, ErrArithmeticOverflow}
	}
	return v, nil
}
