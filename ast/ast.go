package ast

import "git.sr.ht/~mango/reckon/lexer"

// See grammar.ebnf in the project root for details

// Node is a node of the syntax tree.  Every node is one of *Number, *BinaryOp
// or *Conditional.
type Node interface {
	Pos() lexer.Pos
	isNode()
}

// Number is an integer literal
type Number struct {
	Val int64
	At  lexer.Pos
}

// BinaryOp is an arithmetic operation.  Op is always one of ‘+’, ‘-’, ‘*’ or
// ‘/’; NewBinaryOp refuses anything else.
type BinaryOp struct {
	Lhs Node
	Op  lexer.Token
	Rhs Node
}

// Conditional is an if-else statement.  When the source has no else-clause,
// Else is a Number of 0.
type Conditional struct {
	Cond Node
	Then Node
	Else Node
	At   lexer.Pos
}

func NewBinaryOp(lhs Node, op lexer.Token, rhs Node) (*BinaryOp, bool) {
	if !op.Kind.IsArith() {
		return nil, false
	}
	return &BinaryOp{Lhs: lhs, Op: op, Rhs: rhs}, true
}

func (n *Number) Pos() lexer.Pos      { return n.At }
func (n *BinaryOp) Pos() lexer.Pos    { return n.Op.Pos }
func (n *Conditional) Pos() lexer.Pos { return n.At }

func (_ *Number) isNode()      {}
func (_ *BinaryOp) isNode()    {}
func (_ *Conditional) isNode() {}
