package parser

import (
	"golang.org/x/exp/slices"

	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/lexer"
)

var (
	addOps = []lexer.TokenType{lexer.TokPlus, lexer.TokMinus}
	mulOps = []lexer.TokenType{lexer.TokMul, lexer.TokDiv}
)

func (p *Parser) parseProgram() (ast.Node, error) {
	if p.tok.Kind == lexer.TokIf {
		return p.parseConditional()
	}
	return p.parseExpr()
}

func (p *Parser) parseConditional() (ast.Node, error) {
	ifTok, err := p.expect(lexer.TokIf)
	if err != nil {
		return nil, err
	}

	if err := p.openDelim(lexer.TokParenOpen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.closeDelim(lexer.TokParenClose); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var els ast.Node = &ast.Number{Val: 0, At: p.tok.Pos}
	if p.tok.Kind == lexer.TokElse {
		if _, err := p.expect(lexer.TokElse); err != nil {
			return nil, err
		}
		if els, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}

	return &ast.Conditional{
		Cond: cond,
		Then: then,
		Else: els,
		At:   ifTok.Pos,
	}, nil
}

func (p *Parser) parseBlock() (ast.Node, error) {
	if err := p.openDelim(lexer.TokBraceOpen); err != nil {
		return nil, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	if err := p.closeDelim(lexer.TokBraceClose); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseChain(addOps, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Node, error) {
	return p.parseChain(mulOps, p.parseFactor)
}

// parseChain parses operand (op operand)* for the operators in ops, folding
// to the left so that 1-2-3 becomes (1-2)-3.
func (p *Parser) parseChain(ops []lexer.TokenType, operand func() (ast.Node, error)) (ast.Node, error) {
	lhs, err := operand()
	if err != nil {
		return nil, err
	}

	for slices.Contains(ops, p.tok.Kind) {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := operand()
		if err != nil {
			return nil, err
		}

		n, ok := ast.NewBinaryOp(lhs, op, rhs)
		if !ok {
			return nil, &ExpectedError{Want: ops, Got: op}
		}
		lhs = n
	}

	return lhs, nil
}

func (p *Parser) parseFactor() (ast.Node, error) {
	switch t := p.tok; t.Kind {
	case lexer.TokInteger:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Number{Val: t.Val, At: t.Pos}, nil
	case lexer.TokParenOpen:
		if err := p.openDelim(lexer.TokParenOpen); err != nil {
			return nil, err
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.closeDelim(lexer.TokParenClose); err != nil {
			return nil, err
		}
		return n, nil
	}

	return nil, p.unexpected(lexer.TokInteger, lexer.TokParenOpen)
}

func (p *Parser) openDelim(k lexer.TokenType) error {
	t, err := p.expect(k)
	if err != nil {
		return err
	}
	p.open.Push(t)
	return nil
}

func (p *Parser) closeDelim(k lexer.TokenType) error {
	if _, err := p.expect(k); err != nil {
		return err
	}
	p.open.Pop()
	return nil
}
