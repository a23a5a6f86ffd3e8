package parser

import (
	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/lexer"
	"git.sr.ht/~mango/reckon/pkg/stack"
)

// Parser builds the syntax tree of one program.  It holds a single token of
// lookahead and is good for exactly one call to Parse.
type Parser struct {
	lex    *lexer.Lexer
	tok    lexer.Token              // Lookahead
	open   stack.Stack[lexer.Token] // Unclosed ‘(’ and ‘{’ tokens
	strict bool
	used   bool
}

type Option func(*Parser)

// Lenient makes Parse ignore whatever follows the top-level expression or
// conditional.  By default anything other than the end of input is an error.
func Lenient() Option {
	return func(p *Parser) {
		p.strict = false
	}
}

// New returns a parser reading from l.  The first token is read immediately,
// so a lexical error at the very start of the input is reported here.
func New(l *lexer.Lexer, opts ...Option) (*Parser, error) {
	p := &Parser{
		lex:    l,
		open:   stack.New[lexer.Token](4),
		strict: true,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse returns the syntax tree of the whole input.
func (p *Parser) Parse() (ast.Node, error) {
	if p.used {
		return nil, ErrReused
	}
	p.used = true

	n, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.strict && p.tok.Kind != lexer.TokEof {
		return nil, p.unexpected(lexer.TokEof)
	}
	return n, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// expect consumes the lookahead if it is of kind k and returns it.
func (p *Parser) expect(k lexer.TokenType) (lexer.Token, error) {
	t := p.tok
	if t.Kind != k {
		return t, p.unexpected(k)
	}
	return t, p.advance()
}

func (p *Parser) unexpected(want ...lexer.TokenType) error {
	e := &ExpectedError{Want: want, Got: p.tok}
	if t := p.open.Peek(); t != nil {
		o := *t
		e.Open = &o
	}
	return e
}
