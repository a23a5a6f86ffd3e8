// Package reckon evaluates programs consisting of a single arithmetic
// expression or a single if-else statement.
package reckon

import (
	"os"

	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/lexer"
	"git.sr.ht/~mango/reckon/parser"
	"git.sr.ht/~mango/reckon/vm"
)

// Parse returns the syntax tree of src.
func Parse(src string, opts ...parser.Option) (ast.Node, error) {
	p, err := parser.New(lexer.New(src), opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// EvalString evaluates the program src.
func EvalString(src string, opts ...parser.Option) (int64, error) {
	p, err := parser.New(lexer.New(src), opts...)
	if err != nil {
		return 0, err
	}
	return vm.New(p).Interpret()
}

// EvalFile evaluates the program in the named file.
func EvalFile(name string, opts ...parser.Option) (int64, error) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		return 0, err
	}
	return EvalString(string(bytes), opts...)
}
