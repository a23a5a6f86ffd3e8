package main

import (
	"errors"

	"git.sr.ht/~mango/reckon/lexer"
	"git.sr.ht/~mango/reckon/parser"
	"git.sr.ht/~mango/reckon/vm"
)

// stage names the pipeline stage that produced err.
func stage(err error) string {
	var (
		lerr *lexer.Error
		perr *parser.ExpectedError
		verr *vm.OpError
	)

	switch {
	case errors.As(err, &lerr):
		return "lexical error"
	case errors.As(err, &perr):
		return "syntax error"
	case errors.As(err, &verr):
		return "evaluation error"
	}
	return "internal error"
}
