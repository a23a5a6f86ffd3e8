package vm

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/lexer"
	"git.sr.ht/~mango/reckon/parser"
)

func interpret(t *testing.T, s string) (int64, error) {
	t.Helper()
	p, err := parser.New(lexer.New(s))
	if err != nil {
		return 0, err
	}
	return New(p).Interpret()
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"42", 42},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 2 - 3", 5},
		{"100 / 10 / 5", 2},
		{"2 * (3 + 4) - 5 / 2", 12},
		{"7 / 2", 3},
		{"0-7 / 2", -3},
		{"(0-7) / 2", -3},
		{"if (1) { 10; } else { 20; }", 10},
		{"if (0) { 10; } else { 20; }", 20},
		{"if (0-1) { 10; } else { 20; }", 10},
		{"if (0) { 99; }", 0},
		{"if (5) { 99; }", 99},
		{"if (2 - 2) { 1; } else { 3 * (4 + 5); }", 27},
		{"9223372036854775807", 9223372036854775807},
		{"0 - 9223372036854775807 - 1", -9223372036854775808},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := interpret(t, tt.src)
			if err != nil {
				t.Fatalf("Unexpected error: %s", err)
			}
			if v != tt.want {
				t.Fatalf("Expected %d but got %d", tt.want, v)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	const s = "if (3 - 1) { 6 * 7; } else { 0; }"
	for i := 0; i < 3; i++ {
		if v, err := interpret(t, s); err != nil || v != 42 {
			t.Fatalf("Expected 42 on run %d but got %d (%v)", i, v, err)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
		pos  lexer.Pos
	}{
		{"5 / 0", ErrDivisionByZero, lexer.Pos{Line: 1, Col: 3}},
		{"1 + 10 / (3 - 3)", ErrDivisionByZero, lexer.Pos{Line: 1, Col: 8}},
		{"if (1) { 1 / 0; }", ErrDivisionByZero, lexer.Pos{Line: 1, Col: 12}},
		{"9223372036854775807 + 1", ErrArithmeticOverflow, lexer.Pos{Line: 1, Col: 21}},
		{"0 - 9223372036854775807 - 2", ErrArithmeticOverflow, lexer.Pos{Line: 1, Col: 25}},
		{"4611686018427387904 * 2", ErrArithmeticOverflow, lexer.Pos{Line: 1, Col: 21}},
		{"(0 - 9223372036854775807 - 1) / (0 - 1)", ErrArithmeticOverflow, lexer.Pos{Line: 1, Col: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := interpret(t, tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected ‘%s’ but got ‘%v’", tt.want, err)
			}
			var e *OpError
			if !errors.As(err, &e) {
				t.Fatalf("Expected *OpError but got %T", err)
			}
			if e.Op.Pos != tt.pos {
				t.Fatalf("Expected the error at %s but got %s", tt.pos, e.Op.Pos)
			}
		})
	}
}

func TestUntakenBranchNotEvaluated(t *testing.T) {
	if v, err := interpret(t, "if (0) { 1 / 0; } else { 2; }"); err != nil || v != 2 {
		t.Fatalf("Expected 2 but got %d (%v)", v, err)
	}
	if v, err := interpret(t, "if (1) { 3; } else { 1 / 0; }"); err != nil || v != 3 {
		t.Fatalf("Expected 3 but got %d (%v)", v, err)
	}
}

func TestBothOperandsEvaluated(t *testing.T) {
	// No short-circuit: a zero left operand does not skip the right one
	if _, err := interpret(t, "0 * (1 / 0)"); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Expected ‘%s’ but got ‘%v’", ErrDivisionByZero, err)
	}
}

func TestInvalidOperator(t *testing.T) {
	n := &ast.BinaryOp{
		Lhs: &ast.Number{Val: 1},
		Op:  lexer.Token{Kind: lexer.TokIf},
		Rhs: &ast.Number{Val: 2},
	}
	if _, err := Eval(n); !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("Expected ‘%s’ but got ‘%v’", ErrInvalidOperator, err)
	}
}

func TestNilNode(t *testing.T) {
	if _, err := Eval(nil); err == nil {
		t.Fatalf("Expected an error evaluating a nil node")
	}
}

func TestParseErrorsPassThrough(t *testing.T) {
	if _, err := interpret(t, "(1 + 2"); !errors.Is(err, parser.ErrUnexpectedToken) {
		t.Fatalf("Expected ‘%s’ but got ‘%v’", parser.ErrUnexpectedToken, err)
	}
	if _, err := interpret(t, "1 & 2"); !errors.Is(err, lexer.ErrUnknownCharacter) {
		t.Fatalf("Expected ‘%s’ but got ‘%v’", lexer.ErrUnknownCharacter, err)
	}
}

func TestOpErrorMessage(t *testing.T) {
	_, err := interpret(t, "5 / 0")
	want := "1:3: Division by zero in 5 ‘/’ 0"
	if err == nil || err.Error() != want {
		t.Fatalf("Expected ‘%s’ but got ‘%v’", want, err)
	}
}
