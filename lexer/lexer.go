package lexer

import "unicode/utf8"

const eof rune = -1

// Lexer turns source text into tokens on demand.  It is a state-function
// lexer, but instead of running in its own goroutine and pushing tokens down a
// channel, each call to Next steps the state machine until a token is ready.
type Lexer struct {
	input    string  // The input string to lex
	start    int     // The start of the current token in input
	pos      int     // The pos of the cursor in input
	line     int     // Line of the cursor
	col      int     // Column of the cursor
	startPos Pos     // Position of the current token
	state    lexFn   // State to run on the next step
	pending  []Token // Tokens emitted but not yet returned
	err      error   // Sticky error; once set, lexing is over
}

func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		line:     1,
		col:      1,
		startPos: Pos{1, 1},
		state:    lexDefault,
	}
}

// Next returns the next token of the input.  Once the input is exhausted it
// keeps returning a TokEof token, and once an error has occurred it keeps
// returning that error.
func (l *Lexer) Next() (Token, error) {
	for len(l.pending) == 0 && l.err == nil {
		l.state = l.state(l)
	}
	if len(l.pending) == 0 {
		return Token{}, l.err
	}

	t := l.pending[0]
	l.pending = l.pending[1:]
	return t, nil
}

func (l *Lexer) emit(t TokenType) {
	l.emitVal(t, 0)
}

func (l *Lexer) emitVal(t TokenType, v int64) {
	l.pending = append(l.pending, Token{Kind: t, Val: v, Pos: l.startPos})
	l.ignore()
}

// ignore drops everything between the start of the current token and the
// cursor.
func (l *Lexer) ignore() {
	l.start = l.pos
	l.startPos = Pos{l.line, l.col}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) acceptRun(valid func(rune) bool) int {
	n := 0
	for valid(l.peek()) {
		l.next()
		n++
	}
	return n
}

func (l *Lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *Lexer) errorf(err error, text, word string) lexFn {
	l.err = &Error{
		Pos:  l.startPos,
		Text: text,
		Word: word,
		Err:  err,
	}
	return nil
}
