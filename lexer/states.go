package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexFn func(*Lexer) lexFn

func lexDefault(l *Lexer) lexFn {
	l.acceptRun(unicode.IsSpace)
	l.ignore()

	switch r := l.peek(); {
	case r == eof:
		return lexEof
	case isDigit(r):
		return lexInteger
	case unicode.IsLetter(r):
		return lexWord
	}

	r := l.next()
	if t, ok := punctuation[r]; ok {
		l.emit(t)
		return lexDefault
	}
	return l.errorf(ErrUnknownCharacter, string(r), "")
}

// lexEof emits one TokEof per step, forever.
func lexEof(l *Lexer) lexFn {
	l.emit(TokEof)
	return lexEof
}

func lexInteger(l *Lexer) lexFn {
	l.acceptRun(isDigit)
	s := l.current()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return l.errorf(ErrInvalidLiteral, s, "")
	}
	l.emitVal(TokInteger, n)
	return lexDefault
}

// lexWord reads a maximal run of letters and looks it up in the keyword
// table.  There are no identifiers, so any other word is an error at its first
// character.
func lexWord(l *Lexer) lexFn {
	l.acceptRun(unicode.IsLetter)
	w := l.current()
	if t, ok := keywords[w]; ok {
		l.emit(t)
		return lexDefault
	}
	r, _ := utf8.DecodeRuneInString(w)
	return l.errorf(ErrUnknownCharacter, string(r), w)
}
