package lexer

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
