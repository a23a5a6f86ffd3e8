package vm

import "golang.org/x/exp/constraints"

// The helpers below return the wrapped result and whether it is exact.

func add[T constraints.Signed](a, b T) (T, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func sub[T constraints.Signed](a, b T) (T, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && c == b) || (b == -1 && c == a) {
		// Only the most negative value is its own negation
		return c, false
	}
	return c, c/b == a
}

// div truncates toward zero.  b must not be zero.
func div[T constraints.Signed](a, b T) (T, bool) {
	if b == -1 && a != 0 && a == -a {
		return a, false
	}
	return a / b, true
}
