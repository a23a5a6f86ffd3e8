package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

func label(n Node) string {
	switch n := n.(type) {
	case *Number:
		return strconv.FormatInt(n.Val, 10)
	case *BinaryOp:
		return n.Op.Kind.String()
	case *Conditional:
		return "if"
	}
	return fmt.Sprintf("%T", n)
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *BinaryOp:
		return []Node{n.Lhs, n.Rhs}
	case *Conditional:
		return []Node{n.Cond, n.Then, n.Else}
	}
	return nil
}

// String renders n as an s-expression, e.g. (‘+’ 1 (‘*’ 2 3)).
func String(n Node) string {
	xs := children(n)
	if len(xs) == 0 {
		return label(n)
	}
	return "(" + label(n) + " " + strings.Join(lo.Map(xs, func(c Node, _ int) string {
		return String(c)
	}), " ") + ")"
}

// Print draws n as a tree, one node per line.
func Print(w io.Writer, n Node) {
	fmt.Fprintln(w, label(n))
	printChildren(w, "", children(n))
}

func printChildren(w io.Writer, indent string, xs []Node) {
	for i, n := range xs {
		switch i {
		case len(xs) - 1:
			fmt.Fprintf(w, "%s└─%s\n", indent, label(n))
			printChildren(w, indent+"  ", children(n))
		default:
			fmt.Fprintf(w, "%s├─%s\n", indent, label(n))
			printChildren(w, indent+"│ ", children(n))
		}
	}
}
