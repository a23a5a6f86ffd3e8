package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/reckon"
	"git.sr.ht/~mango/reckon/ast"
	"git.sr.ht/~mango/reckon/log"
	"git.sr.ht/~mango/reckon/parser"
	"git.sr.ht/~mango/reckon/vm"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func usage(w io.Writer) int {
	fmt.Fprintln(w, "Usage: reckon [-lt] file | reckon [-lt] -e source")
	return 1
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	opts, optind, err := getopt.Getopts(args, "e:lt")
	if err != nil {
		log.Err("%s", err)
		return usage(stderr)
	}

	var (
		src       string
		inline    bool
		printTree bool
		popts     []parser.Option
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			src, inline = opt.Value, true
		case 'l':
			popts = append(popts, parser.Lenient())
		case 't':
			printTree = true
		}
	}

	switch rest := args[optind:]; {
	case inline && len(rest) == 0:
	case !inline && len(rest) == 1:
		bytes, err := os.ReadFile(rest[0])
		if err != nil {
			log.Err("%s", err)
			return 1
		}
		src = string(bytes)
	default:
		return usage(stderr)
	}

	var v int64
	if printTree {
		var tree ast.Node
		if tree, err = reckon.Parse(src, popts...); err == nil {
			ast.Print(stderr, tree)
			v, err = vm.Eval(tree)
		}
	} else {
		v, err = reckon.EvalString(src, popts...)
	}
	if err != nil {
		log.Err("%s: %s", stage(err), err)
		return 1
	}

	fmt.Fprintf(stdout, "Result: %d\n", v)
	return 0
}
