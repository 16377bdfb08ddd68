package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/loon-lang/loon/pkg/ioctx"
	"github.com/loon-lang/loon/pkg/loon"
)

// splitCommand breaks ":cmd rest of line" into the command name and its
// argument text.
func splitCommand(line string) (name, arg string) {
	line = strings.TrimPrefix(line, ":")
	name, arg, _ = strings.Cut(line, " ")
	return name, strings.TrimSpace(arg)
}

// runCommand dispatches a colon-prefixed REPL command. It returns true when
// the REPL should exit.
func runCommand(ctx context.Context, st *replState, line string) bool {
	stdout := ioctx.StdoutFromContext(ctx)
	name, arg := splitCommand(line)

	switch name {
	case "exit", "quit":
		return true

	case "help":
		fmt.Fprintln(stdout, st.styles.dim.Render(helpText))

	case "version":
		fmt.Fprintln(stdout, "loon "+version)

	case "history":
		// The command that asked is already recorded; skip it.
		for i, entry := range st.history[:len(st.history)-1] {
			fmt.Fprintf(stdout, "%4d  %s\n", i+1, entry)
		}

	case "tokens":
		toks, err := loon.Tokenize(arg)
		if err != nil {
			fmt.Fprintln(stdout, st.styles.err.Render(err.Error()))
			return false
		}
		for _, tok := range toks {
			fmt.Fprintln(stdout, tok.String())
		}

	case "ast":
		toks, err := loon.Tokenize(arg)
		if err != nil {
			fmt.Fprintln(stdout, st.styles.err.Render(err.Error()))
			return false
		}
		root, err := loon.Parse(toks)
		if err != nil {
			fmt.Fprintln(stdout, st.styles.err.Render(err.Error()))
			return false
		}
		_, _ = pretty.Fprintf(stdout, "%# v\n", root)

	default:
		fmt.Fprintln(stdout, st.styles.err.Render("unknown command :"+name+" (try :help)"))
	}
	return false
}

const helpText = `Commands:
  :help             show this help
  :tokens <expr>    print the token stream for an expression
  :ast <expr>       parse an expression and dump its syntax tree
  :history          list prior inputs
  :version          print the loon version
  :exit, :quit      leave the REPL

Anything else is checked as an expression; each variable's inferred type is
printed as "<name> :: <TYPE>".`
