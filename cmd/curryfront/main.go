// Command curryfront is a front-end toolkit for the Curry functional-logic
// language: a lexer, layout-rule resolution, and surface-syntax parser
// exposed over a small set of diagnostic subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/curryfront/curryfront/cmd/curryfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
