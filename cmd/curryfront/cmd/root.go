package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "curryfront",
	Short: "Curry front-end: lexer, layout, and surface-syntax parser",
	Long: `curryfront is a front-end toolkit for Curry, a functional-logic
programming language: a layout-sensitive lexer, the pcomb parser-combinator
engine, and a surface-syntax parser producing a typed AST.

This front end stops at the surface AST: semantic analysis, elaboration to
a flat intermediate form, and evaluation are out of scope.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
