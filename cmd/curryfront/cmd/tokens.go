package cmd

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/curryfront/curryfront/internal/lexer"
	"github.com/curryfront/curryfront/internal/literate"
	"github.com/curryfront/curryfront/pkg/token"
)

var (
	tokensPretty bool
	tokensFormat string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream, including synthesized layout tokens",
	Long: `Dump the token stream produced by the lexer and layout-rule pass.

Virtual tokens synthesized by the off-side layout rule (VOPEN, VCLOSE,
VSEMI) are rendered distinctly from tokens that appeared literally in the
source, which makes this command useful for debugging layout insertion.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensPretty, "pretty", false, "align columns, width-aware")
	tokensCmd.Flags().StringVar(&tokensFormat, "format", "text", "output format: text or yaml")
}

type tokenDump struct {
	Category string `yaml:"category"`
	Literal  string `yaml:"literal,omitempty"`
	Line     int    `yaml:"line"`
	Column   int    `yaml:"column"`
	Virtual  bool   `yaml:"virtual,omitempty"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	file := ""
	if len(args) == 1 {
		file = args[0]
	}
	src, name, err := readSource(file)
	if err != nil {
		return err
	}
	if isLiterateFile(name) {
		pre, lerr := literate.Preprocess(name, src, true)
		if lerr != nil {
			return fmt.Errorf("%s: %s", lerr.Pos.String(), lerr.Message)
		}
		src = pre
	}

	l := lexer.New(name, src)
	var dumps []tokenDump
	for {
		tok := l.NextToken()
		dumps = append(dumps, tokenDump{
			Category: tok.Cat.String(),
			Literal:  tok.Lit,
			Line:     tok.Pos.Line(),
			Column:   tok.Pos.Column(),
			Virtual:  tok.Cat.IsVirtual(),
		})
		if tok.Cat == token.EOF {
			break
		}
	}

	if tokensFormat == "yaml" {
		out, err := yaml.Marshal(dumps)
		if err != nil {
			return fmt.Errorf("marshalling tokens to yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	printTokenTable(dumps)
	return nil
}

func printTokenTable(dumps []tokenDump) {
	if !tokensPretty {
		for _, d := range dumps {
			printTokenLine(d)
		}
		return
	}

	catWidth := 0
	for _, d := range dumps {
		if w := displayWidth(d.Category); w > catWidth {
			catWidth = w
		}
	}
	for _, d := range dumps {
		pad := catWidth - displayWidth(d.Category)
		fmt.Printf("%s%s  %-20q @%d:%d", d.Category, strings.Repeat(" ", pad), d.Literal, d.Line, d.Column)
		if d.Virtual {
			fmt.Print("  (virtual)")
		}
		fmt.Println()
	}
}

func printTokenLine(d tokenDump) {
	mark := ""
	if d.Virtual {
		mark = " (virtual)"
	}
	fmt.Printf("%s %q @%d:%d%s\n", d.Category, d.Literal, d.Line, d.Column, mark)
}

// displayWidth sums the terminal column width of s, treating East Asian
// Wide and Fullwidth runes as two columns so --pretty's table stays
// aligned when identifiers or string literals contain them.
func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}
	return total
}
