package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readSource reads the named file, or stdin when file is "", returning the
// source text alongside a name suitable for diagnostic positions.
func readSource(file string) (src, name string, err error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), file, nil
}

// isLiterateFile reports whether name's extension marks a literate Curry
// source file (spec §4.1).
func isLiterateFile(name string) bool {
	return strings.HasSuffix(name, ".lcurry")
}
