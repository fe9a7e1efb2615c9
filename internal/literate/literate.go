// Package literate implements the literate-source preprocessor (spec §4.1):
// stripping literate markers from ".lcurry" files before lexing, enforcing
// the adjacency rule between program and comment lines.
package literate

import (
	"strings"

	"github.com/curryfront/curryfront/pkg/position"
)

// lineKind classifies a single input line.
type lineKind int

const (
	kindBlank lineKind = iota
	kindComment
	kindProgram
)

// programLead is the character that marks a literate program line.
const programLead = '>'

// Error reports a literate-preprocessing failure: empty source, or a
// program line adjacent to a comment line.
type Error struct {
	Message string
	Pos     position.Position
}

func (e *Error) Error() string { return e.Message }

// Preprocess converts literate source into plain source text. For
// non-literate files (literate == false) it is the identity.
//
// Literate-file rules (spec §4.1):
//  1. Every line is Program (starts with '>', payload is the remainder),
//     Blank (only whitespace), or Comment (anything else).
//  2. If no line is Program, that is a fatal "No code in literate script"
//     at (file, 1, 1).
//  3. A Program line adjacent to a Comment line (immediately before or
//     after) is fatal, reported at the Program line's position.
//
// Output is the sequence of Program payloads, joined by newlines.
func Preprocess(file, src string, literate bool) (string, *Error) {
	if !literate {
		return src, nil
	}

	lines := strings.Split(src, "\n")
	kinds := make([]lineKind, len(lines))
	for i, line := range lines {
		kinds[i] = classify(line)
	}

	anyProgram := false
	for _, k := range kinds {
		if k == kindProgram {
			anyProgram = true
			break
		}
	}
	if !anyProgram {
		return "", &Error{
			Message: "No code in literate script",
			Pos:     position.First(file),
		}
	}

	for i, k := range kinds {
		if k != kindProgram {
			continue
		}
		pos := position.NewConcrete(file, i+1, 1)
		if i > 0 && kinds[i-1] == kindComment {
			return "", &Error{Message: "Program line is preceded by comment line", Pos: pos}
		}
		if i+1 < len(kinds) && kinds[i+1] == kindComment {
			return "", &Error{Message: "Program line is followed by comment line", Pos: pos}
		}
	}

	var payloads []string
	for i, k := range kinds {
		if k == kindProgram {
			payloads = append(payloads, lines[i][1:])
		}
	}
	return strings.Join(payloads, "\n"), nil
}

func classify(line string) lineKind {
	if len(line) > 0 && line[0] == programLead {
		return kindProgram
	}
	if strings.TrimSpace(line) == "" {
		return kindBlank
	}
	return kindComment
}

// IsLiterateExtension reports whether path's extension marks a literate
// source file (".lcurry"), per spec §6.1.
func IsLiterateExtension(path string) bool {
	return strings.HasSuffix(path, ".lcurry")
}
