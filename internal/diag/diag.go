// Package diag carries the fatal-error-plus-warnings channel threaded
// through every pipeline entry point (spec §6.3, §7), and formats
// diagnostics with source context the way the teacher's error package
// formats compiler errors.
package diag

import (
	"fmt"
	"strings"

	"github.com/curryfront/curryfront/pkg/position"
)

// Kind classifies the failure families from spec §7.
type Kind int

const (
	KindLiterate Kind = iota
	KindLex
	KindParse
	KindAmbiguity
	KindSelectorMismatch
	KindInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindLiterate:
		return "literate error"
	case KindLex:
		return "lexical error"
	case KindParse:
		return "parse error"
	case KindAmbiguity:
		return "ambiguity error"
	case KindSelectorMismatch:
		return "selector mismatch"
	case KindInvariantViolation:
		return "invariant violation"
	default:
		return "error"
	}
}

// Diagnostic is a single fatal error or warning, optionally carrying a
// position and an offending label supplied by a parser's `<?>` combinator.
type Diagnostic struct {
	Kind    Kind
	Message string
	Pos     position.Position
	Label   string // optional custom label from <?>, "" if none
}

// New builds a Diagnostic.
func New(kind Kind, pos position.Position, message string) Diagnostic {
	return Diagnostic{Kind: kind, Pos: pos, Message: message}
}

// WithLabel attaches a custom label (from the `<?>` combinator) to a
// diagnostic, returning the updated value.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// Error implements the error interface with the §6.3 wire format:
// "<file>:<line>.<column>: <message>".
func (d Diagnostic) Error() string {
	msg := d.Message
	if d.Label != "" {
		msg = d.Label
	}
	if d.Pos.IsConcrete() {
		return fmt.Sprintf("%s: %s", d.Pos.String(), msg)
	}
	return msg
}

// Format renders a diagnostic with a source-context line and a caret
// pointing at the offending column, mirroring the teacher's
// CompilerError.Format. If color is true, ANSI codes highlight the caret
// and message.
func (d Diagnostic) Format(source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s\n", d.Kind, d.Error()))

	if d.Pos.IsConcrete() {
		if line := sourceLine(source, d.Pos.Line()); line != "" {
			lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line())
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column()-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll formats a slice of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []Diagnostic, source string, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(source, color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d diagnostic(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(diags)))
		sb.WriteString(d.Format(source, color))
		if i < len(diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Result pairs a pipeline stage's value with its accumulated warnings, and
// an optional fatal error. This is the "result value paired with a list of
// diagnostics" channel from spec §6.3.
type Result[A any] struct {
	Value    A
	Warnings []Diagnostic
	Fatal    *Diagnostic
}

// Ok wraps a successful value with no warnings.
func Ok[A any](v A) Result[A] {
	return Result[A]{Value: v}
}

// Fail wraps a fatal diagnostic; Value is the zero value of A.
func Fail[A any](fatal Diagnostic) Result[A] {
	return Result[A]{Fatal: &fatal}
}

// WithWarnings returns a copy of r with the given warnings appended.
func (r Result[A]) WithWarnings(ws ...Diagnostic) Result[A] {
	r.Warnings = append(append([]Diagnostic{}, r.Warnings...), ws...)
	return r
}

// OK reports whether no fatal error occurred.
func (r Result[A]) OK() bool { return r.Fatal == nil }

// BlockFrame names a single nesting level of structure the parser is
// currently inside (e.g. "let", "case", "do"), used to annotate error
// messages the way the teacher's BlockContext/StackFrame do.
type BlockFrame struct {
	Kind     string
	Pos      position.Position
}

// String renders a frame as "<kind> block starting at line N".
func (f BlockFrame) String() string {
	return fmt.Sprintf("%s block starting at line %d", f.Kind, f.Pos.Line())
}

// BlockTrace is a stack of BlockFrame, innermost last.
type BlockTrace []BlockFrame

// Push returns a new trace with frame appended.
func (bt BlockTrace) Push(frame BlockFrame) BlockTrace {
	return append(append(BlockTrace{}, bt...), frame)
}

// Pop returns a new trace with the innermost frame removed (no-op if empty).
func (bt BlockTrace) Pop() BlockTrace {
	if len(bt) == 0 {
		return bt
	}
	return bt[:len(bt)-1]
}

// Innermost returns the innermost frame, or nil if the trace is empty.
func (bt BlockTrace) Innermost() *BlockFrame {
	if len(bt) == 0 {
		return nil
	}
	return &bt[len(bt)-1]
}

// Annotate appends "(in <innermost frame>)" to msg when the trace is
// non-empty, matching the teacher's addErrorWithContext.
func (bt BlockTrace) Annotate(msg string) string {
	if f := bt.Innermost(); f != nil {
		return fmt.Sprintf("%s (in %s)", msg, f.String())
	}
	return msg
}
