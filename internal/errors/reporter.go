package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"prism/internal/parser"
)

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
)

// Diagnostic is a renderable report about one location in the source
type Diagnostic struct {
	Level    Level
	Code     string          // Error code like E0150
	Message  string          // Primary message
	Position parser.Position // Location in source
	Length   int             // Length of the problematic region
	Notes    []string        // Additional context notes
	HelpText string          // Help text for the diagnostic
}

// FromScanError converts a lexical error into a diagnostic
func FromScanError(err parser.ScanError) Diagnostic {
	code := CodeLexError
	if err.Kind == parser.UnterminatedString {
		code = CodeUnterminatedString
	}
	return Diagnostic{
		Level:    Error,
		Code:     code,
		Message:  err.Message,
		Position: err.Position,
		Length:   err.Length,
	}
}

// FromParseError converts a syntax error into a diagnostic. The parser's
// expectation list becomes the help text.
func FromParseError(err parser.ParseError) Diagnostic {
	code := CodeSyntaxError
	if err.Kind == parser.UnterminatedConstruct {
		code = CodeUnterminatedConstruct
	}
	d := Diagnostic{
		Level:    Error,
		Code:     code,
		Message:  err.Message,
		Position: err.Position,
	}
	if len(err.Expected) > 0 {
		d.HelpText = "expected " + strings.Join(err.Expected, " or ")
	}
	return d
}

// Reporter renders diagnostics against the source they point into,
// Rust-style: a header, a --> location line, the offending line with
// a caret marker, and one line of context on either side.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for one file
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a single diagnostic
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0150]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	// Location line: --> filename:line:column
	gutter := r.gutterWidth(d.Position.Line)
	indent := strings.Repeat(" ", gutter)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Line of context before, when there is one
	if d.Position.Line > 1 && d.Position.Line-1 < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", gutter, d.Position.Line-1)),
			dim("│"),
			r.lines[d.Position.Line-2]))
	}

	// The offending line, with a caret marker under the region
	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", gutter, d.Position.Line)),
			dim("│"),
			r.lines[d.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), r.marker(d.Position.Column, d.Length, d.Level)))
	}

	// Line of context after, when there is one
	if d.Position.Line < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", gutter, d.Position.Line+1)),
			dim("│"),
			r.lines[d.Position.Line]))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// Report renders every diagnostic of a failed parse in source order.
// Scan errors come first since parsing never starts after a lexical
// failure.
func (r *Reporter) Report(parseErrs []parser.ParseError, scanErrs []parser.ScanError) string {
	var result strings.Builder
	for _, err := range scanErrs {
		result.WriteString(r.Format(FromScanError(err)))
	}
	for _, err := range parseErrs {
		result.WriteString(r.Format(FromParseError(err)))
	}
	return result.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) gutterWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
