package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prism/internal/parser"
)

func TestFormatParseError(t *testing.T) {
	source := `fn main() -> void {
  var x: ;
  return;
}`
	reporter := NewReporter("shader.psl", source)

	err := parser.ParseError{
		Kind:     parser.SyntaxError,
		Message:  "expected type after ':', found ';'",
		Expected: []string{"type"},
		Found:    ";",
		Position: parser.Position{Line: 2, Column: 10, Offset: 29},
	}
	formatted := reporter.Format(FromParseError(err))

	assert.Contains(t, formatted, "error["+CodeSyntaxError+"]")
	assert.Contains(t, formatted, "expected type after ':'")
	assert.Contains(t, formatted, "shader.psl:2:10")
	assert.Contains(t, formatted, "var x: ;")
	assert.Contains(t, formatted, "help:")
	assert.Contains(t, formatted, "expected type")
	// Both context lines appear.
	assert.Contains(t, formatted, "fn main() -> void {")
	assert.Contains(t, formatted, "return;")
}

func TestFormatScanError(t *testing.T) {
	source := `var s = "never closed`
	reporter := NewReporter("shader.psl", source)

	err := parser.ScanError{
		Kind:     parser.UnterminatedString,
		Message:  "unterminated string literal",
		Position: parser.Position{Line: 1, Column: 9, Offset: 8},
		Length:   13,
	}
	formatted := reporter.Format(FromScanError(err))

	assert.Contains(t, formatted, "error["+CodeUnterminatedString+"]")
	assert.Contains(t, formatted, "shader.psl:1:9")
	assert.Contains(t, formatted, "unterminated string")
}

func TestUnterminatedConstructCode(t *testing.T) {
	err := parser.ParseError{
		Kind:    parser.UnterminatedConstruct,
		Message: "expected '}' to close function body",
	}
	d := FromParseError(err)
	assert.Equal(t, CodeUnterminatedConstruct, d.Code)
}

func TestMarkerPlacement(t *testing.T) {
	reporter := NewReporter("shader.psl", "var badtoken = 1;")

	marker := reporter.marker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestZeroLengthMarker(t *testing.T) {
	reporter := NewReporter("shader.psl", "x")

	marker := reporter.marker(1, 0, Error)
	assert.Equal(t, 1, strings.Count(marker, "^"))
}

func TestReportOrdersScanErrorsFirst(t *testing.T) {
	reporter := NewReporter("shader.psl", "var x = @;")

	out := reporter.Report(
		[]parser.ParseError{{Kind: parser.SyntaxError, Message: "parse failure", Position: parser.Position{Line: 1, Column: 1}}},
		[]parser.ScanError{{Kind: parser.LexError, Message: "unexpected character '@'", Position: parser.Position{Line: 1, Column: 9}, Length: 1}},
	)

	lexIdx := strings.Index(out, "unexpected character")
	parseIdx := strings.Index(out, "parse failure")
	assert.True(t, lexIdx >= 0 && parseIdx >= 0)
	assert.Less(t, lexIdx, parseIdx)
}

func TestLevels(t *testing.T) {
	reporter := NewReporter("shader.psl", "test")
	pos := parser.Position{Line: 1, Column: 1}

	errOut := reporter.Format(Diagnostic{Level: Error, Message: "something broke", Position: pos})
	warnOut := reporter.Format(Diagnostic{Level: Warning, Message: "something odd", Position: pos})

	assert.Contains(t, errOut, "error:")
	assert.Contains(t, warnOut, "warning:")
}
