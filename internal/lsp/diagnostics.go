package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"prism/internal/parser"
)

// ConvertParseErrors transforms syntax errors into LSP diagnostics for IDE
// display. The marked span covers the found lexeme when the parser recorded
// one, otherwise a single character.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		span := uint32(len(parseErr.Found))
		if span == 0 {
			span = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1), // LSP positions are 0-based
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column-1) + span,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("prism-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertScanErrors transforms lexical errors into LSP diagnostics. These
// cover invalid characters, unterminated strings and the like.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		span := uint32(scanErr.Length)
		if span == 0 {
			span = 1
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column-1) + span,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("prism-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
