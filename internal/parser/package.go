package parser

import (
	"fmt"

	"prism/internal/ast"
)

// ParseSource tokenizes and parses one translation unit. The module is nil
// whenever any error slice is non-empty; parsing is all-or-nothing and the
// first error aborts it.
func ParseSource(path string, source string) (*ast.Module, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.errors) > 0 {
		return nil, nil, scanner.errors
	}

	parser := NewParser(path, tokens)
	module := parser.ParseModule()

	return module, parser.errors, nil
}

// Parse is the convenience entry point for callers that only need the
// first error as a plain error value.
func Parse(path string, source string) (*ast.Module, error) {
	module, parseErrors, scanErrors := ParseSource(path, source)
	if len(scanErrors) > 0 {
		e := scanErrors[0]
		return nil, fmt.Errorf("%s:%d:%d: %s", path, e.Position.Line, e.Position.Column, e.Message)
	}
	if len(parseErrors) > 0 {
		e := parseErrors[0]
		return nil, fmt.Errorf("%s:%d:%d: %s", path, e.Position.Line, e.Position.Column, e.Message)
	}
	return module, nil
}
