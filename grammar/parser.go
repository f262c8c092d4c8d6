package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

// A declarative rendering of the language. The hand-written parser in
// internal/parser is the production front end; this one exists so the
// grammar stays readable in one place and the two can be checked
// against each other.
var parser = participle.MustBuild[Unit](
	participle.Lexer(PrismLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(16),
)

// ParseString parses source against the declarative grammar.
func ParseString(filename, source string) (*Unit, error) {
	unit, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// ParseFile reads and parses a file against the declarative grammar.
func ParseFile(path string) (*Unit, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}
