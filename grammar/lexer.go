package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PrismLexer tokenizes the same surface the hand-written scanner does.
// Comments never reach the parser, minus only appears glued to a digit
// or inside '->', and a digit run may trail into hex letters.
var PrismLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `#[^\n]*`, Action: nil},

		// Identifiers (no leading underscore)
		{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`, Action: nil},

		// Numeric literals (float before integer, order matters)
		{Name: "Float", Pattern: `-?[0-9]+\.[0-9]*`, Action: nil},
		{Name: "Integer", Pattern: `-?(0x[0-9a-fA-F]+|[0-9]+[a-fA-F]*)`, Action: nil},

		// String literals, a doubled quote is the only escape
		{Name: "String", Pattern: `"(""|[^"])*"`, Action: nil},

		// Decoration brackets are always doubled
		{Name: "DoubleBracket", Pattern: `\[\[|\]\]`, Action: nil},

		// Operators (must come before punctuation)
		{Name: "Operator", Pattern: `\|\||&&|==|->|::|[+*&^|<>=]`, Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[(),:;{}]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
