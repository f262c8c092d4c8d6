package errors

// Error codes used in diagnostics and documentation to identify
// failures consistently across the toolchain.
//
// Code ranges:
// E0100-E0149: Lexical errors
// E0150-E0199: Parser errors
// E0200-E0299: Reserved for semantic validation
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: A character sequence that forms no token
	CodeLexError = "E0100"

	// E0101: A string literal left open at end of input
	CodeUnterminatedString = "E0101"

	// E0150: A construct that does not match the grammar
	CodeSyntaxError = "E0150"

	// E0151: A delimited construct left open at end of input
	CodeUnterminatedConstruct = "E0151"
)
