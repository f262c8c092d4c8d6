package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	HEX_NUMBER
	FLOAT_NUMBER
	STRING

	// Keywords
	IMPORT
	AS
	VAR
	CONST
	TYPE
	STRUCT
	FN
	ENTRY_POINT
	RETURN
	TRUE
	FALSE

	// Operators
	PLUS
	STAR
	AMPERSAND
	CARET
	PIPE
	AND
	OR
	EQUAL
	EQUAL_EQUAL
	LESS
	GREATER
	ARROW

	// Separators
	COMMA
	COLON
	DOUBLE_COLON
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	DOUBLE_LEFT_BRACKET
	DOUBLE_RIGHT_BRACKET
)

var tokenNames = map[TokenType]string{
	ILLEGAL:              "illegal",
	EOF:                  "end of input",
	IDENTIFIER:           "identifier",
	NUMBER:               "number",
	HEX_NUMBER:           "hex number",
	FLOAT_NUMBER:         "float number",
	STRING:               "string",
	IMPORT:               "'import'",
	AS:                   "'as'",
	VAR:                  "'var'",
	CONST:                "'const'",
	TYPE:                 "'type'",
	STRUCT:               "'struct'",
	FN:                   "'fn'",
	ENTRY_POINT:          "'entry_point'",
	RETURN:               "'return'",
	TRUE:                 "'true'",
	FALSE:                "'false'",
	PLUS:                 "'+'",
	STAR:                 "'*'",
	AMPERSAND:            "'&'",
	CARET:                "'^'",
	PIPE:                 "'|'",
	AND:                  "'&&'",
	OR:                   "'||'",
	EQUAL:                "'='",
	EQUAL_EQUAL:          "'=='",
	LESS:                 "'<'",
	GREATER:              "'>'",
	ARROW:                "'->'",
	COMMA:                "','",
	COLON:                "':'",
	DOUBLE_COLON:         "'::'",
	SEMICOLON:            "';'",
	LEFT_PAREN:           "'('",
	RIGHT_PAREN:          "')'",
	LEFT_BRACE:           "'{'",
	RIGHT_BRACE:          "'}'",
	DOUBLE_LEFT_BRACKET:  "'[['",
	DOUBLE_RIGHT_BRACKET: "']]'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
