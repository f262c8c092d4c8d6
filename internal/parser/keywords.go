package parser

// Type names, storage classes, decoration names, builtin names, stage names
// and "void" are deliberately absent: those are contextual identifiers the
// parser interprets where the grammar asks for them.
var KEYWORDS = map[string]TokenType{
	"import":      IMPORT,
	"as":          AS,
	"var":         VAR,
	"const":       CONST,
	"type":        TYPE,
	"struct":      STRUCT,
	"fn":          FN,
	"entry_point": ENTRY_POINT,
	"return":      RETURN,
	"true":        TRUE,
	"false":       FALSE,
}
