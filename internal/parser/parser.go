package parser

import (
	"prism/internal/ast"
)

type ParseErrorKind int

const (
	SyntaxError ParseErrorKind = iota
	UnterminatedConstruct
)

type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Expected []string // tokens or productions that would have been accepted
	Found    string   // lexeme actually at the cursor
	Position Position
}

// Parser is a recursive-descent parser over the scanner's token slice. All
// state lives in the struct; independent units parse in parallel with no
// shared mutable state.
//
// The first error aborts the parse: there is no recovery and no partial
// tree. Every production checks failed() before consuming more input.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	depth    int
	errors   []ParseError
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseModule parses one translation unit: global declarations until end of
// input. Returns nil if any declaration fails to parse.
func (p *Parser) ParseModule() *ast.Module {
	first := p.peek()

	var decls []ast.GlobalDecl
	for !p.isAtEnd() && !p.failed() {
		decl := p.parseGlobalDecl()
		if decl != nil {
			decls = append(decls, decl)
		}
	}

	if p.failed() {
		return nil
	}

	end := p.makePos(first)
	if p.current > 0 {
		end = p.makeEndPos(p.previous())
	}

	return &ast.Module{
		Pos:    p.makePos(first),
		EndPos: end,
		Decls:  decls,
	}
}
