package parser

import (
	"strings"

	"prism/internal/ast"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// checkIdent reports whether the cursor is at an identifier with the given
// spelling. Contextual words (type names, storage classes, decoration
// names) are matched this way instead of being reserved.
func (p *Parser) checkIdent(lexeme string) bool {
	return p.check(IDENTIFIER) && p.peek().Lexeme == lexeme
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorExpecting(message, tt.String())
	return Token{Type: ILLEGAL, Position: p.peek().Position}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// errorExpecting records a syntax error naming what the current production
// would have accepted. Only the first error is kept; the parse is
// all-or-nothing and later errors would describe an already-abandoned
// cursor. Failing on end of input while a closing delimiter is expected is
// classified as an unterminated construct.
func (p *Parser) errorExpecting(message string, expected ...string) {
	if p.failed() {
		return
	}

	kind := SyntaxError
	if p.isAtEnd() && expectsClosing(expected) {
		kind = UnterminatedConstruct
	}

	found := p.peek().Lexeme
	if p.isAtEnd() {
		found = "end of input"
	}

	p.errors = append(p.errors, ParseError{
		Kind:     kind,
		Message:  message + ", found " + describe(found),
		Expected: expected,
		Found:    found,
		Position: p.peek().Position,
	})
}

// errorAt reports a syntax error against an already-consumed token, for
// cases where the token shape was right but its spelling was not (unknown
// storage class, unknown decoration, unknown stage).
func (p *Parser) errorAt(tok Token, message string, expected ...string) {
	if p.failed() {
		return
	}
	p.errors = append(p.errors, ParseError{
		Kind:     SyntaxError,
		Message:  message,
		Expected: expected,
		Found:    tok.Lexeme,
		Position: tok.Position,
	})
}

func expectsClosing(expected []string) bool {
	for _, e := range expected {
		switch e {
		case "')'", "'}'", "'>'", "']]'":
			return true
		}
	}
	return false
}

func describe(found string) string {
	if found == "end of input" {
		return found
	}
	return "'" + found + "'"
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{}, false
	}
	return p.makeIdent(tok), true
}

// expectedOneOf joins production names for a dispatch-failure message.
func expectedOneOf(alternatives ...string) string {
	return strings.Join(alternatives, " or ")
}
