package parser

import (
	"fmt"

	"prism/internal/ast"
)

// maxNestingDepth bounds recursion through the type and expression
// grammars, which are otherwise unbounded. Exceeding it is a syntax error,
// not a crash.
const maxNestingDepth = 256

var scalarKinds = map[string]ast.ScalarKind{
	"bool": ast.ScalarBool,
	"f32":  ast.ScalarF32,
	"i32":  ast.ScalarI32,
	"u32":  ast.ScalarU32,
}

var vectorSizes = map[string]int{
	"vec2": 2,
	"vec3": 3,
	"vec4": 4,
}

var matrixSizes = map[string]int{
	"mat2x2": 2,
	"mat3x3": 3,
	"mat4x4": 4,
}

var storageClasses = map[string]ast.StorageClass{
	"in":             ast.ClassIn,
	"out":            ast.ClassOut,
	"uniform":        ast.ClassUniform,
	"storage_buffer": ast.ClassStorageBuffer,
	"private":        ast.ClassPrivate,
	"function":       ast.ClassFunction,
}

// isTypeKeyword reports whether an identifier spelling starts one of the
// built-in type productions rather than a named type.
func isTypeKeyword(lexeme string) bool {
	if _, ok := scalarKinds[lexeme]; ok {
		return true
	}
	if _, ok := vectorSizes[lexeme]; ok {
		return true
	}
	if _, ok := matrixSizes[lexeme]; ok {
		return true
	}
	return lexeme == "ptr" || lexeme == "array"
}

// parseType parses one type at the cursor. Dispatch is by the leading
// identifier's spelling; anything unrecognized is a named type for a later
// resolution pass.
func (p *Parser) parseType() ast.Type {
	if p.failed() {
		return nil
	}
	if p.depth >= maxNestingDepth {
		p.errorExpecting("type nesting exceeds the supported depth", "type")
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()

	if !p.check(IDENTIFIER) {
		p.errorExpecting("expected type", "type")
		return nil
	}

	tok := p.peek()

	if kind, ok := scalarKinds[tok.Lexeme]; ok {
		p.advance()
		return &ast.ScalarType{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Kind: kind}
	}

	if size, ok := vectorSizes[tok.Lexeme]; ok {
		p.advance()
		elem, end := p.parseElementType(tok.Lexeme)
		return &ast.VectorType{Pos: p.makePos(tok), EndPos: end, Size: size, Elem: elem}
	}

	if size, ok := matrixSizes[tok.Lexeme]; ok {
		p.advance()
		elem, end := p.parseElementType(tok.Lexeme)
		return &ast.MatrixType{Pos: p.makePos(tok), EndPos: end, Size: size, Elem: elem}
	}

	if tok.Lexeme == "ptr" {
		return p.parsePointerType()
	}

	if tok.Lexeme == "array" {
		return p.parseArrayType()
	}

	p.advance()
	return &ast.NamedType{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: p.makeIdent(tok)}
}

// parseElementType parses the "<T>" suffix shared by vector and matrix
// types, returning the element and the position after the closing '>'.
func (p *Parser) parseElementType(keyword string) (ast.Type, ast.Position) {
	p.consume(LESS, fmt.Sprintf("expected '<' after '%s'", keyword))
	if !p.check(IDENTIFIER) {
		p.errorExpecting(fmt.Sprintf("expected type after '%s<'", keyword), "type")
		return nil, p.makePos(p.peek())
	}
	elem := p.parseType()
	end := p.consume(GREATER, fmt.Sprintf("expected '>' to close '%s<'", keyword))
	return elem, p.makeEndPos(end)
}

func (p *Parser) parsePointerType() ast.Type {
	start := p.advance() // 'ptr'
	p.consume(LESS, "expected '<' after 'ptr'")

	class, ok := p.parseStorageClass("expected storage class after 'ptr<'")
	if !ok {
		return nil
	}

	p.consume(COMMA, "expected ',' after pointer storage class")
	if !p.check(IDENTIFIER) {
		p.errorExpecting("expected pointee type after ','", "type")
		return nil
	}
	elem := p.parseType()
	end := p.consume(GREATER, "expected '>' to close 'ptr<'")

	return &ast.PointerType{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Class:  class,
		Elem:   elem,
	}
}

func (p *Parser) parseArrayType() ast.Type {
	start := p.advance() // 'array'
	p.consume(LESS, "expected '<' after 'array'")
	if !p.check(IDENTIFIER) {
		p.errorExpecting("expected type after 'array<'", "type")
		return nil
	}
	elem := p.parseType()

	sized := false
	var size uint32
	if p.match(COMMA) {
		size, sized = p.parseUintLiteral("expected array size after ','")
		if !sized {
			return nil
		}
	}

	end := p.consume(GREATER, "expected '>' to close 'array<'")

	return &ast.ArrayType{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Elem:   elem,
		Sized:  sized,
		Size:   size,
	}
}

// parseStorageClass reads a contextual storage-class identifier.
func (p *Parser) parseStorageClass(message string) (ast.StorageClass, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.ClassNone, false
	}
	class, ok := storageClasses[tok.Lexeme]
	if !ok {
		p.errorAt(tok, fmt.Sprintf("unknown storage class '%s'", tok.Lexeme), "storage class")
		return ast.ClassNone, false
	}
	return class, true
}
