package parser

import (
	"fmt"

	"prism/internal/ast"
)

var stages = map[string]ast.Stage{
	"vertex":   ast.StageVertex,
	"fragment": ast.StageFragment,
	"compute":  ast.StageCompute,
}

var builtins = map[string]ast.Builtin{
	"position":   ast.BuiltinPosition,
	"vertex_idx": ast.BuiltinVertexIndex,
}

// parseGlobalDecl parses one module-scope declaration, selected by its
// leading token.
func (p *Parser) parseGlobalDecl() ast.GlobalDecl {
	switch p.peek().Type {
	case SEMICOLON:
		tok := p.advance()
		return &ast.EmptyDecl{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	case IMPORT:
		return p.parseImport()
	case DOUBLE_LEFT_BRACKET:
		return p.parseGlobalVar()
	case VAR:
		// Module-scope variables always carry a decoration list.
		p.errorExpecting("global variable requires a '[[...]]' decoration list before 'var'", "'[['")
		return nil
	case CONST:
		return p.parseGlobalConst()
	case TYPE:
		return p.parseTypeAlias()
	case FN:
		return p.parseFunction()
	case ENTRY_POINT:
		return p.parseEntryPoint()
	}

	p.errorExpecting(
		"expected "+expectedOneOf("'import'", "'[['", "'const'", "'type'", "'fn'", "'entry_point'")+" at module scope",
		"'import'", "'[['", "'const'", "'type'", "'fn'", "'entry_point'", "';'")
	return nil
}

// parseImport parses: import "path" as seg(::seg)* ;
func (p *Parser) parseImport() ast.GlobalDecl {
	start := p.advance() // 'import'

	path := p.consume(STRING, "expected module path string after 'import'")
	p.consume(AS, "expected 'as' after module path")

	var alias []ast.Ident
	for {
		seg, ok := p.consumeIdent("expected import alias segment")
		if !ok {
			return nil
		}
		alias = append(alias, seg)
		if !p.match(DOUBLE_COLON) {
			break
		}
	}

	end := p.consume(SEMICOLON, "expected ';' after import declaration")

	return &ast.Import{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path.Lexeme,
		Alias:  alias,
	}
}

// parseDecorationList parses: [[ decoration (, decoration)* ]]
// The list must be non-empty; "[[]]" is a syntax error.
func (p *Parser) parseDecorationList() []*ast.Decoration {
	p.consume(DOUBLE_LEFT_BRACKET, "expected '[[' to start decoration list")

	if p.check(DOUBLE_RIGHT_BRACKET) {
		p.errorExpecting("decoration list requires at least one decoration", "decoration")
		return nil
	}

	var decorations []*ast.Decoration
	for !p.failed() {
		decoration := p.parseDecoration()
		if decoration == nil {
			return nil
		}
		decorations = append(decorations, decoration)
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(DOUBLE_RIGHT_BRACKET, "expected ']]' to close decoration list")
	return decorations
}

// parseDecoration parses a single "location N" or "builtin name" entry.
func (p *Parser) parseDecoration() *ast.Decoration {
	tok := p.consume(IDENTIFIER, "expected decoration name")
	if tok.Type == ILLEGAL {
		return nil
	}

	switch tok.Lexeme {
	case "location":
		location, ok := p.parseUintLiteral("expected location index after 'location'")
		if !ok {
			return nil
		}
		return &ast.Decoration{
			Pos:      p.makePos(tok),
			EndPos:   p.makeEndPos(p.previous()),
			Kind:     ast.DecorationLocation,
			Location: location,
		}
	case "builtin":
		nameTok := p.consume(IDENTIFIER, "expected builtin name after 'builtin'")
		if nameTok.Type == ILLEGAL {
			return nil
		}
		builtin, ok := builtins[nameTok.Lexeme]
		if !ok {
			p.errorAt(nameTok, fmt.Sprintf("unknown builtin '%s'", nameTok.Lexeme), "'position'", "'vertex_idx'")
			return nil
		}
		return &ast.Decoration{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(nameTok),
			Kind:    ast.DecorationBuiltin,
			Builtin: builtin,
		}
	}

	p.errorAt(tok, fmt.Sprintf("unknown decoration '%s'", tok.Lexeme), "'location'", "'builtin'")
	return nil
}

// parseGlobalVar parses: [[ decorations ]] var(<class>)? name: type (= expr)? ;
func (p *Parser) parseGlobalVar() ast.GlobalDecl {
	start := p.peek()

	decorations := p.parseDecorationList()
	if decorations == nil {
		return nil
	}

	p.consume(VAR, "expected 'var' after decoration list")

	class := ast.ClassNone
	if p.match(LESS) {
		parsed, ok := p.parseStorageClass("expected storage class after 'var<'")
		if !ok {
			return nil
		}
		class = parsed
		p.consume(GREATER, "expected '>' after storage class")
	}

	name, ok := p.consumeIdent("expected variable name")
	if !ok {
		return nil
	}

	p.consume(COLON, "expected ':' after variable name")
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	var init ast.Expr
	if p.match(EQUAL) {
		init = p.parseExpr()
		if init == nil {
			return nil
		}
	}

	end := p.consume(SEMICOLON, "expected ';' after variable declaration")

	return &ast.GlobalVar{
		Pos:         p.makePos(start),
		EndPos:      p.makeEndPos(end),
		Decorations: decorations,
		Class:       class,
		Name:        name,
		Type:        typ,
		Init:        init,
	}
}

// parseGlobalConst parses: const name: type = expr ;
func (p *Parser) parseGlobalConst() ast.GlobalDecl {
	start := p.advance() // 'const'

	name, ok := p.consumeIdent("expected constant name")
	if !ok {
		return nil
	}

	p.consume(COLON, "expected ':' after constant name")
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	p.consume(EQUAL, "global constant requires an initializer")
	init := p.parseExpr()
	if init == nil {
		return nil
	}

	end := p.consume(SEMICOLON, "expected ';' after constant declaration")

	return &ast.GlobalConst{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Type:   typ,
		Init:   init,
	}
}

// parseTypeAlias parses: type name = Type ;  |  type name = ([[block]])? struct { ... } ;
func (p *Parser) parseTypeAlias() ast.GlobalDecl {
	start := p.advance() // 'type'

	name, ok := p.consumeIdent("expected type alias name")
	if !ok {
		return nil
	}
	p.consume(EQUAL, "expected '=' after type alias name")

	alias := &ast.TypeAlias{Name: name}
	if p.check(STRUCT) || p.check(DOUBLE_LEFT_BRACKET) {
		alias.Struct = p.parseStructDecl()
		if alias.Struct == nil {
			return nil
		}
	} else {
		alias.Type = p.parseType()
		if alias.Type == nil {
			return nil
		}
	}

	end := p.consume(SEMICOLON, "expected ';' after type alias")
	alias.Pos = p.makePos(start)
	alias.EndPos = p.makeEndPos(end)
	return alias
}

// parseStructDecl parses an inline struct body with its optional single
// "[[block]]" decoration.
func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.peek()

	block := false
	if p.match(DOUBLE_LEFT_BRACKET) {
		tok := p.consume(IDENTIFIER, "expected 'block' decoration")
		if tok.Type == ILLEGAL {
			return nil
		}
		if tok.Lexeme != "block" {
			p.errorAt(tok, fmt.Sprintf("unknown struct decoration '%s'", tok.Lexeme), "'block'")
			return nil
		}
		p.consume(DOUBLE_RIGHT_BRACKET, "expected ']]' after 'block'")
		block = true
	}

	p.consume(STRUCT, "expected 'struct' keyword")
	p.consume(LEFT_BRACE, "expected '{' to start struct body")

	var members []*ast.StructMember
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		member := p.parseStructMember()
		if member == nil {
			break
		}
		members = append(members, member)
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close struct body")

	return &ast.StructDecl{
		Pos:     p.makePos(start),
		EndPos:  p.makeEndPos(end),
		Block:   block,
		Members: members,
	}
}

// parseStructMember parses: ([[offset N]])? name: type ;
// Offsets are recorded as written; layout validation is a semantic-pass
// concern.
func (p *Parser) parseStructMember() *ast.StructMember {
	start := p.peek()

	hasOffset := false
	var offset uint32
	if p.match(DOUBLE_LEFT_BRACKET) {
		tok := p.consume(IDENTIFIER, "expected 'offset' decoration")
		if tok.Type == ILLEGAL {
			return nil
		}
		if tok.Lexeme != "offset" {
			p.errorAt(tok, fmt.Sprintf("unknown member decoration '%s'", tok.Lexeme), "'offset'")
			return nil
		}
		value, ok := p.parseUintLiteral("expected byte offset after 'offset'")
		if !ok {
			return nil
		}
		p.consume(DOUBLE_RIGHT_BRACKET, "expected ']]' after offset decoration")
		hasOffset = true
		offset = value
	}

	name, ok := p.consumeIdent("expected struct member name")
	if !ok {
		return nil
	}

	p.consume(COLON, "expected ':' after member name")
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	end := p.consume(SEMICOLON, "expected ';' after struct member")

	return &ast.StructMember{
		Pos:       p.makePos(start),
		EndPos:    p.makeEndPos(end),
		HasOffset: hasOffset,
		Offset:    offset,
		Name:      name,
		Type:      typ,
	}
}

// parseFunction parses: fn name(params) -> returnType { body }
func (p *Parser) parseFunction() ast.GlobalDecl {
	start := p.advance() // 'fn'

	name, ok := p.consumeIdent("expected function name")
	if !ok {
		return nil
	}

	params := p.parseFunctionParameters()

	p.consume(ARROW, "expected '->' after parameter list")

	var returnType ast.Type
	if p.checkIdent("void") {
		p.advance()
	} else {
		returnType = p.parseType()
		if returnType == nil {
			return nil
		}
	}

	body := p.parseBlock()
	if p.failed() {
		return nil
	}

	return &ast.Function{
		Pos:    p.makePos(start),
		EndPos: body.EndPos,
		Name:   name,
		Params: params,
		Return: returnType,
		Body:   body,
	}
}

// parseFunctionParameters parses the parameter list in parentheses.
// Parameter name uniqueness is not checked here; that belongs to semantic
// analysis.
func (p *Parser) parseFunctionParameters() []*ast.FunctionParam {
	p.consume(LEFT_PAREN, "expected '(' after function name")

	var params []*ast.FunctionParam
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() && !p.failed() {
		paramName, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}

		p.consume(COLON, "expected ':' after parameter name")
		paramType := p.parseType()
		if paramType == nil {
			break
		}

		params = append(params, &ast.FunctionParam{
			Pos:    paramName.Pos,
			EndPos: paramType.NodeEndPos(),
			Name:   paramName,
			Type:   paramType,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

// parseEntryPoint parses: entry_point stage (as "name")? = functionIdent ;
func (p *Parser) parseEntryPoint() ast.GlobalDecl {
	start := p.advance() // 'entry_point'

	stageTok := p.consume(IDENTIFIER, "expected pipeline stage after 'entry_point'")
	if stageTok.Type == ILLEGAL {
		return nil
	}
	stage, ok := stages[stageTok.Lexeme]
	if !ok {
		p.errorAt(stageTok, fmt.Sprintf("unknown pipeline stage '%s'", stageTok.Lexeme),
			"'vertex'", "'fragment'", "'compute'")
		return nil
	}

	export := ""
	hasExport := false
	if p.match(AS) {
		nameTok := p.consume(STRING, "expected export name string after 'as'")
		if nameTok.Type == ILLEGAL {
			return nil
		}
		export = nameTok.Lexeme
		hasExport = true
	}

	p.consume(EQUAL, "expected '=' before entry point function")
	target, ok := p.consumeIdent("expected entry point function name")
	if !ok {
		return nil
	}

	end := p.consume(SEMICOLON, "expected ';' after entry point declaration")

	return &ast.EntryPoint{
		Pos:       p.makePos(start),
		EndPos:    p.makeEndPos(end),
		Stage:     stage,
		Export:    export,
		HasExport: hasExport,
		Target:    target,
	}
}
