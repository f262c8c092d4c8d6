package parser

import "prism/internal/ast"

// parseBlock parses a brace-delimited statement list. Statement bodies are
// flat; the grammar has no nested blocks, conditionals or loops.
func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(LEFT_BRACE, "expected '{' to start body")

	var stmts []ast.Stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close body")

	return &ast.Block{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Stmts:  stmts,
	}
}

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case SEMICOLON:
		tok := p.advance()
		return &ast.EmptyStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	case RETURN:
		return p.parseReturnStmt()
	case VAR:
		return p.parseVarStmt(false)
	case CONST:
		return p.parseVarStmt(true)
	case IDENTIFIER:
		return p.parseAssignStmt()
	}

	p.errorExpecting(
		"expected "+expectedOneOf("';'", "'return'", "'var'", "'const'", "assignment")+" in statement position",
		"';'", "'return'", "'var'", "'const'", "identifier")
	return nil
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance() // 'return'

	var value ast.Expr
	if !p.check(SEMICOLON) {
		value = p.parseExpr()
		if value == nil {
			return nil
		}
	}

	end := p.consume(SEMICOLON, "expected ';' after return statement")

	return &ast.ReturnStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Value:  value,
	}
}

// parseVarStmt parses "var"/"const" declarations. Only "var" takes the
// optional storage-class suffix, and only "var" may omit the initializer.
func (p *Parser) parseVarStmt(isConst bool) ast.Stmt {
	start := p.advance() // 'var' or 'const'

	class := ast.ClassNone
	if !isConst && p.match(LESS) {
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
	if isConst {
		p.consume(EQUAL, "constant declaration requires an initializer")
		init = p.parseExpr()
		if init == nil {
			return nil
		}
	} else if p.match(EQUAL) {
		init = p.parseExpr()
		if init == nil {
			return nil
		}
	}

	end := p.consume(SEMICOLON, "expected ';' after variable declaration")

	return &ast.VarStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Const:  isConst,
		Class:  class,
		Name:   name,
		Type:   typ,
		Init:   init,
	}
}

func (p *Parser) parseAssignStmt() ast.Stmt {
	target := p.advance()

	p.consume(EQUAL, "expected '=' after assignment target")
	value := p.parseExpr()
	if value == nil {
		return nil
	}

	end := p.consume(SEMICOLON, "expected ';' after assignment")

	return &ast.AssignStmt{
		Pos:    p.makePos(target),
		EndPos: p.makeEndPos(end),
		Name:   p.makeIdent(target),
		Value:  value,
	}
}
