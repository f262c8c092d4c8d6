package parser

import (
	"fmt"
	"strconv"
	"strings"

	"prism/internal/ast"
)

// Binding powers, lowest to highest. The dialect's operators are all binary
// and left-associative; there are no comparison, shift or standalone unary
// operators.
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6,
	"+":  7,
	"*":  8,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr is a precedence climber over binaryPrecedence. A child on
// the right is parsed at prec+1 so equal-precedence chains associate left.
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	expr := p.parsePrimaryExpr()

	for !p.failed() {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parseBinaryExpr(prec + 1)
		if right == nil {
			return nil
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

// parsePrimaryExpr resolves the grammar's main ambiguity: an identifier is
// the start of a typed constructor only when the next token is '(' (named
// type) or '<' (generic type syntax, which cannot appear in an expression
// otherwise — the dialect has no comparison operators). One token of
// lookahead decides; no backtracking is needed.
func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.failed() {
		return nil
	}
	if p.depth >= maxNestingDepth {
		p.errorExpecting("expression nesting exceeds the supported depth", "expression")
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()

	if p.match(TRUE, FALSE) {
		tok := p.previous()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   ast.LiteralBool,
			Text:   tok.Lexeme,
			Bool:   tok.Type == TRUE,
		}
	}

	if p.check(NUMBER) || p.check(HEX_NUMBER) || p.check(FLOAT_NUMBER) {
		return p.parseNumberLiteral()
	}

	if p.match(LEFT_PAREN) {
		expr := p.parseBinaryExpr(1)
		p.consume(RIGHT_PAREN, "expected ')' to close parenthesized expression")
		// Grouping is structural only; the parenthesized child is
		// returned as-is.
		return expr
	}

	if p.check(IDENTIFIER) {
		next := p.peekNext().Type
		if next == LEFT_PAREN || next == LESS {
			return p.parseConstructorExpr()
		}
		tok := p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	}

	p.errorExpecting("expected expression", "literal", "constructor", "'('", "identifier")
	return nil
}

// parseConstructorExpr parses "Type(arg, ...)" with at least one argument.
func (p *Parser) parseConstructorExpr() ast.Expr {
	start := p.peek()
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	p.consume(LEFT_PAREN, "expected '(' after constructor type")
	if p.check(RIGHT_PAREN) {
		p.errorExpecting("constructor requires at least one argument", "expression")
		return nil
	}

	var args []ast.Expr
	for !p.failed() {
		arg := p.parseExpr()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_PAREN, "expected ')' after constructor arguments")

	return &ast.ConstructorExpr{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Type:   typ,
		Args:   args,
	}
}

// parseNumberLiteral classifies a numeric token: a leading sign makes a
// signed integer, a '.' makes a float, anything else is unsigned. The
// signedness split mirrors the declarative grammar, which tries the
// unsigned form first.
func (p *Parser) parseNumberLiteral() ast.Expr {
	tok := p.advance()
	lit := &ast.LiteralExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Text:   tok.Lexeme,
	}

	switch tok.Type {
	case FLOAT_NUMBER:
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.errorAt(tok, fmt.Sprintf("invalid float literal '%s'", tok.Lexeme), "float literal")
			return nil
		}
		lit.Kind = ast.LiteralFloat
		lit.Float = value

	default:
		digits, base, negative := splitIntLiteral(tok)
		if negative {
			value, err := strconv.ParseInt(digits, base, 64)
			if err != nil {
				p.errorAt(tok, fmt.Sprintf("integer literal '%s' out of range", tok.Lexeme), "integer literal")
				return nil
			}
			lit.Kind = ast.LiteralInt
			lit.Int = -value
		} else {
			value, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				p.errorAt(tok, fmt.Sprintf("integer literal '%s' out of range", tok.Lexeme), "integer literal")
				return nil
			}
			lit.Kind = ast.LiteralUint
			lit.Uint = value
		}
	}

	return lit
}

// splitIntLiteral strips the sign and base marker off an integer token.
// Hex tokens without a "0x" marker still parse base 16; the scanner already
// committed to the hex reading of that ambiguous shape.
func splitIntLiteral(tok Token) (digits string, base int, negative bool) {
	digits = tok.Lexeme
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	base = 10
	if tok.Type == HEX_NUMBER {
		base = 16
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	}
	return digits, base, negative
}

// parseUintLiteral reads a non-negative integer token, used by array sizes
// and decoration operands.
func (p *Parser) parseUintLiteral(message string) (uint32, bool) {
	if !p.check(NUMBER) && !p.check(HEX_NUMBER) {
		p.errorExpecting(message, "unsigned integer")
		return 0, false
	}

	tok := p.advance()
	digits, base, negative := splitIntLiteral(tok)
	if negative {
		p.errorAt(tok, fmt.Sprintf("expected a non-negative integer, found '%s'", tok.Lexeme), "unsigned integer")
		return 0, false
	}

	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		p.errorAt(tok, fmt.Sprintf("integer literal '%s' out of range", tok.Lexeme), "unsigned integer")
		return 0, false
	}
	return uint32(value), true
}
