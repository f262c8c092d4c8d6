package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/internal/ast"
)

func prepareExprParser(expr string) *Parser {
	scanner := NewScanner(expr)
	tokens := scanner.ScanTokens()

	return NewParser("test.psl", tokens)
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	parser := prepareExprParser("a + b * c")
	expr := parser.parseExpr()
	require.NotNil(t, expr)
	assert.Empty(t, parser.errors)

	add, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)

	left, ok := add.Left.(*ast.IdentExpr)
	require.True(t, ok, "Left of '+' should be the bare identifier")
	assert.Equal(t, "a", left.Name)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok, "Right of '+' should be the multiplication")
	assert.Equal(t, "*", mul.Op)
}

func TestLogicalAndBindsTighterThanOr(t *testing.T) {
	parser := prepareExprParser("a || b && c")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	or, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "||", or.Op)

	and, ok := or.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "&&", and.Op)
}

func TestBitwiseLadder(t *testing.T) {
	// & binds tighter than ^, which binds tighter than |.
	parser := prepareExprParser("a | b ^ c & d")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	or := expr.(*ast.BinaryExpr)
	assert.Equal(t, "|", or.Op)

	xor := or.Right.(*ast.BinaryExpr)
	assert.Equal(t, "^", xor.Op)

	and := xor.Right.(*ast.BinaryExpr)
	assert.Equal(t, "&", and.Op)
}

func TestEqualityBindsLooserThanAddition(t *testing.T) {
	parser := prepareExprParser("a + b == c + d")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	eq := expr.(*ast.BinaryExpr)
	assert.Equal(t, "==", eq.Op)
	assert.Equal(t, "+", eq.Left.(*ast.BinaryExpr).Op)
	assert.Equal(t, "+", eq.Right.(*ast.BinaryExpr).Op)
}

func TestLeftAssociativity(t *testing.T) {
	parser := prepareExprParser("a + b + c")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	outer := expr.(*ast.BinaryExpr)
	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok, "Chains of equal precedence associate left")
	assert.Equal(t, "a", inner.Left.(*ast.IdentExpr).Name)
	assert.Equal(t, "c", outer.Right.(*ast.IdentExpr).Name)
}

func TestParenthesesAreStructuralOnly(t *testing.T) {
	parser := prepareExprParser("(a + b) * c")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	mul, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op)

	add, ok := mul.Left.(*ast.BinaryExpr)
	require.True(t, ok, "Parentheses only shape the tree; no wrapper node")
	assert.Equal(t, "+", add.Op)
}

func TestIdentifierWithCallIsAConstructor(t *testing.T) {
	parser := prepareExprParser("foo(1, 2)")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	ctor, ok := expr.(*ast.ConstructorExpr)
	require.True(t, ok, "Identifier followed by '(' is a typed constructor")

	named, ok := ctor.Type.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "foo", named.Name.Value)
	assert.Len(t, ctor.Args, 2)
}

func TestBareIdentifierIsAReference(t *testing.T) {
	parser := prepareExprParser("foo")
	expr := parser.parseExpr()
	require.NotNil(t, expr)

	ident, ok := expr.(*ast.IdentExpr)
	require.True(t, ok, "Identifier with no '(' stays a variable reference")
	assert.Equal(t, "foo", ident.Name)
}

func TestGenericConstructor(t *testing.T) {
	parser := prepareExprParser("vec2<f32>(x, 1.0)")
	expr := parser.parseExpr()
	require.NotNil(t, expr)
	assert.Empty(t, parser.errors)

	ctor := expr.(*ast.ConstructorExpr)
	vec, ok := ctor.Type.(*ast.VectorType)
	require.True(t, ok)
	assert.Equal(t, 2, vec.Size)
	assert.Len(t, ctor.Args, 2)
}

func TestConstructorRequiresArguments(t *testing.T) {
	parser := prepareExprParser("vec2<f32>()")
	expr := parser.parseExpr()
	assert.Nil(t, expr)
	require.Len(t, parser.errors, 1)
	assert.Contains(t, parser.errors[0].Message, "at least one argument")
}

func TestLiteralKinds(t *testing.T) {
	cases := []struct {
		source string
		kind   ast.LiteralKind
	}{
		{"true", ast.LiteralBool},
		{"false", ast.LiteralBool},
		{"42", ast.LiteralUint},
		{"-42", ast.LiteralInt},
		{"0x2a", ast.LiteralUint},
		{"1.5", ast.LiteralFloat},
		{"3.", ast.LiteralFloat},
	}

	for _, c := range cases {
		parser := prepareExprParser(c.source)
		expr := parser.parseExpr()
		require.NotNil(t, expr, "source: %s", c.source)

		lit, ok := expr.(*ast.LiteralExpr)
		require.True(t, ok, "source: %s", c.source)
		assert.Equal(t, c.kind, lit.Kind, "source: %s", c.source)
		assert.Equal(t, c.source, lit.Text, "source: %s", c.source)
	}
}

func TestLiteralValues(t *testing.T) {
	parser := prepareExprParser("0x1F")
	lit := parser.parseExpr().(*ast.LiteralExpr)
	assert.Equal(t, uint64(31), lit.Uint)

	parser = prepareExprParser("-7")
	neg := parser.parseExpr().(*ast.LiteralExpr)
	assert.Equal(t, int64(-7), neg.Int)

	parser = prepareExprParser("3.")
	f := parser.parseExpr().(*ast.LiteralExpr)
	assert.Equal(t, 3.0, f.Float)
}

func TestUnclosedParenthesis(t *testing.T) {
	parser := prepareExprParser("(a + b")
	parser.parseExpr()
	require.Len(t, parser.errors, 1)
	assert.Equal(t, UnterminatedConstruct, parser.errors[0].Kind)
}

func TestExpressionErrorNamesExpectations(t *testing.T) {
	parser := prepareExprParser("a + ;")
	expr := parser.parseExpr()
	assert.Nil(t, expr)
	require.Len(t, parser.errors, 1)

	err := parser.errors[0]
	assert.Equal(t, ";", err.Found)
	assert.Contains(t, err.Expected, "literal")
	assert.Contains(t, err.Expected, "identifier")
}
