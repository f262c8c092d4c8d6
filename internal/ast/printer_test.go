package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scalar(kind ScalarKind) *ScalarType {
	return &ScalarType{Kind: kind}
}

func ident(name string) Ident {
	return Ident{Value: name}
}

func TestPrintTypes(t *testing.T) {
	assert.Equal(t, "f32", scalar(ScalarF32).String())
	assert.Equal(t, "vec3<f32>", (&VectorType{Size: 3, Elem: scalar(ScalarF32)}).String())
	assert.Equal(t, "mat4x4<f32>", (&MatrixType{Size: 4, Elem: scalar(ScalarF32)}).String())
	assert.Equal(t, "ptr<uniform, bool>", (&PointerType{Class: ClassUniform, Elem: scalar(ScalarBool)}).String())
	assert.Equal(t, "array<u32>", (&ArrayType{Elem: scalar(ScalarU32)}).String())
	assert.Equal(t, "array<u32, 8>", (&ArrayType{Elem: scalar(ScalarU32), Sized: true, Size: 8}).String())
	assert.Equal(t, "Light", (&NamedType{Name: ident("Light")}).String())
}

func TestPrintImport(t *testing.T) {
	imp := &Import{
		Path:  "GLSL.std.450",
		Alias: []Ident{ident("std"), ident("glsl")},
	}
	assert.Equal(t, `import "GLSL.std.450" as std::glsl;`, imp.String())
}

func TestPrintStringEscaping(t *testing.T) {
	imp := &Import{
		Path:  `quoted "name"`,
		Alias: []Ident{ident("q")},
	}
	assert.Equal(t, `import "quoted ""name""" as q;`, imp.String())
}

func TestPrintGlobalVar(t *testing.T) {
	gv := &GlobalVar{
		Decorations: []*Decoration{
			{Kind: DecorationLocation, Location: 0},
			{Kind: DecorationBuiltin, Builtin: BuiltinVertexIndex},
		},
		Class: ClassIn,
		Name:  ident("pos"),
		Type:  &VectorType{Size: 3, Elem: scalar(ScalarF32)},
	}
	assert.Equal(t, "[[location 0, builtin vertex_idx]] var<in> pos: vec3<f32>;", gv.String())
}

func TestPrintEntryPoint(t *testing.T) {
	with := &EntryPoint{Stage: StageVertex, Export: "vs_main", HasExport: true, Target: ident("main")}
	assert.Equal(t, `entry_point vertex as "vs_main" = main;`, with.String())

	without := &EntryPoint{Stage: StageFragment, Target: ident("fs")}
	assert.Equal(t, "entry_point fragment = fs;", without.String())
}

func TestPrintFunction(t *testing.T) {
	fn := &Function{
		Name: ident("main"),
		Body: &Block{Stmts: []Stmt{&ReturnStmt{}}},
	}
	assert.Equal(t, "fn main() -> void {\n  return;\n}", fn.String())
}

// The printer restores exactly the parentheses the tree shape needs: a
// lower-precedence child on the left, or an equal-or-lower one on the
// right, is wrapped.
func TestPrintBinaryParenthesization(t *testing.T) {
	a := &IdentExpr{Name: "a"}
	b := &IdentExpr{Name: "b"}
	c := &IdentExpr{Name: "c"}

	// Mul(Add(a, b), c) needs parens around the sum.
	grouped := &BinaryExpr{
		Op:    "*",
		Left:  &BinaryExpr{Op: "+", Left: a, Right: b},
		Right: c,
	}
	assert.Equal(t, "(a + b) * c", grouped.String())

	// Add(a, Mul(b, c)) needs none.
	natural := &BinaryExpr{
		Op:    "+",
		Left:  a,
		Right: &BinaryExpr{Op: "*", Left: b, Right: c},
	}
	assert.Equal(t, "a + b * c", natural.String())

	// Right-nested equal precedence came from explicit grouping.
	rightNested := &BinaryExpr{
		Op:    "+",
		Left:  a,
		Right: &BinaryExpr{Op: "+", Left: b, Right: c},
	}
	assert.Equal(t, "a + (b + c)", rightNested.String())
}

func TestPrintStructAlias(t *testing.T) {
	alias := &TypeAlias{
		Name: ident("Light"),
		Struct: &StructDecl{
			Block: true,
			Members: []*StructMember{
				{HasOffset: true, Offset: 0, Name: ident("pos"), Type: &VectorType{Size: 4, Elem: scalar(ScalarF32)}},
				{Name: ident("tint"), Type: scalar(ScalarF32)},
			},
		},
	}
	expected := "type Light = [[block]] struct {\n" +
		"  [[offset 0]] pos: vec4<f32>;\n" +
		"  tint: f32;\n" +
		"};"
	assert.Equal(t, expected, alias.String())
}

func TestPrintConstructor(t *testing.T) {
	ctor := &ConstructorExpr{
		Type: &VectorType{Size: 2, Elem: scalar(ScalarF32)},
		Args: []Expr{
			&LiteralExpr{Kind: LiteralFloat, Text: "1.0", Float: 1},
			&IdentExpr{Name: "y"},
		},
	}
	assert.Equal(t, "vec2<f32>(1.0, y)", ctor.String())
}
