package grammar_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prism/grammar"
	"prism/internal/parser"
)

func TestTriangleExample(t *testing.T) {
	unit, err := grammar.ParseFile(`../examples/triangle.psl`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assert.NotNil(t, unit)
	assert.Equal(t, 7, len(unit.Decls))

	imp := unit.Decls[0].Import
	require.NotNil(t, imp)
	assert.Equal(t, `"GLSL.std.450"`, imp.Path)
	assert.Equal(t, []string{"std"}, imp.Alias)

	pos := unit.Decls[1].Global
	require.NotNil(t, pos)
	assert.Equal(t, "builtin", kind(pos.Decorations.Decorations[0]))
	assert.Equal(t, "position", pos.Decorations.Decorations[0].Builtin)
	assert.Equal(t, "out", pos.Class)
	assert.Equal(t, "gl_position", pos.Name)
	assert.Equal(t, "vec4", pos.Type.Name)

	scale := unit.Decls[4].Const
	require.NotNil(t, scale)
	assert.Equal(t, "scale", scale.Name)
	assert.Equal(t, "f32", scale.Type.Name)

	main := unit.Decls[5].Func
	require.NotNil(t, main)
	assert.Equal(t, "main", main.Name)
	assert.Empty(t, main.Params)
	assert.Equal(t, "void", main.Return.Name)

	entry := unit.Decls[6].Entry
	require.NotNil(t, entry)
	assert.Equal(t, "vertex", entry.Stage)
	require.NotNil(t, entry.Export)
	assert.Equal(t, `"vs_main"`, *entry.Export)
	assert.Equal(t, "main", entry.Target)
}

func TestLightingExample(t *testing.T) {
	unit, err := grammar.ParseFile(`../examples/lighting.psl`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assert.Equal(t, 9, len(unit.Decls))

	alias := unit.Decls[1].Alias
	require.NotNil(t, alias)
	assert.Equal(t, "Light", alias.Name)
	require.NotNil(t, alias.Struct)
	assert.True(t, alias.Struct.Block)
	assert.Equal(t, 3, len(alias.Struct.Members))
	require.NotNil(t, alias.Struct.Members[1].Offset)
	assert.Equal(t, "16", *alias.Struct.Members[1].Offset)

	shade := unit.Decls[6].Func
	require.NotNil(t, shade)
	assert.Equal(t, "shade", shade.Name)
	assert.Equal(t, 2, len(shade.Params))
	assert.Equal(t, "vec4", shade.Return.Name)
}

func TestGenericTypes(t *testing.T) {
	unit, err := grammar.ParseString("t.psl", `
		fn f(p: ptr<uniform, array<vec3<f32>, 4>>) -> void {
			return;
		}
	`)
	require.NoError(t, err)

	param := unit.Decls[0].Func.Params[0]
	assert.Equal(t, "ptr", param.Type.Name)
	assert.Equal(t, "uniform", param.Type.Params[0].Type.Name)
	arr := param.Type.Params[1].Type
	assert.Equal(t, "array", arr.Name)
	assert.Equal(t, "vec3", arr.Params[0].Type.Name)
	assert.Equal(t, "4", *arr.Params[1].Size)
}

func TestFlatExpressions(t *testing.T) {
	unit, err := grammar.ParseString("t.psl", `
		const x: u32 = a + b * c == d;
	`)
	require.NoError(t, err)

	// Operands come out flat in source order. Precedence is not this
	// grammar's job.
	expr := unit.Decls[0].Const.Init
	assert.Equal(t, "a", *expr.Left.Ident)
	require.Equal(t, 3, len(expr.Ops))
	assert.Equal(t, "+", expr.Ops[0].Operator)
	assert.Equal(t, "*", expr.Ops[1].Operator)
	assert.Equal(t, "==", expr.Ops[2].Operator)
}

func TestConstructorVersusIdentifier(t *testing.T) {
	unit, err := grammar.ParseString("t.psl", `
		const x: f32 = foo(bar, vec2<f32>(1.0, 2.0));
	`)
	require.NoError(t, err)

	ctor := unit.Decls[0].Const.Init.Left.Constructor
	require.NotNil(t, ctor)
	assert.Equal(t, "foo", ctor.Type.Name)
	assert.NotNil(t, ctor.Args[0].Left.Ident)
	assert.NotNil(t, ctor.Args[1].Left.Constructor)
}

func TestRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"var x: f32;",                   // global var without decorations
		"[[location 0]] var x f32;",     // missing colon
		"fn f() { return; }",            // missing return arrow
		"entry_point geometry = main;",  // unknown stage
		"const x: f32 = ;",              // missing initializer expression
		"type T = struct { x: f32; };x", // trailing garbage
	}
	for _, src := range cases {
		_, err := grammar.ParseString("t.psl", src)
		assert.Error(t, err, "source %q should not parse", src)
	}
}

// Both front ends accept the same example sources.
func TestAgreesWithHandParser(t *testing.T) {
	for _, path := range []string{"../examples/triangle.psl", "../examples/lighting.psl"} {
		source, err := os.ReadFile(path)
		require.NoError(t, err)

		unit, gerr := grammar.ParseString(path, string(source))
		require.NoError(t, gerr, path)

		mod, perr := parser.Parse(path, string(source))
		require.NoError(t, perr, path)

		assert.Equal(t, len(unit.Decls), len(mod.Decls), path)
	}
}

func kind(d *grammar.Decoration) string {
	if d.Location != nil {
		return "location"
	}
	return "builtin"
}
