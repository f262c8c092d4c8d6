package ast

// Module represents one parsed translation unit (an entire .psl source file).
// Declarations are kept in source order because later declarations may refer
// to earlier names.
// Example: "import \"GLSL.std.450\" as std;\nfn main() -> void { return; }"
type Module struct {
	Pos    Position
	EndPos Position
	Decls  []GlobalDecl
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "pos", "main", "Light"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Import represents an import declaration binding an external module path
// to a qualified alias. The alias always has at least one segment.
// Example: "import \"GLSL.std.450\" as std;"
type Import struct {
	Pos    Position
	EndPos Position
	Path   string
	Alias  []Ident
}

// Decoration represents a single entry of a variable decoration list.
// Example: "location 0", "builtin position" in "[[location 0]] var<in> ..."
type Decoration struct {
	Pos      Position
	EndPos   Position
	Kind     DecorationKind
	Location uint32  // valid when Kind == DecorationLocation
	Builtin  Builtin // valid when Kind == DecorationBuiltin
}

// GlobalVar represents a decorated module-scope variable declaration.
// The decoration list is never empty; the grammar rejects "[[]]".
// Example: "[[location 0]] var<in> pos: vec3<f32>;"
type GlobalVar struct {
	Pos         Position
	EndPos      Position
	Decorations []*Decoration
	Class       StorageClass // ClassNone when no <...> suffix was written
	Name        Ident
	Type        Type
	Init        Expr // nil when no initializer
}

// GlobalConst represents a module-scope constant. The initializer is
// mandatory.
// Example: "const two: i32 = 2;"
type GlobalConst struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
	Init   Expr
}

// TypeAlias binds a name either to a type or to an inline struct
// declaration. Exactly one of Type and Struct is set.
// Example: "type Vec = vec4<f32>;", "type Light = struct { ... };"
type TypeAlias struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
	Struct *StructDecl
}

// StructDecl represents an inline struct body, optionally marked with the
// "[[block]]" decoration.
// Example: "[[block]] struct { [[offset 0]] view: mat4x4<f32>; }"
type StructDecl struct {
	Pos     Position
	EndPos  Position
	Block   bool
	Members []*StructMember
}

// StructMember represents a single struct member with an optional byte
// offset decoration. Offsets are carried verbatim; overlap and ordering
// checks belong to semantic analysis.
// Example: "[[offset 16]] color: vec4<f32>;"
type StructMember struct {
	Pos       Position
	EndPos    Position
	HasOffset bool
	Offset    uint32
	Name      Ident
	Type      Type
}

// Function represents a function declaration. A nil Return means the
// declared return type was "void".
// Example: "fn add(a: f32, b: f32) -> f32 { return a + b; }"
type Function struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*FunctionParam
	Return Type
	Body   *Block
}

// FunctionParam represents a single "name: type" function parameter.
// Example: "a: f32"
type FunctionParam struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
}

// EntryPoint binds a pipeline stage to a function by name. Resolution of
// the target identifier is left to a later pass.
// Example: "entry_point vertex as \"vs_main\" = main;"
type EntryPoint struct {
	Pos       Position
	EndPos    Position
	Stage     Stage
	Export    string
	HasExport bool
	Target    Ident
}

// EmptyDecl represents a stray ";" at module scope.
type EmptyDecl struct {
	Pos    Position
	EndPos Position
}

// Block represents a brace-delimited statement sequence. Statement bodies
// are flat; the grammar has no nested blocks.
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// EmptyStmt represents a bare ";" inside a block.
type EmptyStmt struct {
	Pos    Position
	EndPos Position
}

// ReturnStmt represents return statements
// Example: "return a * b;", "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for plain "return;"
}

// VarStmt represents local variable and constant declarations.
// Example: "var x: f32 = 1.0;", "var<function> t: i32;", "const k: u32 = 2;"
type VarStmt struct {
	Pos    Position
	EndPos Position
	Const  bool
	Class  StorageClass // ClassNone when no <...> suffix was written
	Name   Ident
	Type   Type
	Init   Expr // nil only for an uninitialized "var"
}

// AssignStmt represents assignment statements
// Example: "out_pos = in_pos * scale;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// ScalarType represents the scalar types bool, f32, i32 and u32.
type ScalarType struct {
	Pos    Position
	EndPos Position
	Kind   ScalarKind
}

// VectorType represents vec2<T>, vec3<T> and vec4<T>.
type VectorType struct {
	Pos    Position
	EndPos Position
	Size   int // 2, 3 or 4
	Elem   Type
}

// MatrixType represents mat2x2<T>, mat3x3<T> and mat4x4<T>.
type MatrixType struct {
	Pos    Position
	EndPos Position
	Size   int // 2, 3 or 4 (square)
	Elem   Type
}

// PointerType represents ptr<storageClass, T>.
type PointerType struct {
	Pos    Position
	EndPos Position
	Class  StorageClass
	Elem   Type
}

// ArrayType represents array<T> (runtime-sized) and array<T, N>.
type ArrayType struct {
	Pos    Position
	EndPos Position
	Elem   Type
	Sized  bool
	Size   uint32
}

// NamedType represents a type referenced by identifier, resolved against
// aliases and structs by a later pass.
// Example: "Light" in "var<uniform> light: Light;"
type NamedType struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// LiteralExpr represents literal values
// Example: "100", "-3.5", "0x1f", "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Text   string // literal as written
	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
}

// IdentExpr represents a variable reference.
// Example: "pos", "scale"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ConstructorExpr represents a typed constructor call. The argument list
// is never empty; the grammar has no zero-argument constructor form.
// Example: "vec4<f32>(pos, 1.0)"
type ConstructorExpr struct {
	Pos    Position
	EndPos Position
	Type   Type
	Args   []Expr
}

// BinaryExpr represents binary operations. Parenthesization is structural
// only: "(a + b) * c" nests the Add under the Mul with no extra node.
// Example: "a + b * c", "bits & mask"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}
