package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	MODULE
	IDENT

	// Declarations
	IMPORT
	GLOBAL_VAR
	GLOBAL_CONST
	TYPE_ALIAS
	STRUCT_DECL
	STRUCT_MEMBER
	FUNCTION
	FUNCTION_PARAM
	ENTRY_POINT
	EMPTY_DECL
	DECORATION

	// Statements
	BLOCK
	EMPTY_STMT
	RETURN_STMT
	VAR_STMT
	ASSIGN_STMT

	// Types
	SCALAR_TYPE
	VECTOR_TYPE
	MATRIX_TYPE
	POINTER_TYPE
	ARRAY_TYPE
	NAMED_TYPE

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	CONSTRUCTOR_EXPR
	BINARY_EXPR
)

// DecorationKind distinguishes the entries of a variable decoration list.
type DecorationKind int

const (
	DecorationLocation DecorationKind = iota
	DecorationBuiltin
)

// Builtin identifies the built-in shader inputs and outputs the dialect
// knows about.
type Builtin int

const (
	BuiltinPosition Builtin = iota
	BuiltinVertexIndex
)

func (b Builtin) String() string {
	switch b {
	case BuiltinPosition:
		return "position"
	case BuiltinVertexIndex:
		return "vertex_idx"
	}
	return "unknown"
}

// StorageClass is the binding category of a variable. ClassNone marks a
// local variable declared without an angle-bracket suffix.
type StorageClass int

const (
	ClassNone StorageClass = iota
	ClassIn
	ClassOut
	ClassUniform
	ClassStorageBuffer
	ClassPrivate
	ClassFunction
)

func (c StorageClass) String() string {
	switch c {
	case ClassIn:
		return "in"
	case ClassOut:
		return "out"
	case ClassUniform:
		return "uniform"
	case ClassStorageBuffer:
		return "storage_buffer"
	case ClassPrivate:
		return "private"
	case ClassFunction:
		return "function"
	}
	return "none"
}

// Stage is the pipeline stage an entry point binds a function to.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	}
	return "unknown"
}

// ScalarKind identifies the four scalar types of the dialect.
type ScalarKind int

const (
	ScalarBool ScalarKind = iota
	ScalarF32
	ScalarI32
	ScalarU32
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarBool:
		return "bool"
	case ScalarF32:
		return "f32"
	case ScalarI32:
		return "i32"
	case ScalarU32:
		return "u32"
	}
	return "unknown"
}

// LiteralKind identifies the constant literal forms.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralUint
	LiteralFloat
)
