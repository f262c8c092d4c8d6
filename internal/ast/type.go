package ast

// Type is the interface for the recursive type grammar.
type Type interface {
	Node
	isType()
}

func (*ScalarType) isType() {}

func (*VectorType) isType() {}

func (*MatrixType) isType() {}

func (*PointerType) isType() {}

func (*ArrayType) isType() {}

func (*NamedType) isType() {}
