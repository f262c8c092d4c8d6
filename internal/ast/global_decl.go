package ast

// GlobalDecl is the interface for module-scope declarations. Exactly one
// concrete variant exists per source declaration.
type GlobalDecl interface {
	Node
	isGlobalDecl()
}

func (*Import) isGlobalDecl() {}

func (*GlobalVar) isGlobalDecl() {}

func (*GlobalConst) isGlobalDecl() {}

func (*TypeAlias) isGlobalDecl() {}

func (*Function) isGlobalDecl() {}

func (*EntryPoint) isGlobalDecl() {}

func (*EmptyDecl) isGlobalDecl() {}
