package ast

type Expr interface {
	Node
	isExpr()
}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ConstructorExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}
