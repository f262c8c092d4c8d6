package ast

type Stmt interface {
	Node
	isStmt()
}

func (*EmptyStmt) isStmt() {}

func (*ReturnStmt) isStmt() {}

func (*VarStmt) isStmt() {}

func (*AssignStmt) isStmt() {}
