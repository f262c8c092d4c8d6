package grammar

type Unit struct {
	Decls []*Decl `parser:"@@*"`
}

type Decl struct {
	Empty  bool         `parser:"  @\";\""`
	Import *Import      `parser:"| @@"`
	Global *GlobalVar   `parser:"| @@"`
	Const  *GlobalConst `parser:"| @@"`
	Alias  *TypeAlias   `parser:"| @@"`
	Func   *Function    `parser:"| @@"`
	Entry  *EntryPoint  `parser:"| @@"`
}

type Import struct {
	Path  string   `parser:"\"import\" @String \"as\""`
	Alias []string `parser:"@Ident { \"::\" @Ident } \";\""`
}

type DecorationList struct {
	Decorations []*Decoration `parser:"\"[[\" @@ { \",\" @@ } \"]]\""`
}

type Decoration struct {
	Location *string `parser:"  \"location\" @Integer"`
	Builtin  string  `parser:"| \"builtin\" @(\"position\" | \"vertex_idx\")"`
}

type GlobalVar struct {
	Decorations *DecorationList `parser:"@@"`
	Class       string          `parser:"\"var\" [ \"<\" @Ident \">\" ]"`
	Name        string          `parser:"@Ident \":\""`
	Type        *Type           `parser:"@@"`
	Init        *Expr           `parser:"[ \"=\" @@ ] \";\""`
}

type GlobalConst struct {
	Name string `parser:"\"const\" @Ident \":\""`
	Type *Type  `parser:"@@"`
	Init *Expr  `parser:"\"=\" @@ \";\""`
}

type TypeAlias struct {
	Name   string      `parser:"\"type\" @Ident \"=\""`
	Struct *StructDecl `parser:"( @@"`
	Type   *Type       `parser:"| @@ ) \";\""`
}

type StructDecl struct {
	Block   bool            `parser:"[ \"[[\" @\"block\" \"]]\" ]"`
	Members []*StructMember `parser:"\"struct\" \"{\" @@* \"}\""`
}

type StructMember struct {
	Offset *string `parser:"[ \"[[\" \"offset\" @Integer \"]]\" ]"`
	Name   string  `parser:"@Ident \":\""`
	Type   *Type   `parser:"@@ \";\""`
}

type Function struct {
	Name   string           `parser:"\"fn\" @Ident \"(\""`
	Params []*FunctionParam `parser:"[ @@ { \",\" @@ } ] \")\""`
	Return *Type            `parser:"\"->\" @@"`
	Body   *Block           `parser:"@@"`
}

type FunctionParam struct {
	Name string `parser:"@Ident \":\""`
	Type *Type  `parser:"@@"`
}

type EntryPoint struct {
	Stage  string  `parser:"\"entry_point\" @(\"vertex\" | \"fragment\" | \"compute\")"`
	Export *string `parser:"[ \"as\" @String ]"`
	Target string  `parser:"\"=\" @Ident \";\""`
}

type Block struct {
	Stmts []*Stmt `parser:"\"{\" @@* \"}\""`
}

type Stmt struct {
	Empty  bool        `parser:"  @\";\""`
	Return *ReturnStmt `parser:"| @@"`
	Var    *VarStmt    `parser:"| @@"`
	Assign *AssignStmt `parser:"| @@"`
}

type ReturnStmt struct {
	Keyword string `parser:"\"return\""`
	Value   *Expr  `parser:"[ @@ ] \";\""`
}

type VarStmt struct {
	Keyword string `parser:"@(\"var\" | \"const\")"`
	Class   string `parser:"[ \"<\" @Ident \">\" ]"`
	Name    string `parser:"@Ident \":\""`
	Type    *Type  `parser:"@@"`
	Init    *Expr  `parser:"[ \"=\" @@ ] \";\""`
}

type AssignStmt struct {
	Name  string `parser:"@Ident \"=\""`
	Value *Expr  `parser:"@@ \";\""`
}

// Type covers scalars, vecN/matNxN generics, ptr, array and named
// aliases with one shape. Which spellings are legal inside the angle
// brackets is the tree builder's problem, not the grammar's.
type Type struct {
	Name   string       `parser:"@Ident"`
	Params []*TypeParam `parser:"[ \"<\" @@ { \",\" @@ } \">\" ]"`
}

type TypeParam struct {
	Type *Type   `parser:"  @@"`
	Size *string `parser:"| @Integer"`
}

// Expressions come out flat: a leading operand and a run of operator
// plus operand pairs. Precedence is applied when lowering, the way the
// hand-written parser bakes it into the tree directly.
type Expr struct {
	Left *PrimaryExpr `parser:"@@"`
	Ops  []*BinOp     `parser:"{ @@ }"`
}

type BinOp struct {
	Operator string       `parser:"@(\"||\" | \"&&\" | \"|\" | \"^\" | \"&\" | \"==\" | \"+\" | \"*\")"`
	Right    *PrimaryExpr `parser:"@@"`
}

type PrimaryExpr struct {
	Constructor *ConstructorExpr `parser:"  @@"`
	Float       *string          `parser:"| @Float"`
	Integer     *string          `parser:"| @Integer"`
	True        bool             `parser:"| @\"true\""`
	False       bool             `parser:"| @\"false\""`
	Ident       *string          `parser:"| @Ident"`
	Parens      *Expr            `parser:"| \"(\" @@ \")\""`
}

type ConstructorExpr struct {
	Type *Type   `parser:"@@"`
	Args []*Expr `parser:"\"(\" @@ { \",\" @@ } \")\""`
}
