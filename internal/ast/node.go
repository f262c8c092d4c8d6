package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }
func (*Module) NodeType() NodeType     { return MODULE }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (i *Import) NodePos() Position    { return i.Pos }
func (i *Import) NodeEndPos() Position { return i.EndPos }
func (*Import) NodeType() NodeType     { return IMPORT }

func (d *Decoration) NodePos() Position    { return d.Pos }
func (d *Decoration) NodeEndPos() Position { return d.EndPos }
func (*Decoration) NodeType() NodeType     { return DECORATION }

func (v *GlobalVar) NodePos() Position    { return v.Pos }
func (v *GlobalVar) NodeEndPos() Position { return v.EndPos }
func (*GlobalVar) NodeType() NodeType     { return GLOBAL_VAR }

func (c *GlobalConst) NodePos() Position    { return c.Pos }
func (c *GlobalConst) NodeEndPos() Position { return c.EndPos }
func (*GlobalConst) NodeType() NodeType     { return GLOBAL_CONST }

func (t *TypeAlias) NodePos() Position    { return t.Pos }
func (t *TypeAlias) NodeEndPos() Position { return t.EndPos }
func (*TypeAlias) NodeType() NodeType     { return TYPE_ALIAS }

func (s *StructDecl) NodePos() Position    { return s.Pos }
func (s *StructDecl) NodeEndPos() Position { return s.EndPos }
func (*StructDecl) NodeType() NodeType     { return STRUCT_DECL }

func (m *StructMember) NodePos() Position    { return m.Pos }
func (m *StructMember) NodeEndPos() Position { return m.EndPos }
func (*StructMember) NodeType() NodeType     { return STRUCT_MEMBER }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (p *FunctionParam) NodePos() Position    { return p.Pos }
func (p *FunctionParam) NodeEndPos() Position { return p.EndPos }
func (*FunctionParam) NodeType() NodeType     { return FUNCTION_PARAM }

func (e *EntryPoint) NodePos() Position    { return e.Pos }
func (e *EntryPoint) NodeEndPos() Position { return e.EndPos }
func (*EntryPoint) NodeType() NodeType     { return ENTRY_POINT }

func (e *EmptyDecl) NodePos() Position    { return e.Pos }
func (e *EmptyDecl) NodeEndPos() Position { return e.EndPos }
func (*EmptyDecl) NodeType() NodeType     { return EMPTY_DECL }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (e *EmptyStmt) NodePos() Position    { return e.Pos }
func (e *EmptyStmt) NodeEndPos() Position { return e.EndPos }
func (*EmptyStmt) NodeType() NodeType     { return EMPTY_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (v *VarStmt) NodePos() Position    { return v.Pos }
func (v *VarStmt) NodeEndPos() Position { return v.EndPos }
func (*VarStmt) NodeType() NodeType     { return VAR_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (t *ScalarType) NodePos() Position    { return t.Pos }
func (t *ScalarType) NodeEndPos() Position { return t.EndPos }
func (*ScalarType) NodeType() NodeType     { return SCALAR_TYPE }

func (t *VectorType) NodePos() Position    { return t.Pos }
func (t *VectorType) NodeEndPos() Position { return t.EndPos }
func (*VectorType) NodeType() NodeType     { return VECTOR_TYPE }

func (t *MatrixType) NodePos() Position    { return t.Pos }
func (t *MatrixType) NodeEndPos() Position { return t.EndPos }
func (*MatrixType) NodeType() NodeType     { return MATRIX_TYPE }

func (t *PointerType) NodePos() Position    { return t.Pos }
func (t *PointerType) NodeEndPos() Position { return t.EndPos }
func (*PointerType) NodeType() NodeType     { return POINTER_TYPE }

func (t *ArrayType) NodePos() Position    { return t.Pos }
func (t *ArrayType) NodeEndPos() Position { return t.EndPos }
func (*ArrayType) NodeType() NodeType     { return ARRAY_TYPE }

func (t *NamedType) NodePos() Position    { return t.Pos }
func (t *NamedType) NodeEndPos() Position { return t.EndPos }
func (*NamedType) NodeType() NodeType     { return NAMED_TYPE }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (c *ConstructorExpr) NodePos() Position    { return c.Pos }
func (c *ConstructorExpr) NodeEndPos() Position { return c.EndPos }
func (*ConstructorExpr) NodeType() NodeType     { return CONSTRUCTOR_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }
