package ast

import (
	"fmt"
	"strings"
)

// The String methods re-emit canonical source. Parsing the printed form
// yields a structurally identical tree, which is what the formatter and the
// round-trip tests rely on.

func (m *Module) String() string {
	var b strings.Builder

	for i, decl := range m.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (i *Import) String() string {
	segs := make([]string, len(i.Alias))
	for n, seg := range i.Alias {
		segs[n] = seg.Value
	}
	return fmt.Sprintf("import %s as %s;", quote(i.Path), strings.Join(segs, "::"))
}

func (d *Decoration) String() string {
	if d.Kind == DecorationBuiltin {
		return fmt.Sprintf("builtin %s", d.Builtin)
	}
	return fmt.Sprintf("location %d", d.Location)
}

func decorationList(decorations []*Decoration) string {
	parts := make([]string, len(decorations))
	for i, d := range decorations {
		parts[i] = d.String()
	}
	return "[[" + strings.Join(parts, ", ") + "]]"
}

func (v *GlobalVar) String() string {
	var b strings.Builder

	b.WriteString(decorationList(v.Decorations))
	b.WriteString(" var")
	if v.Class != ClassNone {
		b.WriteString(fmt.Sprintf("<%s>", v.Class))
	}
	b.WriteString(fmt.Sprintf(" %s: %s", v.Name.Value, v.Type))
	if v.Init != nil {
		b.WriteString(" = ")
		b.WriteString(v.Init.String())
	}
	b.WriteString(";")

	return b.String()
}

func (c *GlobalConst) String() string {
	return fmt.Sprintf("const %s: %s = %s;", c.Name.Value, c.Type, c.Init)
}

func (t *TypeAlias) String() string {
	if t.Struct != nil {
		return fmt.Sprintf("type %s = %s;", t.Name.Value, t.Struct)
	}
	return fmt.Sprintf("type %s = %s;", t.Name.Value, t.Type)
}

func (s *StructDecl) String() string {
	var b strings.Builder

	if s.Block {
		b.WriteString("[[block]] ")
	}
	b.WriteString("struct {\n")
	for _, member := range s.Members {
		b.WriteString("  " + member.String() + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (m *StructMember) String() string {
	var b strings.Builder

	if m.HasOffset {
		b.WriteString(fmt.Sprintf("[[offset %d]] ", m.Offset))
	}
	b.WriteString(fmt.Sprintf("%s: %s;", m.Name.Value, m.Type))

	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("fn %s(", f.Name.Value))
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(") -> ")
	if f.Return != nil {
		b.WriteString(f.Return.String())
	} else {
		b.WriteString("void")
	}
	b.WriteString(" ")
	b.WriteString(f.Body.String())

	return b.String()
}

func (p *FunctionParam) String() string {
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type)
}

func (e *EntryPoint) String() string {
	if e.HasExport {
		return fmt.Sprintf("entry_point %s as %s = %s;", e.Stage, quote(e.Export), e.Target.Value)
	}
	return fmt.Sprintf("entry_point %s = %s;", e.Stage, e.Target.Value)
}

func (e *EmptyDecl) String() string {
	return ";"
}

func (b *Block) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")

	return sb.String()
}

func (e *EmptyStmt) String() string {
	return ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

func (v *VarStmt) String() string {
	var b strings.Builder

	if v.Const {
		b.WriteString("const")
	} else {
		b.WriteString("var")
	}
	if v.Class != ClassNone {
		b.WriteString(fmt.Sprintf("<%s>", v.Class))
	}
	b.WriteString(fmt.Sprintf(" %s: %s", v.Name.Value, v.Type))
	if v.Init != nil {
		b.WriteString(" = ")
		b.WriteString(v.Init.String())
	}
	b.WriteString(";")

	return b.String()
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", a.Name.Value, a.Value)
}

func (t *ScalarType) String() string {
	return t.Kind.String()
}

func (t *VectorType) String() string {
	return fmt.Sprintf("vec%d<%s>", t.Size, t.Elem)
}

func (t *MatrixType) String() string {
	return fmt.Sprintf("mat%dx%d<%s>", t.Size, t.Size, t.Elem)
}

func (t *PointerType) String() string {
	return fmt.Sprintf("ptr<%s, %s>", t.Class, t.Elem)
}

func (t *ArrayType) String() string {
	if t.Sized {
		return fmt.Sprintf("array<%s, %d>", t.Elem, t.Size)
	}
	return fmt.Sprintf("array<%s>", t.Elem)
}

func (t *NamedType) String() string {
	return t.Name.Value
}

func (l *LiteralExpr) String() string {
	return l.Text
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (c *ConstructorExpr) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Type, strings.Join(args, ", "))
}

// opPrecedence mirrors the parser's binding powers so the printer can
// restore exactly the parentheses the tree shape needs.
var opPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6,
	"+":  7,
	"*":  8,
}

func (b *BinaryExpr) String() string {
	left := b.Left.String()
	if child, ok := b.Left.(*BinaryExpr); ok && opPrecedence[child.Op] < opPrecedence[b.Op] {
		left = "(" + left + ")"
	}

	right := b.Right.String()
	// All operators are left-associative, so an equal-precedence child on
	// the right also needs parentheses to survive a re-parse.
	if child, ok := b.Right.(*BinaryExpr); ok && opPrecedence[child.Op] <= opPrecedence[b.Op] {
		right = "(" + right + ")"
	}

	return fmt.Sprintf("%s %s %s", left, b.Op, right)
}

// quote renders a string literal, doubling embedded quotes the way the
// lexer undoes them.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
