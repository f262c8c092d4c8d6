package lsp

import (
	"prism/internal/ast"
)

// SemanticToken is one LSP semantic token entry. Line and StartChar are
// 0-based, TokenType indexes SemanticTokenTypes and TokenModifiers is a
// bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modNone        = 0
	modDeclaration = 1 << 0
	modReadonly    = 1 << 2
)

func collectSemanticTokens(module *ast.Module) []SemanticToken {
	var tokens []SemanticToken

	if module == nil {
		return tokens
	}

	for _, decl := range module.Decls {
		tokens = append(tokens, walkGlobalDecl(decl)...)
	}

	return tokens
}

func walkGlobalDecl(decl ast.GlobalDecl) []SemanticToken {
	var tokens []SemanticToken

	switch v := decl.(type) {
	case *ast.Import:
		for _, seg := range v.Alias {
			tokens = append(tokens, identToken(seg, "namespace", modDeclaration))
		}
	case *ast.GlobalVar:
		for _, d := range v.Decorations {
			tokens = append(tokens, decorationToken(d))
		}
		tokens = append(tokens, identToken(v.Name, "variable", modDeclaration))
		tokens = append(tokens, walkType(v.Type)...)
		tokens = append(tokens, walkExpr(v.Init)...)
	case *ast.GlobalConst:
		tokens = append(tokens, identToken(v.Name, "variable", modDeclaration|modReadonly))
		tokens = append(tokens, walkType(v.Type)...)
		tokens = append(tokens, walkExpr(v.Init)...)
	case *ast.TypeAlias:
		tokens = append(tokens, identToken(v.Name, "type", modDeclaration))
		if v.Struct != nil {
			for _, member := range v.Struct.Members {
				tokens = append(tokens, identToken(member.Name, "property", modDeclaration))
				tokens = append(tokens, walkType(member.Type)...)
			}
		} else {
			tokens = append(tokens, walkType(v.Type)...)
		}
	case *ast.Function:
		tokens = append(tokens, identToken(v.Name, "function", modDeclaration))
		for _, param := range v.Params {
			tokens = append(tokens, identToken(param.Name, "parameter", modDeclaration))
			tokens = append(tokens, walkType(param.Type)...)
		}
		if v.Return != nil {
			tokens = append(tokens, walkType(v.Return)...)
		}
		tokens = append(tokens, walkBlock(v.Body)...)
	case *ast.EntryPoint:
		tokens = append(tokens, identToken(v.Target, "function", modNone))
	}

	return tokens
}

func walkBlock(block *ast.Block) []SemanticToken {
	var tokens []SemanticToken

	if block == nil {
		return tokens
	}

	for _, stmt := range block.Stmts {
		switch v := stmt.(type) {
		case *ast.VarStmt:
			mods := modDeclaration
			if v.Const {
				mods |= modReadonly
			}
			tokens = append(tokens, identToken(v.Name, "variable", mods))
			tokens = append(tokens, walkType(v.Type)...)
			tokens = append(tokens, walkExpr(v.Init)...)
		case *ast.AssignStmt:
			tokens = append(tokens, identToken(v.Name, "variable", modNone))
			tokens = append(tokens, walkExpr(v.Value)...)
		case *ast.ReturnStmt:
			tokens = append(tokens, walkExpr(v.Value)...)
		}
	}

	return tokens
}

func walkType(t ast.Type) []SemanticToken {
	var tokens []SemanticToken

	switch v := t.(type) {
	case *ast.ScalarType:
		tokens = append(tokens, posToken(v.Pos, len(v.Kind.String()), "type", modNone))
	case *ast.VectorType:
		tokens = append(tokens, posToken(v.Pos, len("vec2"), "type", modNone))
		tokens = append(tokens, walkType(v.Elem)...)
	case *ast.MatrixType:
		tokens = append(tokens, posToken(v.Pos, len("mat2x2"), "type", modNone))
		tokens = append(tokens, walkType(v.Elem)...)
	case *ast.PointerType:
		tokens = append(tokens, posToken(v.Pos, len("ptr"), "type", modNone))
		tokens = append(tokens, walkType(v.Elem)...)
	case *ast.ArrayType:
		tokens = append(tokens, posToken(v.Pos, len("array"), "type", modNone))
		tokens = append(tokens, walkType(v.Elem)...)
	case *ast.NamedType:
		tokens = append(tokens, identToken(v.Name, "type", modNone))
	}

	return tokens
}

func walkExpr(e ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	switch v := e.(type) {
	case *ast.LiteralExpr:
		if v.Kind != ast.LiteralBool {
			tokens = append(tokens, posToken(v.Pos, len(v.Text), "number", modNone))
		}
	case *ast.IdentExpr:
		tokens = append(tokens, posToken(v.Pos, len(v.Name), "variable", modNone))
	case *ast.ConstructorExpr:
		tokens = append(tokens, walkType(v.Type)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpr(v.Left)...)
		tokens = append(tokens, walkExpr(v.Right)...)
	}

	return tokens
}

func decorationToken(d *ast.Decoration) SemanticToken {
	length := len("location")
	if d.Kind == ast.DecorationBuiltin {
		length = len("builtin")
	}
	return posToken(d.Pos, length, "modifier", modNone)
}

func identToken(id ast.Ident, tokenType string, modifiers int) SemanticToken {
	return posToken(id.Pos, len(id.Value), tokenType, modifiers)
}

func posToken(pos ast.Position, length int, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      tokenTypeIndex(tokenType),
		TokenModifiers: modifiers,
	}
}

func tokenTypeIndex(name string) int {
	for i, t := range SemanticTokenTypes {
		if t == name {
			return i
		}
	}
	return 0
}
