package fibercompiler

import (
	"go/ast"
	"go/token"
)

// clearPos resets the token.Pos fields of the node kinds listed below
// wherever they occur in tree; other node kinds (index expressions, unary
// and binary expressions, and so on) keep their positions. rewriteBody
// moves the original statements into case clauses next to nodes it builds
// itself, which have no positions; mixing the two confuses go/format's
// spacing decisions, and clearing the listed kinds makes the formatter
// derive that layout from the tree's structure instead.
func clearPos(tree ast.Node) {
	ast.Inspect(tree, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.AssignStmt:
			n.TokPos = token.NoPos
		case *ast.BasicLit:
			n.ValuePos = token.NoPos
		case *ast.BlockStmt:
			n.Lbrace, n.Rbrace = token.NoPos, token.NoPos
		case *ast.BranchStmt:
			n.TokPos = token.NoPos
		case *ast.CallExpr:
			n.Lparen, n.Rparen, n.Ellipsis = token.NoPos, token.NoPos, token.NoPos
		case *ast.CaseClause:
			n.Case, n.Colon = token.NoPos, token.NoPos
		case *ast.Ident:
			n.NamePos = token.NoPos
		case *ast.IfStmt:
			n.If = token.NoPos
		case *ast.ReturnStmt:
			n.Return = token.NoPos
		case *ast.SelectorExpr:
		case *ast.SwitchStmt:
			n.Switch = token.NoPos
		case *ast.ExprStmt:
		}
		return true
	})
}
