package fibercompiler

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// fiberPackagePath is the import path whose Site function marks
// suspension sites in a fiber:generate function.
const fiberPackagePath = "github.com/JarkkoPFC/fiber"

// generateDirective is the doc-comment line that opts a function into
// fiberc rewriting.
const generateDirective = "//fiber:generate"

// isMarked reports whether fn's doc comment carries the fiber:generate
// directive.
func isMarked(fn *ast.FuncDecl) bool {
	if fn.Doc == nil {
		return false
	}
	for _, c := range fn.Doc.List {
		if c.Text == generateDirective {
			return true
		}
	}
	return false
}

// rewriteBody splits fn's statement list at each fiber.Site() marker call
// and replaces it with a switch on the receiver's resume field, one case
// per segment, matching the hand-written suspension-site dispatch
// convention. It reports whether fn contained any Site markers.
func rewriteBody(fn *ast.FuncDecl, info *types.Info) (bool, error) {
	recvName, err := receiverName(fn)
	if err != nil {
		return false, err
	}

	segments, ok := splitAtSites(fn.Body.List, info)
	if !ok {
		return false, nil
	}
	if len(segments) < 2 {
		return false, fmt.Errorf("%s: fiber:generate function has no suspension sites", fn.Name.Name)
	}

	sw := &ast.SwitchStmt{
		Tag:  fieldExpr(recvName, "resume"),
		Body: &ast.BlockStmt{},
	}
	for i, seg := range segments {
		clause := &ast.CaseClause{
			List: []ast.Expr{intLit(i)},
			Body: append([]ast.Stmt{}, seg...),
		}
		if i < len(segments)-1 {
			clause.Body = append(clause.Body,
				&ast.AssignStmt{
					Lhs: []ast.Expr{fieldExpr(recvName, "resume")},
					Tok: token.ASSIGN,
					Rhs: []ast.Expr{intLit(i + 1)},
				},
				&ast.BranchStmt{Tok: token.FALLTHROUGH},
			)
		}
		sw.Body.List = append(sw.Body.List, clause)
	}

	fn.Body.List = []ast.Stmt{
		sw,
		&ast.ReturnStmt{Results: []ast.Expr{ast.NewIdent("false")}},
	}
	clearPos(fn.Body)
	return true, nil
}

func receiverName(fn *ast.FuncDecl) (string, error) {
	if fn.Recv == nil || len(fn.Recv.List) != 1 || len(fn.Recv.List[0].Names) != 1 {
		return "", fmt.Errorf("%s: fiber:generate requires a single named receiver", fn.Name.Name)
	}
	return fn.Recv.List[0].Names[0].Name, nil
}

func fieldExpr(recv, field string) ast.Expr {
	return &ast.SelectorExpr{X: ast.NewIdent(recv), Sel: ast.NewIdent(field)}
}

func intLit(n int) ast.Expr {
	return &ast.BasicLit{Kind: token.INT, Value: fmt.Sprint(n)}
}

// splitAtSites partitions stmts into segments separated by fiber.Site()
// marker calls. It reports false if stmts contains no Site markers.
func splitAtSites(stmts []ast.Stmt, info *types.Info) ([][]ast.Stmt, bool) {
	var segments [][]ast.Stmt
	var current []ast.Stmt
	found := false
	for _, stmt := range stmts {
		if isSiteCall(stmt, info) {
			segments = append(segments, current)
			current = nil
			found = true
			continue
		}
		current = append(current, stmt)
	}
	segments = append(segments, current)
	if !found {
		return nil, false
	}
	return segments, true
}

func isSiteCall(stmt ast.Stmt, info *types.Info) bool {
	exprStmt, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}
	call, ok := exprStmt.X.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Site" {
		return false
	}
	fn, ok := info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == fiberPackagePath
}
