package fibercompiler

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// parseFunc parses src as a lone function declaration and wires up a
// types.Info whose Uses map resolves every "Site" selector to a synthetic
// fiber.Site *types.Func, the way a real type-checked package would.
func parseFunc(t *testing.T, src string) (*ast.FuncDecl, *types.Info, *token.FileSet) {
	t.Helper()
	fset := token.NewFileSet()
	expr := "package p\n" + src
	file, err := parser.ParseFile(fset, "test.go", expr, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	fiberPkg := types.NewPackage(fiberPackagePath, "fiber")
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	siteFunc := types.NewFunc(token.NoPos, fiberPkg, "Site", sig)

	info := &types.Info{Uses: map[*ast.Ident]types.Object{}}
	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if ok && sel.Sel.Name == "Site" {
			info.Uses[sel.Sel] = siteFunc
		}
		return true
	})

	var fn *ast.FuncDecl
	for _, decl := range file.Decls {
		if f, ok := decl.(*ast.FuncDecl); ok {
			fn = f
		}
	}
	if fn == nil {
		t.Fatal("no function declaration found in source")
	}
	return fn, info, fset
}

// mustFormat is used only to sanity-check that format.Node accepts the
// rewritten tree without erroring; the test does not assert on its exact
// textual output, since go/format's whitespace choices for a tree that
// mixes real and cleared token.Pos values are an implementation detail.
func mustFormat(t *testing.T, fn *ast.FuncDecl, fset *token.FileSet) string {
	t.Helper()
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, fn); err != nil {
		t.Fatalf("format.Node rejected rewritten body: %v", err)
	}
	return buf.String()
}

func TestRewriteBodySingleSite(t *testing.T) {
	fn, info, fset := parseFunc(t, `
func (f *seq) Tick(cs *Callstack, pos uint32, budget *Budget) bool {
	if Call[Sleep, *Sleep](cs, pos, budget, initA) {
		return true
	}
	if cs.IsAborting() {
		return false
	}
	fiber.Site()
	if Call[Sleep, *Sleep](cs, pos, budget, initB) {
		return true
	}
	if cs.IsAborting() {
		return false
	}
}`)

	rewritten, err := rewriteBody(fn, info)
	if err != nil {
		t.Fatalf("rewriteBody: %v", err)
	}
	if !rewritten {
		t.Fatal("rewriteBody reported no Site markers found")
	}

	if len(fn.Body.List) != 2 {
		t.Fatalf("rewritten body has %d top-level statements, want 2 (switch, return)", len(fn.Body.List))
	}
	sw, ok := fn.Body.List[0].(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("first statement is %T, want *ast.SwitchStmt", fn.Body.List[0])
	}
	if _, ok := fn.Body.List[1].(*ast.ReturnStmt); !ok {
		t.Fatalf("second statement is %T, want *ast.ReturnStmt", fn.Body.List[1])
	}
	tag, ok := sw.Tag.(*ast.SelectorExpr)
	if !ok || tag.Sel.Name != "resume" {
		t.Fatalf("switch tag = %#v, want <recv>.resume", sw.Tag)
	}
	if x, ok := tag.X.(*ast.Ident); !ok || x.Name != "f" {
		t.Fatalf("switch tag receiver = %#v, want f", tag.X)
	}
	if len(sw.Body.List) != 2 {
		t.Fatalf("switch has %d cases, want 2", len(sw.Body.List))
	}
	case0 := sw.Body.List[0].(*ast.CaseClause)
	last := case0.Body[len(case0.Body)-1]
	if _, ok := last.(*ast.BranchStmt); !ok {
		t.Fatalf("case 0's last statement is %T, want fallthrough", last)
	}
	assign, ok := case0.Body[len(case0.Body)-2].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("case 0's second-to-last statement is %T, want an assignment to resume", case0.Body[len(case0.Body)-2])
	}
	if lit, ok := assign.Rhs[0].(*ast.BasicLit); !ok || lit.Value != "1" {
		t.Fatalf("case 0 sets resume to %#v, want 1", assign.Rhs[0])
	}
	case1 := sw.Body.List[1].(*ast.CaseClause)
	if len(case1.Body) != 2 {
		t.Fatalf("case 1 has %d statements, want 2 (the original if-block)", len(case1.Body))
	}

	mustFormat(t, fn, fset)
}

func TestRewriteBodyNoSiteMarkersIsNoop(t *testing.T) {
	fn, info, _ := parseFunc(t, `
func (f *seq) Tick(cs *Callstack, pos uint32, budget *Budget) bool {
	return false
}`)
	rewritten, err := rewriteBody(fn, info)
	if err != nil {
		t.Fatalf("rewriteBody: %v", err)
	}
	if rewritten {
		t.Fatal("rewriteBody reported a rewrite with no Site markers present")
	}
}

func TestRewriteBodyRequiresNamedReceiver(t *testing.T) {
	fn, info, _ := parseFunc(t, `
func (*seq) Tick(cs *Callstack, pos uint32, budget *Budget) bool {
	fiber.Site()
	return false
}`)
	if _, err := rewriteBody(fn, info); err == nil {
		t.Fatal("rewriteBody accepted an unnamed receiver")
	}
}

func TestIsMarkedRequiresExactDirective(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", `
package p

// fiber:generate (not exact, space after the slashes)
func (f *seq) A() {}

//fiber:generate
func (f *seq) B() {}
`, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var a, b *ast.FuncDecl
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		switch fn.Name.Name {
		case "A":
			a = fn
		case "B":
			b = fn
		}
	}
	if isMarked(a) {
		t.Fatal("isMarked matched a non-directive comment")
	}
	if !isMarked(b) {
		t.Fatal("isMarked failed to match the exact directive")
	}
}
