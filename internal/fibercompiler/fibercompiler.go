// Package fibercompiler implements cmd/fiberc's source rewriting: it
// desugars fiber bodies written with fiber.Site() markers into the
// switch-on-resume dispatch form fiber.Call sites require, in place.
//
// This is deliberately narrower than a general coroutine compiler. It
// performs no control-flow analysis, no SSA construction, and no call
// graph coloring; a fiber:generate function must already be a
// straight-line sequence of statements with suspension only at named
// Site() markers, which is what the fiber package's own contract requires
// of hand-written bodies (see fiber.Fiber's Tick documentation).
package fibercompiler

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"log"
	"os"

	"golang.org/x/tools/go/packages"
)

// Result reports what Generate changed in one source file.
type Result struct {
	File      string
	Functions int
}

// Generate loads the Go packages matching pattern, rewrites every
// fiber:generate function it finds, and overwrites the source file of
// each package that changed. It returns one Result per rewritten file.
func Generate(pattern string) ([]Result, error) {
	fset := token.NewFileSet()
	conf := &packages.Config{
		Mode: packages.NeedName | packages.NeedModule |
			packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Fset: fset,
	}
	pkgs, err := packages.Load(conf, pattern)
	if err != nil {
		return nil, fmt.Errorf("fibercompiler: loading %q: %w", pattern, err)
	}

	var results []Result
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, fmt.Errorf("fibercompiler: %s: %w", pkg.PkgPath, e)
		}
		for i, file := range pkg.Syntax {
			if ignoreBuildTag(file) {
				continue
			}
			n, err := rewriteFile(file, pkg.TypesInfo)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				continue
			}
			path := pkg.CompiledGoFiles[i]
			if err := writeFile(path, file, fset); err != nil {
				return nil, err
			}
			log.Printf("fibercompiler: rewrote %d function(s) in %s", n, path)
			results = append(results, Result{File: path, Functions: n})
		}
	}
	return results, nil
}

func rewriteFile(file *ast.File, info *types.Info) (int, error) {
	n := 0
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isMarked(fn) {
			continue
		}
		rewritten, err := rewriteBody(fn, info)
		if err != nil {
			return n, fmt.Errorf("fibercompiler: %w", err)
		}
		if rewritten {
			n++
		}
	}
	return n, nil
}

func writeFile(path string, file *ast.File, fset *token.FileSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return format.Node(f, fset, file)
}
