package fibercompiler

import (
	"go/ast"
	"go/build/constraint"
)

// ignoreBuildTag reports whether file carries a //go:build constraint that
// is exactly the single tag "ignore" (the convention used for scratch or
// template files); compound expressions that merely mention "ignore" are
// not matched. fiberc skips such files rather than generating code that
// would never compile into the module.
func ignoreBuildTag(file *ast.File) bool {
	for _, group := range commentGroupsOf(file) {
		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				continue
			}
			if _, ok := expr.(*constraint.TagExpr); ok && expr.(*constraint.TagExpr).Tag == "ignore" {
				return true
			}
		}
	}
	return false
}

func commentGroupsOf(file *ast.File) []*ast.CommentGroup {
	groups := make([]*ast.CommentGroup, 0, 1+len(file.Comments))
	groups = append(groups, file.Comments...)
	if file.Doc != nil {
		groups = append(groups, file.Doc)
	}
	return groups
}
