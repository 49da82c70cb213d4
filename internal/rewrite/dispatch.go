package rewrite

import (
	"fmt"

	"rsfmt/internal/ast"
)

// RewriteNode renders any of the renderable node kinds. Unqualified paths
// go through here; a path with a qualified-self prefix needs RewritePath
// directly.
func RewriteNode(ctx *Context, node any, width, offset int) (string, error) {
	switch n := node.(type) {
	case *ast.Path:
		return RewritePath(ctx, nil, n, width, offset)
	case *ast.WherePredicate:
		return RewriteWherePredicate(ctx, n, width, offset)
	case *ast.LifetimeDef:
		return RewriteLifetimeDef(ctx, n, width, offset)
	case *ast.TyParam:
		return RewriteTyParam(ctx, n, width, offset)
	case *ast.PolyTraitRef:
		return RewritePolyTraitRef(ctx, n, width, offset)
	case *ast.TyParamBound:
		return RewriteTyParamBound(ctx, n, width, offset)
	}
	return "", fmt.Errorf("rewrite: unsupported node %T", node)
}
