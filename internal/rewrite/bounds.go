package rewrite

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"rsfmt/internal/ast"
	"rsfmt/internal/pprint"
)

// RewriteWherePredicate renders one where-clause predicate.
func RewriteWherePredicate(ctx *Context, pred *ast.WherePredicate, width, offset int) (string, error) {
	switch pred.Kind {
	case ast.PredBound:
		if pred.Bound == nil {
			return "", ErrExhausted
		}
		return rewriteBoundPredicate(ctx, pred.Bound, width, offset)

	case ast.PredRegion:
		if pred.Region == nil {
			return "", ErrExhausted
		}
		// Lifetime bounds are plain text: a lifetime list never wraps.
		r := pred.Region
		return pprint.LifetimeString(r.Lifetime) + ": " +
			pprint.LifetimeList(r.Bounds, " + "), nil

	case ast.PredEq:
		if pred.Eq == nil {
			return "", ErrExhausted
		}
		eq := pred.Eq
		tyStr := pprint.TyString(eq.Ty)
		// 3 = len(" = ")
		used := 3 + runewidth.StringWidth(tyStr)
		budget, err := sub(width, used)
		if err != nil {
			return "", err
		}
		pathStr, err := RewritePath(ctx, nil, eq.Path, budget, offset+used)
		if err != nil {
			return "", err
		}
		return pathStr + " = " + tyStr, nil
	}
	return "", ErrExhausted
}

func rewriteBoundPredicate(ctx *Context, bp *ast.WhereBoundPredicate, width, offset int) (string, error) {
	typeStr := pprint.TyString(bp.BoundedTy)

	if len(bp.BoundLifetimes) > 0 {
		lifetimeStr, err := rewriteLifetimeDefs(ctx, bp.BoundLifetimes, width, offset)
		if err != nil {
			return "", err
		}

		// 8 = len("for<> : ")
		used := runewidth.StringWidth(lifetimeStr) + runewidth.StringWidth(typeStr) + 8
		boundsStr, err := rewriteBounds(ctx, bp.Bounds, width, used, offset)
		if err != nil {
			return "", err
		}
		return "for<" + lifetimeStr + "> " + typeStr + ": " + boundsStr, nil
	}

	// 2 = len(": ")
	used := runewidth.StringWidth(typeStr) + 2
	boundsStr, err := rewriteBounds(ctx, bp.Bounds, width, used, offset)
	if err != nil {
		return "", err
	}
	return typeStr + ": " + boundsStr, nil
}

// rewriteLifetimeDefs renders higher-ranked binder lifetimes joined by ", ".
func rewriteLifetimeDefs(ctx *Context, defs []ast.LifetimeDef, width, offset int) (string, error) {
	parts := make([]string, 0, len(defs))
	for i := range defs {
		s, err := RewriteLifetimeDef(ctx, &defs[i], width, offset)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

// rewriteBounds renders a "+"-joined bound list in the width left after the
// enclosing prefix of used columns.
func rewriteBounds(ctx *Context, bounds []ast.TyParamBound, width, used, offset int) (string, error) {
	budget, err := sub(width, used)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(bounds))
	for i := range bounds {
		s, err := RewriteTyParamBound(ctx, &bounds[i], budget, offset+used)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " + "), nil
}

// RewriteLifetimeDef renders a lifetime declaration with its bounds. A
// lifetime name plus bounds always fits on one line; the budget parameters
// exist for interface symmetry and go unused.
func RewriteLifetimeDef(_ *Context, def *ast.LifetimeDef, _, _ int) (string, error) {
	if len(def.Bounds) == 0 {
		return pprint.LifetimeString(def.Lifetime), nil
	}
	return pprint.LifetimeString(def.Lifetime) + ": " +
		pprint.LifetimeList(def.Bounds, " + "), nil
}

// RewriteTyParamBound renders one item of a bound list. The relaxed form
// costs exactly one column for the '?' before the trait reference.
func RewriteTyParamBound(ctx *Context, bound *ast.TyParamBound, width, offset int) (string, error) {
	switch bound.Kind {
	case ast.BoundTrait:
		if bound.Modifier == ast.ModMaybe {
			budget, err := sub(width, 1)
			if err != nil {
				return "", err
			}
			s, err := RewritePolyTraitRef(ctx, bound.Trait, budget, offset+1)
			if err != nil {
				return "", err
			}
			return "?" + s, nil
		}
		return RewritePolyTraitRef(ctx, bound.Trait, width, offset)

	case ast.BoundRegion:
		return pprint.LifetimeString(bound.Lifetime), nil
	}
	return "", ErrExhausted
}

// RewritePolyTraitRef renders a trait reference with its optional
// higher-ranked binder prefix.
func RewritePolyTraitRef(ctx *Context, tref *ast.PolyTraitRef, width, offset int) (string, error) {
	if len(tref.BoundLifetimes) > 0 {
		lifetimeStr, err := rewriteLifetimeDefs(ctx, tref.BoundLifetimes, width, offset)
		if err != nil {
			return "", err
		}

		// 6 = len("for<> ")
		extra := runewidth.StringWidth(lifetimeStr) + 6
		maxPathWidth, err := sub(width, extra)
		if err != nil {
			return "", err
		}
		pathStr, err := RewritePath(ctx, nil, tref.Trait, maxPathWidth, offset+extra)
		if err != nil {
			return "", err
		}
		return "for<" + lifetimeStr + "> " + pathStr, nil
	}
	return RewritePath(ctx, nil, tref.Trait, width, offset)
}

// RewriteTyParam renders a type-parameter declaration: identifier, optional
// bound list, optional default. Note: the bounds see the full width and
// offset, not the remainder after the "ident: " prefix.
func RewriteTyParam(ctx *Context, tp *ast.TyParam, width, offset int) (string, error) {
	var result strings.Builder
	result.WriteString(tp.Ident)

	if len(tp.Bounds) > 0 {
		result.WriteString(": ")
		parts := make([]string, 0, len(tp.Bounds))
		for i := range tp.Bounds {
			s, err := RewriteTyParamBound(ctx, &tp.Bounds[i], width, offset)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		result.WriteString(strings.Join(parts, " + "))
	}

	if tp.Default != nil {
		result.WriteString(" = ")
		result.WriteString(pprint.TyString(tp.Default))
	}
	return result.String(), nil
}
