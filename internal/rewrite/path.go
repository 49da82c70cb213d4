package rewrite

import (
	"rsfmt/internal/ast"
	"rsfmt/internal/pprint"
)

// RewritePath renders a possibly-qualified path within the given width,
// starting at the given column offset. Simple segments are never wrapped;
// line breaks only ever happen inside generic-argument lists.
func RewritePath(ctx *Context, qself *ast.QSelf, path *ast.Path, width, offset int) (string, error) {
	skip := 0
	if qself != nil {
		skip = qself.Position
	}
	if skip < 0 || skip > len(path.Segments) {
		return "", ErrExhausted
	}

	result := ""
	if path.Global {
		result = "::"
	}

	spanLo := path.Span.Start

	if qself != nil {
		result += "<" + pprint.TyString(qself.Ty) + " as "

		extra := extraOffset(result, offset)
		budget, err := sub(width, extra)
		if err != nil {
			return "", err
		}
		// 3 = len(">::")
		budget, err = sub(budget, 3)
		if err != nil {
			return "", err
		}

		result, err = rewriteSegments(ctx, result, path.Segments[:skip],
			&spanLo, path.Span.End, budget, offset+extra)
		if err != nil {
			return "", err
		}

		result += ">::"
		// +1 for the token following the qualifying type.
		spanLo = qself.Ty.Span.End + 1
	}

	extra := extraOffset(result, offset)
	budget, err := sub(width, extra)
	if err != nil {
		return "", err
	}
	return rewriteSegments(ctx, result, path.Segments[skip:],
		&spanLo, path.Span.End, budget, offset+extra)
}

// rewriteSegments appends the rendered segments to buffer, joined with "::".
// Each segment sees the width left over after the text already emitted on
// the current output line.
func rewriteSegments(ctx *Context, buffer string, segments []ast.PathSegment,
	spanLo *uint32, spanHi uint32, width, offset int) (string, error) {
	first := true
	for i := range segments {
		extra := extraOffset(buffer, offset)
		remaining, err := sub(width, extra)
		if err != nil {
			return "", err
		}
		segStr, err := rewriteSegment(ctx, &segments[i], spanLo, spanHi,
			remaining, offset+extra)
		if err != nil {
			return "", err
		}

		if first {
			first = false
		} else {
			buffer += "::"
		}
		buffer += segStr
	}
	return buffer, nil
}
