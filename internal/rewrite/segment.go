package rewrite

import (
	"github.com/mattn/go-runewidth"

	"rsfmt/internal/ast"
	"rsfmt/internal/lists"
	"rsfmt/internal/pprint"
	"rsfmt/internal/source"
)

// segmentParam is one pre-rendered item of an angle-bracket argument list.
type segmentParam struct {
	text string
	span source.Span
}

// angleParams flattens an angle-bracket argument list into canonical order:
// lifetimes, then types, then associated-type bindings.
func angleParams(args *ast.GenericArgs) []segmentParam {
	params := make([]segmentParam, 0, len(args.Lifetimes)+len(args.Types)+len(args.Bindings))
	for _, lt := range args.Lifetimes {
		params = append(params, segmentParam{text: pprint.LifetimeString(lt), span: lt.Span})
	}
	for _, ty := range args.Types {
		params = append(params, segmentParam{text: pprint.TyString(ty), span: ty.Span})
	}
	for _, b := range args.Bindings {
		params = append(params, segmentParam{text: pprint.BindingString(b), span: b.Span})
	}
	return params
}

// rewriteSegment renders one path segment: the identifier plus its
// generic-argument list, if any.
//
// The cursor *spanLo is assumed to be past the end of any previous
// segment's arguments and at or before the start of this segment; spanHi is
// the end of the whole path. When the segment carries arguments the cursor
// is advanced past the last item so the invariant holds for the next
// segment. The argument list's own span is not part of the tree, which is
// why the opening bracket has to be located in the source text.
func rewriteSegment(ctx *Context, seg *ast.PathSegment, spanLo *uint32, spanHi uint32,
	width, offset int) (string, error) {
	identWidth := runewidth.StringWidth(seg.Ident)
	width, err := sub(width, identWidth)
	if err != nil {
		return "", err
	}
	offset += identWidth

	params := ""
	switch {
	case seg.Args != nil && seg.Args.Kind == ast.ArgsAngle && !seg.Args.Empty():
		paramList := angleParams(seg.Args)
		nextSpanLo := paramList[len(paramList)-1].span.End + 1

		// The tree does not record whether the list was written with a
		// turbofish; recover the separator from the source text before
		// the opening '<'.
		separator := ""
		if listLo, ok := ctx.Src.OffsetPast('<', *spanLo, spanHi); ok {
			separator = source.ListSeparator(ctx.Src.Snippet(*spanLo, listLo))
		}

		items := make([]lists.Item, 0, len(paramList))
		for _, p := range paramList {
			items = append(items, lists.Item{Text: p.text, Span: p.span})
		}

		// 1 for '<'
		extra := 1 + runewidth.StringWidth(separator)
		// 1 for '>'
		listWidth, err := sub(width, extra+1)
		if err != nil {
			return "", err
		}

		f := &lists.Formatting{
			Tactic:            lists.HorizontalVertical,
			Separator:         ",",
			TrailingSeparator: lists.SepNever,
			Indent:            offset + extra,
			HWidth:            listWidth,
			VWidth:            listWidth,
		}

		*spanLo = nextSpanLo
		params = separator + "<" + lists.Write(items, f) + ">"

	case seg.Args != nil && seg.Args.Kind == ast.ArgsParen:
		output := ""
		if seg.Args.Output != nil {
			output = " -> " + pprint.TyString(seg.Args.Output)
		}

		// 2 for the parentheses
		budget, err := sub(width, runewidth.StringWidth(output)+2)
		if err != nil {
			return "", err
		}

		items := make([]lists.Item, 0, len(seg.Args.Inputs))
		for _, ty := range seg.Args.Inputs {
			items = append(items, lists.Item{Text: pprint.TyString(ty), Span: ty.Span})
		}

		f := &lists.Formatting{
			Tactic:            lists.HorizontalVertical,
			Separator:         ",",
			TrailingSeparator: lists.SepNever,
			// 1 for '('
			Indent: offset + 1,
			HWidth: budget,
			VWidth: budget,
		}

		if n := len(seg.Args.Inputs); n > 0 {
			*spanLo = seg.Args.Inputs[n-1].Span.End + 1
		}
		params = "(" + lists.Write(items, f) + ")" + output
	}

	return seg.Ident + params, nil
}
