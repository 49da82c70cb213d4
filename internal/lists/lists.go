package lists

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"rsfmt/internal/source"
)

// Tactic selects the layout strategy for a list.
type Tactic uint8

const (
	// Horizontal keeps all items on one line regardless of width.
	Horizontal Tactic = iota
	// Vertical puts each item on its own line.
	Vertical
	// HorizontalVertical tries one line first and falls back to one item
	// per line when the horizontal budget is exceeded.
	HorizontalVertical
)

// SeparatorTactic controls the separator after the last item.
type SeparatorTactic uint8

const (
	// SepNever writes no trailing separator.
	SepNever SeparatorTactic = iota
	// SepAlways writes a trailing separator in both layouts.
	SepAlways
	// SepVertical writes a trailing separator only in vertical layout.
	SepVertical
)

// Item is one pre-rendered list element together with the source span it
// came from.
type Item struct {
	Text string
	Span source.Span
}

// Formatting bundles the layout parameters for one Write call.
type Formatting struct {
	Tactic            Tactic
	Separator         string
	TrailingSeparator SeparatorTactic
	// Indent is the column items align to in vertical layout.
	Indent int
	// HWidth is the budget for the single-line layout, VWidth the per-line
	// budget after falling back.
	HWidth int
	VWidth int
	// EndsWithNewline appends a final newline in vertical layout.
	EndsWithNewline bool
}

// Write joins the items according to the formatting. The result of a
// vertical layout starts at the current column: the first item carries no
// indent, every following line is indented to f.Indent.
func Write(items []Item, f *Formatting) string {
	if len(items) == 0 {
		return ""
	}

	tactic := f.Tactic
	if tactic == HorizontalVertical {
		if totalWidth(items, f) <= f.HWidth {
			tactic = Horizontal
		} else {
			tactic = Vertical
		}
	}

	var out strings.Builder
	switch tactic {
	case Horizontal:
		for i, item := range items {
			if i > 0 {
				out.WriteString(f.Separator)
				out.WriteString(" ")
			}
			out.WriteString(item.Text)
		}
		if f.TrailingSeparator == SepAlways {
			out.WriteString(f.Separator)
		}
	case Vertical:
		indent := "\n" + strings.Repeat(" ", f.Indent)
		for i, item := range items {
			if i > 0 {
				out.WriteString(indent)
			}
			out.WriteString(item.Text)
			if i < len(items)-1 || f.TrailingSeparator != SepNever {
				out.WriteString(f.Separator)
			}
		}
		if f.EndsWithNewline {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// totalWidth is the display width of the horizontal layout: the items plus
// a separator and a space between each pair, plus a trailing separator when
// the policy always writes one.
func totalWidth(items []Item, f *Formatting) int {
	sepWidth := runewidth.StringWidth(f.Separator) + 1
	total := 0
	for i, item := range items {
		if i > 0 {
			total += sepWidth
		}
		total += runewidth.StringWidth(item.Text)
	}
	if f.TrailingSeparator == SepAlways {
		total += sepWidth - 1
	}
	return total
}
