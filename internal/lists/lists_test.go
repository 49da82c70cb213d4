package lists

import "testing"

func textItems(texts ...string) []Item {
	items := make([]Item, 0, len(texts))
	for _, s := range texts {
		items = append(items, Item{Text: s})
	}
	return items
}

func TestWriteHorizontalFits(t *testing.T) {
	items := textItems("A", "B", "C")
	f := &Formatting{
		Tactic:            HorizontalVertical,
		Separator:         ",",
		TrailingSeparator: SepNever,
		Indent:            4,
		HWidth:            7, // "A, B, C" is exactly 7 columns
		VWidth:            7,
	}
	if got := Write(items, f); got != "A, B, C" {
		t.Errorf("Write = %q, want %q", got, "A, B, C")
	}
}

func TestWriteFallsBackVertical(t *testing.T) {
	items := textItems("A", "B", "C")
	f := &Formatting{
		Tactic:            HorizontalVertical,
		Separator:         ",",
		TrailingSeparator: SepNever,
		Indent:            4,
		HWidth:            6, // one under the horizontal width
		VWidth:            6,
	}
	want := "A,\n    B,\n    C"
	if got := Write(items, f); got != want {
		t.Errorf("Write = %q, want %q", got, want)
	}
}

func TestWriteForcedTactics(t *testing.T) {
	items := textItems("A", "B")
	horizontal := &Formatting{Tactic: Horizontal, Separator: ",", HWidth: 0, VWidth: 0}
	if got := Write(items, horizontal); got != "A, B" {
		t.Errorf("forced horizontal = %q, want %q", got, "A, B")
	}

	vertical := &Formatting{Tactic: Vertical, Separator: ",", Indent: 2, HWidth: 80, VWidth: 80}
	if got := Write(items, vertical); got != "A,\n  B" {
		t.Errorf("forced vertical = %q, want %q", got, "A,\n  B")
	}
}

func TestWriteTrailingSeparator(t *testing.T) {
	items := textItems("A", "B")

	always := &Formatting{Tactic: Horizontal, Separator: ",", TrailingSeparator: SepAlways}
	if got := Write(items, always); got != "A, B," {
		t.Errorf("SepAlways horizontal = %q, want %q", got, "A, B,")
	}

	verticalOnly := &Formatting{
		Tactic:            Vertical,
		Separator:         ",",
		TrailingSeparator: SepVertical,
		Indent:            0,
	}
	if got := Write(items, verticalOnly); got != "A,\nB," {
		t.Errorf("SepVertical vertical = %q, want %q", got, "A,\nB,")
	}
}

func TestWriteSingleAndEmpty(t *testing.T) {
	if got := Write(nil, &Formatting{Tactic: HorizontalVertical, Separator: ","}); got != "" {
		t.Errorf("empty list = %q, want empty", got)
	}

	one := textItems("Only")
	f := &Formatting{Tactic: HorizontalVertical, Separator: ",", HWidth: 4, VWidth: 4}
	if got := Write(one, f); got != "Only" {
		t.Errorf("single item = %q, want %q", got, "Only")
	}
}

func TestWriteWideRunesCountColumns(t *testing.T) {
	// "世" is two columns wide; byte length would fit, display width must not.
	items := textItems("世", "界")
	f := &Formatting{
		Tactic:            HorizontalVertical,
		Separator:         ",",
		TrailingSeparator: SepNever,
		Indent:            1,
		HWidth:            5, // "世, 界" is 6 columns
		VWidth:            5,
	}
	want := "世,\n 界"
	if got := Write(items, f); got != want {
		t.Errorf("Write = %q, want %q", got, want)
	}
}
