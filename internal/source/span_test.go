package source

import "testing"

func TestSpanBasics(t *testing.T) {
	sp := MkSpan(1, 4, 9)
	if sp.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if sp.Len() != 5 {
		t.Errorf("Len = %d, want 5", sp.Len())
	}
	if got := sp.String(); got != "1:4-9" {
		t.Errorf("String = %q, want %q", got, "1:4-9")
	}
	if !MkSpan(1, 7, 7).Empty() {
		t.Error("empty span not reported Empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := MkSpan(1, 4, 9)
	b := MkSpan(1, 2, 6)
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v, want 1:2-9", got)
	}

	// Different file: untouched.
	c := MkSpan(2, 0, 100)
	got = a.Cover(c)
	if got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}
