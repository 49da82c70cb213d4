package source

import "testing"

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rs", []byte("fn main() {\n}\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("AddVirtual did not set FileVirtual")
	}
	if f.ID != id {
		t.Errorf("file ID mismatch: %d vs %d", f.ID, id)
	}

	start, end := fs.Resolve(MkSpan(id, 12, 13))
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("Resolve start = %v, want line 2 col 1", start)
	}
	if end.Line != 2 || end.Col != 2 {
		t.Errorf("Resolve end = %v, want line 2 col 2", end)
	}
}

func TestFileSetGetLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.rs", []byte("one"))
	second := fs.AddVirtual("a.rs", []byte("two"))

	if first == second {
		t.Fatal("duplicate path must still mint a fresh FileID")
	}
	latest, ok := fs.GetLatest("a.rs")
	if !ok || latest != second {
		t.Errorf("GetLatest = (%d, %v), want (%d, true)", latest, ok, second)
	}
	if _, ok := fs.GetLatest("missing.rs"); ok {
		t.Error("GetLatest found a path that was never added")
	}
}
