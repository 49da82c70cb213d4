package rewrite

import (
	"errors"
	"testing"

	"rsfmt/internal/ast"
	"rsfmt/internal/source"
)

func TestRewriteAllKeepsOrder(t *testing.T) {
	ctx := newCtx(t, "std::vec")

	vec := simplePath("std", "vec")
	vec.Span = source.MkSpan(0, 0, 8)
	region := &ast.WherePredicate{
		Kind: ast.PredRegion,
		Region: &ast.WhereRegionPredicate{
			Lifetime: lifetime("'a"),
			Bounds:   []ast.Lifetime{lifetime("'b")},
		},
	}
	def := &ast.LifetimeDef{Lifetime: lifetime("'x")}

	got, err := RewriteAll(ctx, []any{vec, region, def}, 80, 0, 2)
	if err != nil {
		t.Fatalf("RewriteAll failed: %v", err)
	}
	want := []string{"std::vec", "'a: 'b", "'x"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRewriteAllPropagatesFailure(t *testing.T) {
	ctx := newCtx(t, "verylongident")
	long := simplePath("verylongident")
	long.Span = source.MkSpan(0, 0, 13)
	short := &ast.LifetimeDef{Lifetime: lifetime("'a")}

	if _, err := RewriteAll(ctx, []any{short, long}, 5, 0, 0); !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
}

func TestRewriteAllEmpty(t *testing.T) {
	ctx := newCtx(t, "")
	got, err := RewriteAll(ctx, nil, 80, 0, 4)
	if err != nil || got != nil {
		t.Fatalf("RewriteAll(nil) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestRewriteNodeRejectsUnknownKind(t *testing.T) {
	ctx := newCtx(t, "")
	if _, err := RewriteNode(ctx, 42, 80, 0); err == nil {
		t.Fatal("unsupported node kind must fail")
	}
}
