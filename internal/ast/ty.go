package ast

import "rsfmt/internal/source"

// Ty is an opaque leaf type node. The rewriter does not descend into types;
// they are stringified as-is by the plain printer. Text is the canonical
// single-line rendition produced by the parser.
type Ty struct {
	Text string
	Span source.Span
}

// Lifetime is a lifetime reference, Name including the leading apostrophe.
type Lifetime struct {
	Name string
	Span source.Span
}

// TypeBinding is an associated-type binding inside a generic-argument list,
// e.g. Item = u8.
type TypeBinding struct {
	Ident string
	Ty    *Ty
	Span  source.Span
}
