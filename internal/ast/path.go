package ast

import "rsfmt/internal/source"

// Path is a possibly-qualified name reference: an ordered sequence of
// segments joined by "::", e.g. std::vec::Vec<T>.
type Path struct {
	// Global marks a path written with a leading "::".
	Global   bool
	Segments []PathSegment
	Span     source.Span
}

// QSelf is the <Type as Trait> qualification prefix of a path. Position is
// the number of leading path segments that belong to the trait
// qualification rather than to the rest of the path; the invariant
// 0 <= Position <= len(Segments) holds for well-formed trees.
type QSelf struct {
	Ty       *Ty
	Position int
}

// PathSegment is one "::"-delimited component of a path. Args is nil for a
// plain identifier segment.
type PathSegment struct {
	Ident string
	Args  *GenericArgs
}

// GenericArgsKind selects between the two generic-argument forms.
type GenericArgsKind uint8

const (
	// ArgsAngle is the angle-bracket form: <'a, T, Item = U>.
	ArgsAngle GenericArgsKind = iota
	// ArgsParen is the function-trait sugar form: (A, B) -> C.
	ArgsParen
)

// GenericArgs holds the arguments of one path segment. The two forms are
// mutually exclusive: Lifetimes/Types/Bindings belong to ArgsAngle,
// Inputs/Output to ArgsParen.
type GenericArgs struct {
	Kind GenericArgsKind

	Lifetimes []Lifetime
	Types     []*Ty
	Bindings  []TypeBinding

	Inputs []*Ty
	Output *Ty
}

// Empty reports whether an angle-bracket argument list has no items at all.
func (a *GenericArgs) Empty() bool {
	if a == nil {
		return true
	}
	if a.Kind == ArgsParen {
		return false
	}
	return len(a.Lifetimes) == 0 && len(a.Types) == 0 && len(a.Bindings) == 0
}
