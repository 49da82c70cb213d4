package ast

import "rsfmt/internal/source"

// BoundModifier distinguishes a plain trait bound from a relaxed one.
type BoundModifier uint8

const (
	// ModNone is an ordinary bound: T: Trait.
	ModNone BoundModifier = iota
	// ModMaybe is the relaxed form: T: ?Trait.
	ModMaybe
)

// TyParamBoundKind selects the active variant of TyParamBound.
type TyParamBoundKind uint8

const (
	// BoundTrait is a trait bound, possibly higher-ranked and possibly
	// relaxed.
	BoundTrait TyParamBoundKind = iota
	// BoundRegion is a pure lifetime bound.
	BoundRegion
)

// TyParamBound is one item in a "+"-joined bound list.
type TyParamBound struct {
	Kind     TyParamBoundKind
	Trait    *PolyTraitRef // BoundTrait only
	Modifier BoundModifier // BoundTrait only
	Lifetime Lifetime      // BoundRegion only
}

// PolyTraitRef is a trait reference with an optional for<'a, ...> binder.
type PolyTraitRef struct {
	BoundLifetimes []LifetimeDef
	Trait          *Path
	Span           source.Span
}

// LifetimeDef is a lifetime declaration with optional bounds,
// e.g. 'a: 'b + 'c.
type LifetimeDef struct {
	Lifetime Lifetime
	Bounds   []Lifetime
	Span     source.Span
}

// TyParam is a generic type parameter declaration: ident, optional bounds,
// optional default type.
type TyParam struct {
	Ident   string
	Bounds  []TyParamBound
	Default *Ty
	Span    source.Span
}
