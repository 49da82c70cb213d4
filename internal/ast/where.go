package ast

import "rsfmt/internal/source"

// WherePredicateKind selects the active variant of WherePredicate.
type WherePredicateKind uint8

const (
	// PredBound constrains a type: for<'a> T: Trait + 'a.
	PredBound WherePredicateKind = iota
	// PredRegion constrains a lifetime: 'a: 'b + 'c.
	PredRegion
	// PredEq equates an associated path with a type: T::Out = u8.
	PredEq
)

// WherePredicate is one clause of a where list. Exactly one of the variant
// pointers is set, matching Kind.
type WherePredicate struct {
	Kind   WherePredicateKind
	Bound  *WhereBoundPredicate
	Region *WhereRegionPredicate
	Eq     *WhereEqPredicate
}

// WhereBoundPredicate is the type-bound shape of a where clause.
type WhereBoundPredicate struct {
	BoundLifetimes []LifetimeDef
	BoundedTy      *Ty
	Bounds         []TyParamBound
	Span           source.Span
}

// WhereRegionPredicate is the lifetime-bound shape of a where clause.
type WhereRegionPredicate struct {
	Lifetime Lifetime
	Bounds   []Lifetime
	Span     source.Span
}

// WhereEqPredicate is the equality shape of a where clause.
type WhereEqPredicate struct {
	Path *Path
	Ty   *Ty
	Span source.Span
}
