// Package ast defines read-only views over an already-parsed syntax tree:
// paths with generic arguments, where-clause predicates, trait bounds,
// lifetime declarations, and type parameters.
//
// Every node carries the byte-offset span of the text it was parsed from;
// the rewriter uses the spans to consult the original source buffer. Nodes
// are immutable for the duration of a rendering call and never outlive it.
package ast
