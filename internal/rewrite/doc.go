// Package rewrite renders parsed syntax within a width budget.
//
// Every renderer takes the remaining width and the current column offset,
// and either returns text whose lines fit the budget supplied at that
// nesting level, or fails with ErrExhausted. Nothing is truncated and no
// partial text is returned: the caller reacts to a failure by retrying
// with a different budget or falling back to a plain rendition.
//
// Renders are pure reads over the syntax tree and the original source
// buffer; the only mutable state is a span cursor scoped to one top-level
// call, threaded through segment renders by explicit pointer.
package rewrite
