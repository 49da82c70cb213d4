// Package pprint is the plain, width-unaware stringifier. It renders leaf
// nodes to their canonical single-line text and always succeeds; callers
// that need width-constrained layout live in internal/rewrite.
package pprint
