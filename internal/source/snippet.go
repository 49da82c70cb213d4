package source

import (
	"fmt"
	"unicode"

	"fortio.org/safecast"
)

// Snippet returns the raw source text for the byte range [lo, hi).
// Out-of-range offsets are clamped to the buffer.
func (f *File) Snippet(lo, hi uint32) string {
	if f == nil || lo >= hi {
		return ""
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if lo >= lenContent {
		return ""
	}
	if hi > lenContent {
		hi = lenContent
	}
	return string(f.Content[lo:hi])
}

// SnippetSpan returns the raw source text covered by the span.
func (f *File) SnippetSpan(sp Span) string {
	return f.Snippet(sp.Start, sp.End)
}

// OffsetPast scans [lo, hi) for the first occurrence of tok and returns the
// offset one past it. The second result is false when tok does not occur in
// the range.
func (f *File) OffsetPast(tok byte, lo, hi uint32) (uint32, bool) {
	if f == nil || lo >= hi {
		return 0, false
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if hi > lenContent {
		hi = lenContent
	}
	for i := lo; i < hi; i++ {
		if f.Content[i] == tok {
			return i + 1, true
		}
	}
	return 0, false
}

// ListSeparator recovers the separator that preceded a generic-argument list
// opener. The snippet is expected to run from the start of the path segment
// up to and including the opening '<'. Scanning backward, whitespace and '<'
// are skipped; a ':' means the list was written with a leading turbofish
// ("::<"), anything else means the list followed the identifier directly.
//
// The parsed tree does not distinguish item-position generics (Foo<A, B>)
// from expression-position generics (Foo::<A, B>()), so the distinction has
// to come from the source text. Known limitation: a comment inside the
// scanned range containing '<' or ':' misleads the scan.
func ListSeparator(snippet string) string {
	runes := []rune(snippet)
	for i := len(runes) - 1; i >= 0; i-- {
		c := runes[i]
		switch {
		case c == ':':
			return "::"
		case unicode.IsSpace(c) || c == '<':
			continue
		default:
			return ""
		}
	}
	return ""
}
