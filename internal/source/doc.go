// Package source manages original source buffers and byte-offset spans.
//
// It owns the file registry (FileSet), line/column resolution, and the
// raw-text lookups the rewriter needs: snippet extraction, forward token
// search, and the separator heuristic that recovers punctuation the parsed
// tree does not carry.
package source
