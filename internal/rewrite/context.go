package rewrite

import "rsfmt/internal/source"

// Context carries the read-only state shared by every render within one
// top-level call: the source buffer the node spans refer to.
type Context struct {
	Src *source.File
}
