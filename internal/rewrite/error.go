package rewrite

import "errors"

// ErrExhausted is the single render failure of this package: the node does
// not fit in the remaining width. It carries no per-site detail; the caller
// only decides between retrying with a larger budget and giving up.
var ErrExhausted = errors.New("rewrite: width budget exhausted")

// sub reserves n columns from the remaining width, failing instead of
// going negative.
func sub(width, n int) (int, error) {
	if n > width {
		return 0, ErrExhausted
	}
	return width - n, nil
}
