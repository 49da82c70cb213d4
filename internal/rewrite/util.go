package rewrite

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// extraOffset is the number of columns the rendered text adds to its final
// output line: the full display width for single-line text, and for
// multi-line text the width of the last line less the columns that line
// already started at.
func extraOffset(text string, offset int) int {
	idx := strings.LastIndexByte(text, '\n')
	if idx < 0 {
		return runewidth.StringWidth(text)
	}
	d := runewidth.StringWidth(text[idx+1:]) - offset
	if d < 0 {
		return 0
	}
	return d
}
