package common

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate cuts s to at most width display cells, appending an ellipsis
// when anything was cut. Widths are measured per grapheme cluster so
// double-width runes are not split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	target := width - 1
	var out strings.Builder
	used := 0
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() {
		w := graphemes.Width()
		if used+w > target {
			break
		}
		out.WriteString(graphemes.Str())
		used += w
	}
	return out.String() + "…"
}
