// ABOUTME: Truncate cuts a string to a column budget without splitting grapheme clusters
// ABOUTME: Wide clusters that would straddle the limit are dropped, never half-drawn

package width

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Truncate returns the longest prefix of s that fits in maxWidth
// columns. For printable ASCII this is s[:maxWidth].
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > maxWidth {
			return s[:maxWidth]
		}
		return s
	}

	s = norm.NFC.String(s)
	var b strings.Builder
	col := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := graphemeWidth(cluster)
		if col+cw > maxWidth {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	return b.String()
}
