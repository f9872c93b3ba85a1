// Package version compares dotted-numeric version strings such as
// "14.0.11". Segments are compared as integers, a missing segment
// counts as zero, non-numeric segments count as zero.
package version

import (
	"strconv"
	"strings"
)

// Compare returns -1, 0 or 1 when a is lower than, equal to or higher
// than b.
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av := segment(as, i)
		bv := segment(bs, i)
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}

	return 0
}

func segment(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return v
}
