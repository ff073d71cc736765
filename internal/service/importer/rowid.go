package importer

import (
	"strconv"
	"strings"
)

// CompareRowID orders two source row identifiers for watermark checks.
// Numeric ids compare as integers; otherwise both sides are left-padded with
// zeros to equal width before a string compare, so "99" never sorts after
// "100". Raw string order is deliberately not trusted.
func CompareRowID(a, b string) int {
	ai, aErr := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	bi, bErr := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}

	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if len(a) < len(b) {
		a = strings.Repeat("0", len(b)-len(a)) + a
	} else if len(b) < len(a) {
		b = strings.Repeat("0", len(a)-len(b)) + b
	}
	return strings.Compare(a, b)
}
