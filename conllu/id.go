package conllu

import (
	"cmp"
	"strconv"
	"strings"
)

// ID is a structural token id: a plain index ("4"), a hyphenated range for
// multiword tokens ("4-5"), or a decimal-refined id for empty nodes ("4.1").
type ID string

// VirtualRoot is the sentinel head id the single sentence root points to.
const VirtualRoot ID = "0"

// IsRange reports whether the id spans a multiword token.
func (id ID) IsRange() bool { return strings.Contains(string(id), "-") }

// IsDecimal reports whether the id refines an index for an empty node.
func (id ID) IsDecimal() bool { return strings.Contains(string(id), ".") }

// Compare orders two ids by (range start, range end), a plain id counting as
// (n, n). Each bound compares as its (whole, fractional) integer pair, the
// fractional part defaulting to 0 when absent. Ids that do not parse as
// numbers compare as zero-valued parts.
func Compare(a, b ID) int {
	aStart, aEnd := a.bounds()
	bStart, bEnd := b.bounds()
	if c := compareBound(aStart, bStart); c != 0 {
		return c
	}
	return compareBound(aEnd, bEnd)
}

type bound struct {
	whole, frac int
}

func (id ID) bounds() (start, end bound) {
	s := string(id)
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	return parseBound(lo), parseBound(hi)
}

func parseBound(s string) bound {
	lo, hi, found := strings.Cut(s, ".")
	b := bound{}
	b.whole, _ = strconv.Atoi(lo)
	if found {
		b.frac, _ = strconv.Atoi(hi)
	}
	return b
}

func compareBound(a, b bound) int {
	if c := cmp.Compare(a.whole, b.whole); c != 0 {
		return c
	}
	return cmp.Compare(a.frac, b.frac)
}
