package lcfrs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Ranges ----------------------------------------------------------------

// Range is a small type for capturing a contiguous run of terminal positions.
// A range denotes a start position and the position just behind the end.
type Range [2]uint64 // (x…y)

// From returns the start value of a range.
func (r Range) From() uint64 {
	return r[0]
}

// To returns the end value of a range.
func (r Range) To() uint64 {
	return r[1]
}

// Len returns the length of (x…y)
func (r Range) Len() uint64 {
	return r[1] - r[0]
}

func (r Range) IsNull() bool {
	return r == Range{}
}

// Extend returns the smallest range covering r and other.
func (r Range) Extend(other Range) Range {
	if other[0] < r[0] {
		r[0] = other[0]
	}
	if other[1] > r[1] {
		r[1] = other[1]
	}
	return r
}

// Positions enumerates the positions of a range in ascending order.
func (r Range) Positions() []uint64 {
	p := make([]uint64, 0, r.Len())
	for i := r[0]; i < r[1]; i++ {
		p = append(p, i)
	}
	return p
}

func (r Range) String() string {
	return fmt.Sprintf("(%d…%d)", r[0], r[1])
}

// --- Spans -----------------------------------------------------------------

// Span is the sorted set of terminal positions a tree node dominates.
// Spans of discontinuous constituents contain gaps. Spans are treated as
// values: operations never modify their receiver.
type Span []uint64

// SpanOf creates a span from a list of positions, in any order.
// Duplicate positions are collapsed.
func SpanOf(positions ...uint64) Span {
	if len(positions) == 0 {
		return nil
	}
	set := treeset.NewWith(utils.UInt64Comparator)
	for _, p := range positions {
		set.Add(p)
	}
	return spanFromSet(set)
}

func spanFromSet(set *treeset.Set) Span {
	s := make(Span, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		s = append(s, it.Value().(uint64))
	}
	return s
}

// IsEmpty is true for a span without positions. Spans of tree nodes stay
// empty until they have been computed.
func (s Span) IsEmpty() bool {
	return len(s) == 0
}

// Min returns the leftmost position of a span. The flag is false for empty spans.
func (s Span) Min() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Union returns the sorted union of s and others.
func (s Span) Union(others ...Span) Span {
	set := treeset.NewWith(utils.UInt64Comparator)
	for _, p := range s {
		set.Add(p)
	}
	for _, o := range others {
		for _, p := range o {
			set.Add(p)
		}
	}
	if set.Empty() {
		return nil
	}
	return spanFromSet(set)
}

// Components partitions a span into its maximal contiguous runs, in left to
// right order. A new component starts wherever a position is not exactly one
// greater than its predecessor. The span has to be sorted, which holds for
// every span created by this package.
func (s Span) Components() []Range {
	if len(s) == 0 {
		return nil
	}
	comps := make([]Range, 0, 2)
	r := Range{s[0], s[0] + 1}
	for _, p := range s[1:] {
		if p != r[1] { // gap
			comps = append(comps, r)
			r = Range{p, p + 1}
			continue
		}
		r[1]++
	}
	return append(comps, r)
}

// FanOut is the number of contiguous components of a span.
// A fan-out of 1 means the span has no gaps.
func (s Span) FanOut() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1]+1 {
			n++
		}
	}
	return n
}

// Equals is true if both spans contain the same positions.
func (s Span) Equals(other Span) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Span) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(p, 10))
	}
	b.WriteByte('}')
	return b.String()
}
