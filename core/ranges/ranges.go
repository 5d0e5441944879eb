package ranges

import (
	"fmt"
	"strings"
)

// Range is a closed interval of house numbers that share the parity of
// Start. Range{1, 9} holds 1, 3, 5, 7 and 9; Range{2, 8} holds the even
// numbers between them.
type Range struct {
	Start int
	End   int
}

// New creates a Range. Parity is derived from start.
func New(start, end int) Range {
	return Range{Start: start, End: end}
}

// IsOdd reports whether the range accepts odd numbers.
func (r Range) IsOdd() bool {
	return r.Start%2 != 0
}

// Contains reports whether n has the parity of the range and lies within
// its bounds.
func (r Range) Contains(n int) bool {
	if r.IsOdd() != (n%2 != 0) {
		return false
	}
	return r.Start <= n && n <= r.End
}

// Equal compares the bounds of two ranges.
func (r Range) Equal(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

func (r Range) String() string {
	return fmt.Sprintf("Range(start=%d, end=%d, odd=%t)", r.Start, r.End, r.IsOdd())
}

// Set is an ordered union of ranges.
type Set []Range

// Default returns the sanity bound used for streets without an explicit
// filter. It rejects numbers above 999.
func Default() Set {
	return Set{New(1, 999), New(2, 998)}
}

// Contains reports whether any member range contains n.
func (s Set) Contains(n int) bool {
	for _, r := range s {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// Equal compares two sets member by member. Order matters.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, r.String())
	}
	return "Set[" + strings.Join(parts, ", ") + "]"
}
