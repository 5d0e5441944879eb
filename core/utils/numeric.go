package utils

import (
	"sort"
	"strconv"
)

// SplitHouseNumber splits a token into its leading decimal number and the
// remainder that follows it.
//
// The number is 0 when the token has no leading digits or when the digit run
// does not fit into an int. The function never fails, so it is safe to use as
// a sort key for arbitrary input: "12/a" -> (12, "/a"), "b" -> (0, "b").
func SplitHouseNumber(token string) (int, string) {
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	number, err := strconv.Atoi(token[:end])
	if err != nil {
		number = 0
	}

	return number, token[end:]
}

// CompareHouseNumbers orders two tokens by their numeric part first and by
// the remainder second. It returns -1, 0 or +1.
func CompareHouseNumbers(a, b string) int {
	an, ar := SplitHouseNumber(a)
	bn, br := SplitHouseNumber(b)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	case ar < br:
		return -1
	case ar > br:
		return 1
	default:
		return 0
	}
}

// SortNumerically returns a sorted copy of tokens, ordered by their numeric
// value instead of alphabetically ("2" before "10").
func SortNumerically(tokens []string) []string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareHouseNumbers(sorted[i], sorted[j]) < 0
	})
	return sorted
}
