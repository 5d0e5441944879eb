package normalize

import (
	"strconv"
	"strings"

	"housenumber-audit/core/ranges"
	"housenumber-audit/core/utils"
)

// Policy maps a street name to the ranges its house numbers must fall in.
// Streets missing from the map use ranges.Default.
type Policy map[string]ranges.Set

// For returns the range set that applies to street.
func (p Policy) For(street string) ranges.Set {
	if set, ok := p[street]; ok {
		return set
	}
	return ranges.Default()
}

// Normalize reduces a raw house-number field to the numbers it mentions.
//
// The field is split on '-' and every part is treated as a separate
// candidate: "3-5" yields "3" and "5", never "4". Each candidate keeps only
// its leading digits ("12/a" -> "12"); candidates without a leading digit
// are dropped, as are numbers rejected by the street's policy. The result
// may contain duplicates, see Unique.
//
// diag may be nil.
func Normalize(raw, street string, policy Policy, diag *Diagnostics) []string {
	return normalize(raw, street, policy, diag, true)
}

// Accepted is Normalize without any bookkeeping: neither diagnostics nor
// metrics see the call.
func Accepted(raw, street string, policy Policy) []string {
	return normalize(raw, street, policy, nil, false)
}

func normalize(raw, street string, policy Policy, diag *Diagnostics, record bool) []string {
	accept := policy.For(street)
	drop := func(reason string) {
		if record {
			diag.drop(reason)
		}
	}

	var ret []string
	for _, token := range strings.Split(raw, "-") {
		digits := leadingDigits(strings.TrimSpace(token))
		if digits == "" {
			drop(ReasonNoDigits)
			continue
		}

		// Atoi only fails on overflow here, which no range can hold.
		number, err := strconv.Atoi(digits)
		if err != nil {
			drop(ReasonOutOfRange)
			continue
		}

		if !accept.Contains(number) {
			drop(ReasonOutOfRange)
			continue
		}

		ret = append(ret, strconv.Itoa(number))
	}
	if record {
		diag.keep(len(ret))
	}

	return ret
}

// Unique removes duplicates and orders the numbers numerically.
func Unique(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	set := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		set = append(set, n)
	}
	return utils.SortNumerically(set)
}

func leadingDigits(token string) string {
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	return token[:end]
}
