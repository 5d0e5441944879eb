// Package normalize turns raw house-number fields into comparable numbers.
//
// Both sides of the comparison (map data and reference data) go through
// Normalize with the same street policy, so "12/a", "12b" and "12" all
// compare equal, and a field like "3-5" contributes the two literal
// numbers 3 and 5. The dash is an alternative separator here, not an
// arithmetic range; output would change if it were expanded.
//
// # Diagnostics
//
// Tokens without a leading digit and numbers outside the street policy are
// dropped silently. Pass a *Diagnostics to count them per call; the
// process-wide totals are also exported as the prometheus counter
// housenumber_normalize_dropped_total{reason}.
package normalize
