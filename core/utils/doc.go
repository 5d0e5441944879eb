// Package utils provides small helpers shared by the matching engine.
//
// The central helper is SplitHouseNumber, the numeric-aware sort key used
// wherever house numbers, conscription numbers or object ids are ordered.
// "9" sorts before "10", and "3/a" sorts right after "3".
package utils
