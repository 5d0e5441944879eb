// Package ranges models the house-number acceptance policy of a street.
//
// A Range is an odd-only or even-only closed interval; its parity comes from
// its start. A Set accepts a number when any of its members does. Streets
// without a configured filter use Default, which bounds house numbers to
// 1..999.
package ranges
