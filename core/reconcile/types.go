package reconcile

import "housenumber-audit/core/normalize"

// Input holds everything Diff needs for one relation. Rows are split table
// lines without their header.
type Input struct {
	// StreetRows is the OSM street table: oid, name, highway, service.
	StreetRows [][]string

	// HouseNumberRows is the OSM house-number table: oid, street,
	// housenumber, postcode, housename, cons, ...
	HouseNumberRows [][]string

	// ReferenceLines are "<street> <housenumber>" entries derived from the
	// reference cache.
	ReferenceLines []string

	// Policy holds the per-street acceptance ranges.
	Policy normalize.Policy

	// RefStreets maps OSM street names to reference street names.
	RefStreets map[string]string
}

// StreetNumbers is a street together with some of its house numbers.
type StreetNumbers struct {
	// Street is the OSM name of the street.
	Street string `json:"street"`

	// HouseNumbers is ordered numerically.
	HouseNumbers []string `json:"house_numbers"`
}

// Summary provides aggregate counts of a report.
type Summary struct {
	// Streets is the number of distinct OSM streets compared.
	Streets int `json:"streets"`

	// SuspiciousStreets counts streets with missing house numbers.
	SuspiciousStreets int `json:"suspicious_streets"`

	// DoneStreets counts streets with at least one matched house number.
	DoneStreets int `json:"done_streets"`

	// MissingNumbers counts reference house numbers absent from OSM.
	MissingNumbers int `json:"missing_numbers"`

	// DoneNumbers counts reference house numbers present in OSM.
	DoneNumbers int `json:"done_numbers"`

	// Percent is the share of reference house numbers present in OSM.
	Percent float64 `json:"percent"`
}

// Report is the outcome of comparing OSM and reference house numbers.
type Report struct {
	// Suspicious lists streets with house numbers missing from OSM, the
	// street with the most missing numbers first.
	Suspicious []StreetNumbers `json:"suspicious"`

	// Done lists streets with house numbers present on both sides, in
	// street name order.
	Done []StreetNumbers `json:"done"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Diagnostics counts tokens dropped while normalizing both sides.
	Diagnostics normalize.Diagnostics `json:"diagnostics"`
}
