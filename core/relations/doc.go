// Package relations resolves per-relation and per-street configuration.
//
// A data directory holds relations.yaml, mapping relation names to their
// reference codes:
//
//	budafok:
//	  osmrelation: 42
//	  refmegye: "01"
//	  reftelepules: "011"
//
// and optional housenumber-filters-<relation>.yaml files with street
// overrides:
//
//	refstreets:
//	  "OSM Name utca": "Reference Name utca"
//	filters:
//	  "Kossuth Lajos utca":
//	    reftelepules: "012"
//	    ranges:
//	      - {start: 1, end: 29}
//	      - {start: 2, end: 12, reftelepules: "013"}
//
// # Resolution
//
// Resolver.StreetIdentity tells where a street is found in the reference
// (county code, settlement codes, name and type). Resolver.AcceptancePolicy
// builds the house-number range sets used by package normalize.
//
// Range bounds may be written as numbers or quoted strings. Keys the
// structs do not know are logged as warnings and skipped, so older
// binaries keep reading newer files. All failures wrap ErrConfig.
package relations
