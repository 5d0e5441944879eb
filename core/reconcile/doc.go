// Package reconcile compares the house numbers of the reference with the
// ones mapped in OSM, street by street.
//
// # Inputs
//
// Diff works on already loaded data: the split rows of the OSM street and
// house-number tables, the "<street> <number>" lines of the reference
// list, the acceptance policy of the relation and its refstreets table.
// Nothing is read from disk here; see feature/report for the file side.
//
// # Output
//
// For every street the reference numbers and the OSM numbers are
// normalized under the street's policy, deduplicated and sorted
// numerically. Numbers found only in the reference make a suspicious
// entry, numbers found on both sides a done entry. Suspicious streets are
// ordered by how many numbers they miss, longest first, ties kept in
// street name order.
//
// # Matching
//
// A reference line belongs to a street when it starts with the street name
// followed by a space. An OSM house-number row belongs to a street when its
// street column equals the name exactly.
//
// # Usage Example
//
//	rep := reconcile.Diff(reconcile.Input{
//	    StreetRows:      streets,
//	    HouseNumberRows: houseNumbers,
//	    ReferenceLines:  lines,
//	    Policy:          policy,
//	    RefStreets:      refStreets,
//	})
//	for _, s := range rep.Suspicious {
//	    fmt.Println(s.Street, s.HouseNumbers)
//	}
package reconcile
