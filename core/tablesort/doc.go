// Package tablesort orders the TSV tables shown to curators.
//
// Sorting is always done on a precomputed composite key and is stable:
//
//   - street rows (oid, name, highway, service): unnamed streets last, then
//     by name, highway and service, then by numeric object id;
//   - house-number rows (oid, street, housenumber, postcode, housename,
//     cons, ...): grouped by postcode, rows without any identifier first,
//     rows without a house number next, then by street and the numeric
//     value of the house number;
//   - plain tokens: by numeric value.
//
// The *TSV helpers keep the header line in place and sort the rest.
package tablesort
