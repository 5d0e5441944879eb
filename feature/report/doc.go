// Package report turns the OSM tables and the reference of a relation into
// a missing house-number report.
//
// # Flow
//
//  1. WriteReferenceList looks up every OSM street of the relation in the
//     reference cache and writes street-housenumbers-reference-<relation>.lst.
//  2. MissingHousenumbers reads the OSM tables and that list and runs the
//     comparison in core/reconcile.
//  3. Record optionally stores the summary and suspicious streets in the
//     history database; Publish optionally uploads the JSON report.
//
// The Fetcher downloads a fresh reference table from object storage.
//
// # History
//
// Each run is a ReportRun row keyed by a UUID, with one MissingStreet row
// per suspicious street. Both tables are created by History.Migrate.
package report
