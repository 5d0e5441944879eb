// Package workspace knows where the tool's input and output files live and
// how to read and write them.
//
// # Layout
//
//	<datadir>/relations.yaml
//	<datadir>/housenumber-filters-<relation>.yaml
//	<workdir>/streets-<relation>.csv
//	<workdir>/street-housenumbers-<relation>.csv
//	<workdir>/street-housenumbers-reference-<relation>.lst
//
// The .csv files are tab-separated OSM query results with a header line.
// The .lst file holds one "<street> <housenumber>" entry per line.
//
// Writes go through a temporary file and a rename, so readers see either
// the old or the new content.
package workspace
