package workspace

import (
	"fmt"
	"path/filepath"
)

// Config holds the directories the tool reads from and writes to.
type Config struct {
	// DataDir holds relations.yaml and the per-relation override files.
	DataDir string `mapstructure:"datadir" default:"data"`
	// WorkDir holds the OSM tables and the generated reference lists.
	WorkDir string `mapstructure:"workdir" default:"workdir"`
}

// StreetsPath returns the OSM street table of a relation.
func (c Config) StreetsPath(relation string) string {
	return filepath.Join(c.WorkDir, fmt.Sprintf("streets-%s.csv", relation))
}

// HouseNumbersPath returns the OSM house-number table of a relation.
func (c Config) HouseNumbersPath(relation string) string {
	return filepath.Join(c.WorkDir, fmt.Sprintf("street-housenumbers-%s.csv", relation))
}

// ReferenceListPath returns the reference-derived house-number list of a
// relation.
func (c Config) ReferenceListPath(relation string) string {
	return filepath.Join(c.WorkDir, fmt.Sprintf("street-housenumbers-reference-%s.lst", relation))
}
