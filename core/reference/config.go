package reference

// Config locates the reference table and selects how its side-car cache
// is validated.
type Config struct {
	// Path is the tab-separated reference table.
	Path string `mapstructure:"path" default:"reference.tsv"`
	// Staleness is one of mtime, hash or none.
	Staleness string `mapstructure:"staleness" default:"mtime"`
}
