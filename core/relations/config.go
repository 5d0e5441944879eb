package relations

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for a missing or malformed relation registry, a
// malformed override file or an unknown relation.
var ErrConfig = errors.New("relation config error")

// RegistryFile is the name of the relation registry inside the data directory.
const RegistryFile = "relations.yaml"

// RelationConfig holds the reference codes of one relation.
type RelationConfig struct {
	// RefMegye is the top-level administrative code in the reference.
	RefMegye string `yaml:"refmegye"`
	// RefTelepules is the default settlement code in the reference.
	RefTelepules string `yaml:"reftelepules"`
	// OSMRelation is the id of the boundary relation in the map data.
	OSMRelation int64 `yaml:"osmrelation"`
}

// Registry maps relation names to their configuration.
type Registry map[string]RelationConfig

// Bound is a range limit. Override files write it either as a number or as
// a quoted numeric string.
type Bound int

// UnmarshalYAML accepts 12 as well as "12".
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range bound must be a number", node.Line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: range bound %q is not a number", node.Line, node.Value)
	}
	*b = Bound(n)
	return nil
}

// RangeSpec is one entry of a street filter.
type RangeSpec struct {
	Start Bound `yaml:"start"`
	End   Bound `yaml:"end"`
	// RefTelepules adds a settlement code to the street's lookup list.
	RefTelepules string `yaml:"reftelepules"`
}

// Filter is the per-street section of an override file.
type Filter struct {
	Ranges []RangeSpec `yaml:"ranges"`
	// RefTelepules replaces the relation's default settlement code.
	RefTelepules string `yaml:"reftelepules"`
}

// Overrides is the parsed content of housenumber-filters-<relation>.yaml.
type Overrides struct {
	// RefStreets maps OSM street names to reference street names.
	RefStreets map[string]string `yaml:"refstreets"`
	// Filters holds street-specific policies keyed by OSM street name.
	Filters map[string]Filter `yaml:"filters"`
}

// OverridesFile returns the file name of the overrides of a relation.
func OverridesFile(relation string) string {
	return fmt.Sprintf("housenumber-filters-%s.yaml", relation)
}

// LoadRegistry reads relations.yaml from dataDir. Unknown keys are logged
// and ignored.
func LoadRegistry(dataDir string, logger *zap.Logger) (Registry, error) {
	path := filepath.Join(dataDir, RegistryFile)
	registry := Registry{}
	if err := decodeFile(path, &registry, logger); err != nil {
		return nil, err
	}
	return registry, nil
}

// Relation returns the configuration of name.
func (r Registry) Relation(name string) (RelationConfig, error) {
	rel, ok := r[name]
	if !ok {
		return RelationConfig{}, fmt.Errorf("%w: unknown relation %q", ErrConfig, name)
	}
	if rel.RefMegye == "" || rel.RefTelepules == "" {
		return RelationConfig{}, fmt.Errorf("%w: relation %q lacks refmegye or reftelepules", ErrConfig, name)
	}
	return rel, nil
}

// LoadOverrides reads the override file of relation. A missing file is not
// an error and yields empty overrides. Unknown keys are logged and ignored.
func LoadOverrides(dataDir, relation string, logger *zap.Logger) (*Overrides, error) {
	path := filepath.Join(dataDir, OverridesFile(relation))
	overrides := &Overrides{}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return overrides, nil
	}
	if err := decodeFile(path, overrides, logger); err != nil {
		return nil, err
	}
	return overrides, nil
}

// RefStreet maps an OSM street name to its reference name. Unmapped names
// are returned unchanged.
func (o *Overrides) RefStreet(street string) string {
	if ref, ok := o.RefStreets[street]; ok {
		return ref
	}
	return street
}

// decodeFile decodes the YAML file at path into out. Keys without a
// matching field are reported as warnings; any other problem is ErrConfig.
func decodeFile(path string, out any, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	unknown, err := decode(data, out)
	if err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrConfig, path, err)
	}
	for _, msg := range unknown {
		logger.Warn("Ignoring unknown key", zap.String("file", path), zap.String("detail", msg))
	}
	return nil
}

// decode decodes data strictly. yaml.v3 keeps filling out after an unknown
// key, so those errors are split off and returned as unknown; anything else
// is a real error.
func decode(data []byte, out any) (unknown []string, err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(out)
	if err == nil || errors.Is(err, io.EOF) {
		return nil, nil
	}

	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return nil, err
	}
	var other []string
	for _, msg := range typeErr.Errors {
		if strings.Contains(msg, "not found in type") {
			unknown = append(unknown, msg)
		} else {
			other = append(other, msg)
		}
	}
	if len(other) > 0 {
		return nil, &yaml.TypeError{Errors: other}
	}
	return unknown, nil
}
