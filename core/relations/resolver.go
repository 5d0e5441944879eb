package relations

import (
	"sort"
	"strings"
	"sync"

	"housenumber-audit/core/normalize"
	"housenumber-audit/core/ranges"

	"go.uber.org/zap"
)

// StreetIdentity is where a street lives in the reference.
type StreetIdentity struct {
	RefMegye string
	// RefTelepules is sorted and free of duplicates.
	RefTelepules []string
	// Name is the street name without its type ("Kossuth Lajos").
	Name string
	// Type is the last word of the street name ("utca").
	Type string
}

// Street joins the name and the type again.
func (s StreetIdentity) Street() string {
	return s.Name + " " + s.Type
}

// Resolver answers per-street questions for relations of one data
// directory. The registry is read on creation; override files are read on
// first use and kept for the lifetime of the Resolver.
type Resolver struct {
	dataDir  string
	registry Registry
	logger   *zap.Logger

	mu        sync.Mutex
	overrides map[string]*Overrides
}

// NewResolver loads the relation registry of dataDir. logger receives
// warnings about unknown keys and may be nil.
func NewResolver(dataDir string, logger *zap.Logger) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry, err := LoadRegistry(dataDir, logger)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		dataDir:   dataDir,
		registry:  registry,
		logger:    logger,
		overrides: make(map[string]*Overrides),
	}, nil
}

// Relation returns the configuration of a relation.
func (r *Resolver) Relation(name string) (RelationConfig, error) {
	return r.registry.Relation(name)
}

// Overrides returns the parsed override file of a relation.
func (r *Resolver) Overrides(relation string) (*Overrides, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o, ok := r.overrides[relation]; ok {
		return o, nil
	}
	o, err := LoadOverrides(r.dataDir, relation, r.logger)
	if err != nil {
		return nil, err
	}
	r.overrides[relation] = o
	return o, nil
}

// StreetIdentity resolves the reference codes and the name/type split of an
// OSM street.
//
// Filters are matched on the OSM name. The settlement list starts with the
// relation default; a street-level reftelepules replaces it and range-level
// ones are appended. The refstreets rename is applied before the split.
func (r *Resolver) StreetIdentity(street, relation string) (StreetIdentity, error) {
	rel, err := r.Relation(relation)
	if err != nil {
		return StreetIdentity{}, err
	}
	overrides, err := r.Overrides(relation)
	if err != nil {
		return StreetIdentity{}, err
	}

	refTelepules := []string{rel.RefTelepules}
	if filter, ok := overrides.Filters[street]; ok {
		refTelepules = filter.refTelepules(refTelepules)
	}

	name, typ := SplitStreet(overrides.RefStreet(street))
	return StreetIdentity{
		RefMegye:     rel.RefMegye,
		RefTelepules: sortedSet(refTelepules),
		Name:         name,
		Type:         typ,
	}, nil
}

// AcceptancePolicy builds the range sets of every filtered street of a
// relation and returns them together with the refstreets table. Filters
// without ranges are skipped, so those streets fall back to the default.
func (r *Resolver) AcceptancePolicy(relation string) (normalize.Policy, map[string]string, error) {
	overrides, err := r.Overrides(relation)
	if err != nil {
		return nil, nil, err
	}

	policy := normalize.Policy{}
	for street, filter := range overrides.Filters {
		if len(filter.Ranges) == 0 {
			continue
		}
		set := make(ranges.Set, 0, len(filter.Ranges))
		for _, spec := range filter.Ranges {
			set = append(set, ranges.New(int(spec.Start), int(spec.End)))
		}
		policy[street] = set
	}

	refStreets := make(map[string]string, len(overrides.RefStreets))
	for osm, ref := range overrides.RefStreets {
		refStreets[osm] = ref
	}
	return policy, refStreets, nil
}

// SplitStreet splits a street name on its last space into name and type.
// A single word is all type.
func SplitStreet(street string) (name, typ string) {
	idx := strings.LastIndex(street, " ")
	if idx < 0 {
		return "", street
	}
	return street[:idx], street[idx+1:]
}

func (f Filter) refTelepules(list []string) []string {
	if f.RefTelepules != "" {
		list = []string{f.RefTelepules}
	}
	for _, spec := range f.Ranges {
		if spec.RefTelepules != "" {
			list = append(list, spec.RefTelepules)
		}
	}
	return list
}

func sortedSet(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	ret := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		ret = append(ret, item)
	}
	sort.Strings(ret)
	return ret
}
