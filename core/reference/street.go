package reference

import "housenumber-audit/core/relations"

// IdentityResolver resolves where an OSM street is found in the reference.
type IdentityResolver interface {
	StreetIdentity(street, relation string) (relations.StreetIdentity, error)
}

// HouseNumbersOfStreet lists the reference house numbers of an OSM street
// as "<street> <number>" entries, collected over every settlement code the
// street resolves to.
func HouseNumbersOfStreet(cache Cache, resolver IdentityResolver, street, relation string) ([]string, error) {
	id, err := resolver.StreetIdentity(street, relation)
	if err != nil {
		return nil, err
	}

	refStreet := id.Street()
	var ret []string
	for _, refTelepules := range id.RefTelepules {
		for _, number := range cache.Lookup(id.RefMegye, refTelepules, refStreet) {
			ret = append(ret, refStreet+" "+number)
		}
	}
	return ret, nil
}
