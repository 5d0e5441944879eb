// Package reference builds and serves the reference house-number cache.
//
// The reference is a large tab-separated table with a header row and
// exactly four columns: refmegye, reftelepules, street, housenumber.
// Scanning it is slow, so Build keeps a binary side-car next to it
// (<table>.cache) and reuses it on later runs.
//
// # Staleness
//
// The side-car records a validity token of the table it was built from.
// With ValidityModTime (the default) the token is the size and
// modification time of the table; ValidityHash uses a sha256 of the
// content. A side-car with a different token, an older layout version or
// unreadable content is rebuilt. ValidityNone trusts any readable side-car.
//
// # Sharing
//
// Store memoizes built caches per table path and makes concurrent callers
// wait for one build. Caches are read-only once built.
//
//	store := reference.NewStore(reference.ValidityModTime, logger)
//	cache, err := store.Get(ctx, "/data/reference.tsv")
//	numbers, err := reference.HouseNumbersOfStreet(cache, resolver, "Main St", "budafok")
package reference
