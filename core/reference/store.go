package reference

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store keeps built caches in memory, keyed by reference table path.
// Concurrent requests for the same path share a single build; a built
// cache is never modified afterwards and may be shared freely.
type Store struct {
	mu       sync.RWMutex
	caches   map[string]Cache
	sf       singleflight.Group
	validity Validity
	logger   *zap.Logger
}

// NewStore creates an empty store that checks side-cars with validity v.
func NewStore(v Validity, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		caches:   make(map[string]Cache),
		validity: v,
		logger:   logger,
	}
}

// Get returns the cache of the reference table at source, building it on
// first use.
func (s *Store) Get(ctx context.Context, source string) (Cache, error) {
	// Fast path: already built in this process
	s.mu.RLock()
	cache, ok := s.caches[source]
	s.mu.RUnlock()
	if ok {
		loadsTotal.WithLabelValues(OriginMemory).Inc()
		return cache, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err, _ := s.sf.Do(source, func() (interface{}, error) {
		s.mu.RLock()
		cache, ok := s.caches[source]
		s.mu.RUnlock()
		if ok {
			return cache, nil
		}

		start := time.Now()
		cache, origin, err := build(source, s.validity)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Reference cache ready",
			zap.String("source", source),
			zap.String("origin", origin),
			zap.Int("rows", cache.Rows()),
			zap.Duration("took", time.Since(start)),
		)

		s.mu.Lock()
		s.caches[source] = cache
		s.mu.Unlock()

		return cache, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(Cache), nil
}

// Invalidate drops the in-memory cache of source. The side-car on disk is
// left alone.
func (s *Store) Invalidate(source string) {
	s.mu.Lock()
	delete(s.caches, source)
	s.mu.Unlock()
}
