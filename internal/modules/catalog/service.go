// README: Catalog service: source lookup by departure city with enrichment and caching.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"tripfit/internal/logger"
	"tripfit/internal/modules/pricing"
)

const cacheKeyPrefix = "catalog:from:"

type Source interface {
	ListFrom(ctx context.Context, from string) ([]pricing.Destination, error)
	Cities(ctx context.Context) ([]string, error)
}

type Service struct {
	source   Source
	cache    Cache
	ttl      time.Duration
	enricher *Enricher
	log      *logger.Logger
}

// NewService wires a source with an optional cache and enricher.
func NewService(source Source, cache Cache, ttl time.Duration, enricher *Enricher, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{source: source, cache: cache, ttl: ttl, enricher: enricher, log: log}
}

// ListFrom returns the destinations departing from the given city. Cache
// failures are logged and fall through to the source.
func (s *Service) ListFrom(ctx context.Context, from string) ([]pricing.Destination, error) {
	key := cacheKey(from)
	if dests, ok := s.cached(ctx, key); ok {
		return dests, nil
	}

	dests, err := s.source.ListFrom(ctx, from)
	if err != nil {
		return nil, err
	}
	complete := true
	for i := range dests {
		var ok bool
		dests[i], ok = s.enricher.Enrich(ctx, dests[i])
		complete = complete && ok
	}

	// A failed lookup is retried on the next request instead of being cached.
	if s.cache != nil && complete && ctx.Err() == nil {
		if b, err := json.Marshal(dests); err == nil {
			if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
				s.log.WithFields(logger.Fields{"key": key}).WithError(err).Warn("catalog cache write failed")
			}
		}
	}
	return dests, nil
}

func (s *Service) Cities(ctx context.Context) ([]string, error) {
	return s.source.Cities(ctx)
}

func (s *Service) cached(ctx context.Context, key string) ([]pricing.Destination, bool) {
	if s.cache == nil {
		return nil, false
	}
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WithFields(logger.Fields{"key": key}).WithError(err).Warn("catalog cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var dests []pricing.Destination
	if err := json.Unmarshal(b, &dests); err != nil {
		s.log.WithFields(logger.Fields{"key": key}).WithError(err).Warn("discarding undecodable cache entry")
		return nil, false
	}
	return dests, true
}

func cacheKey(from string) string {
	return cacheKeyPrefix + from
}
