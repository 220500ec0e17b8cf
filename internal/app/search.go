package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

type SearchService struct {
	ds       *domain.Dataset // nil when the startup load failed
	version  string          // ds.Version(); scopes cache keys to this dataset
	cache    domain.Cache    // optional
	cacheTTL time.Duration
}

func NewSearchService(ds *domain.Dataset, c domain.Cache, ttl time.Duration) *SearchService {
	s := &SearchService{ds: ds, cache: c, cacheTTL: ttl}
	if ds != nil {
		s.version = ds.Version()
	}
	return s
}

// CacheKey is the cache entry for normalized query q. Entries written for
// another dataset are never read back.
func CacheKey(version, q string) string {
	return "search:" + version + ":" + q
}

// Available reports whether a dataset was loaded.
func (s *SearchService) Available() bool { return s.ds != nil }

func (s *SearchService) Dataset() (domain.Dataset, error) {
	if s.ds == nil {
		return domain.Dataset{}, domain.ErrDataUnavailable
	}
	return *s.ds, nil
}

// Search runs raw through the matcher. A query with no matches is a result
// with no items, not an error.
func (s *SearchService) Search(ctx context.Context, raw string) (domain.SearchResult, error) {
	q := Normalize(raw)
	cat := Classify(q)

	if s.ds == nil {
		observability.ObserveSearch(string(cat), "unavailable")
		return domain.SearchResult{}, domain.ErrDataUnavailable
	}
	if q == "" {
		observability.ObserveSearch(string(cat), "invalid")
		return domain.SearchResult{}, domain.ErrInvalidQuery
	}

	out := domain.SearchResult{Query: raw, Normalized: q, Category: cat}
	key := CacheKey(s.version, q)
	if s.cache != nil {
		var items []domain.Destination
		if ok, err := s.cache.Get(ctx, key, &items); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if ok {
			out.Items = nonNil(items)
			observe(out)
			return out, nil
		}
	}

	items, err := Match(*s.ds, q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			observability.ObserveSearch(string(cat), "invalid")
		}
		return domain.SearchResult{}, err
	}
	out.Items = items

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	observe(out)
	return out, nil
}

func observe(r domain.SearchResult) {
	outcome := "results"
	if len(r.Items) == 0 {
		outcome = "no_matches"
	}
	observability.ObserveSearch(string(r.Category), outcome)
}

// JSON round-trips of an empty slice come back as null.
func nonNil(in []domain.Destination) []domain.Destination {
	if in == nil {
		return []domain.Destination{}
	}
	return in
}
