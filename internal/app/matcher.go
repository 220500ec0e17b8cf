package app

import (
	"slices"
	"strings"

	"travel_reco/internal/domain"
)

// Normalize lowercases and trims a raw query.
func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Classify reports which path a normalized query takes. Plurals contain the
// singular keyword. Order matters: "beach" wins over "temple", which wins over "country".
func Classify(q string) domain.Category {
	switch {
	case strings.Contains(q, "beach"):
		return domain.CategoryBeach
	case strings.Contains(q, "temple"):
		return domain.CategoryTemple
	case strings.Contains(q, "country"):
		return domain.CategoryCountry
	default:
		return domain.CategoryBroad
	}
}

// Match returns the destinations recommended for query.
// An empty query is ErrInvalidQuery; no matches is an empty slice and a nil error.
func Match(ds domain.Dataset, query string) ([]domain.Destination, error) {
	q := Normalize(query)
	if q == "" {
		return nil, domain.ErrInvalidQuery
	}

	switch Classify(q) {
	case domain.CategoryBeach:
		return cloneOrEmpty(ds.Beaches), nil
	case domain.CategoryTemple:
		return cloneOrEmpty(ds.Temples), nil
	case domain.CategoryCountry:
		return ds.Cities(), nil
	}
	return matchBroadly(ds, q), nil
}

func matchBroadly(ds domain.Dataset, q string) []domain.Destination {
	var hits []domain.Destination
	for _, c := range ds.Countries {
		countryHit := strings.Contains(strings.ToLower(c.Name), q)
		for _, city := range c.Cities {
			if countryHit || strings.Contains(strings.ToLower(city.Name), q) {
				hits = append(hits, city)
			}
		}
	}
	for _, group := range [][]domain.Destination{ds.Temples, ds.Beaches} {
		for _, d := range group {
			if strings.Contains(strings.ToLower(d.Name), q) {
				hits = append(hits, d)
			}
		}
	}
	return dedupe(hits)
}

// dedupe collapses records equal in every field; first occurrence wins.
func dedupe(in []domain.Destination) []domain.Destination {
	seen := make(map[domain.Destination]struct{}, len(in))
	out := make([]domain.Destination, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func cloneOrEmpty(in []domain.Destination) []domain.Destination {
	if in == nil {
		return []domain.Destination{}
	}
	return slices.Clone(in)
}
