package domain

import "context"

// DatasetSource yields the whole dataset in one call.
type DatasetSource interface {
	LoadDataset(ctx context.Context) (Dataset, error)
}

// DatasetStore persists datasets as snapshots. Writes go to a snapshot that
// stays invisible to LoadDataset until it is activated.
type DatasetStore interface {
	DatasetSource

	// Write paths
	BeginSnapshot(ctx context.Context) (int64, error)
	InsertCountry(ctx context.Context, snapshot int64, position int, c Country) error
	InsertTemples(ctx context.Context, snapshot int64, ds []Destination) error
	InsertBeaches(ctx context.Context, snapshot int64, ds []Destination) error

	// ActivateSnapshot makes snapshot the one LoadDataset reads and drops older ones.
	ActivateSnapshot(ctx context.Context, snapshot int64) error
	// DiscardSnapshot drops an unfinished snapshot; the active one is untouched.
	DiscardSnapshot(ctx context.Context, snapshot int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

type SearchResult struct {
	Query      string        `json:"query"`
	Normalized string        `json:"normalized"`
	Category   Category      `json:"category"`
	Items      []Destination `json:"items"`
}
