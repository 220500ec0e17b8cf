package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

// LoadDataset calls src once. On failure the error is logged and nil is
// returned; there is no retry and every later search reports the data as
// unavailable.
func LoadDataset(ctx context.Context, name string, src domain.DatasetSource) *domain.Dataset {
	ds, err := src.LoadDataset(ctx)
	observability.ObserveDatasetLoad(name, err, ds.Size())
	if err != nil {
		log.Error().Err(err).Str("source", name).Msg("could not load travel recommendations data")
		return nil
	}
	log.Info().
		Str("source", name).
		Int("countries", len(ds.Countries)).
		Int("temples", len(ds.Temples)).
		Int("beaches", len(ds.Beaches)).
		Msg("travel data loaded")
	return &ds
}
