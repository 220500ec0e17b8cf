package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_reco/internal/domain"
)

type ImportService struct {
	src     domain.DatasetSource
	store   domain.DatasetStore
	workers int
}

func NewImportService(src domain.DatasetSource, store domain.DatasetStore, workers int) *ImportService {
	if workers <= 0 {
		workers = 4
	}
	return &ImportService{src: src, store: store, workers: workers}
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Snapshot     int64
	Countries    int
	Destinations int
}

// Import replaces the stored dataset with the one from src. Everything is
// written into a fresh snapshot which only becomes visible once every write
// succeeded; on failure it is discarded and the previous dataset stays active.
// Countries are written concurrently; positions keep declaration order.
func (s *ImportService) Import(ctx context.Context) (ImportStats, error) {
	ds, err := s.src.LoadDataset(ctx)
	if err != nil {
		return ImportStats{}, fmt.Errorf("load source dataset: %w", err)
	}

	snap, err := s.store.BeginSnapshot(ctx)
	if err != nil {
		return ImportStats{}, fmt.Errorf("begin snapshot: %w", err)
	}

	sem := semaphore.NewWeighted(int64(s.workers))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	jobs := make([]func(context.Context) error, 0, len(ds.Countries)+2)
	for i, c := range ds.Countries {
		jobs = append(jobs, func(ctx context.Context) error { return s.store.InsertCountry(ctx, snap, i, c) })
	}
	jobs = append(jobs,
		func(ctx context.Context) error { return s.store.InsertTemples(ctx, snap, ds.Temples) },
		func(ctx context.Context) error { return s.store.InsertBeaches(ctx, snap, ds.Beaches) },
	)

	for _, job := range jobs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := job(ctx); err != nil {
				log.Warn().Err(err).Int64("snapshot", snap).Msg("import job failed")
				fail(err)
			}
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		// cleanup runs even when ctx was canceled
		if err := s.store.DiscardSnapshot(context.WithoutCancel(ctx), snap); err != nil {
			errs = append(errs, fmt.Errorf("discard snapshot %d: %w", snap, err))
		}
		return ImportStats{}, errors.Join(errs...)
	}

	if err := s.store.ActivateSnapshot(ctx, snap); err != nil {
		if derr := s.store.DiscardSnapshot(context.WithoutCancel(ctx), snap); derr != nil {
			log.Warn().Err(derr).Int64("snapshot", snap).Msg("discard after failed activation")
		}
		return ImportStats{}, fmt.Errorf("activate snapshot %d: %w", snap, err)
	}
	return ImportStats{Snapshot: snap, Countries: len(ds.Countries), Destinations: ds.Size()}, nil
}
