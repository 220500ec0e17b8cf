package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel_reco/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.DatasetStore = (*Repo)(nil)

// BeginSnapshot reserves an inactive snapshot for an import to write into.
func (r *Repo) BeginSnapshot(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertSnapshotSQL)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	return res.LastInsertId()
}

// ActivateSnapshot switches readers to snapshot and removes older snapshots,
// all in one transaction.
func (r *Repo) ActivateSnapshot(ctx context.Context, snapshot int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, lockSnapshotSQL, snapshot).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("snapshot %d: %w", snapshot, domain.ErrNotFound)
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, activateSnapshotSQL, snapshot); err != nil {
		return err
	}
	for _, q := range []string{deleteOlderDestinationsSQL, deleteOlderCountriesSQL, deleteOlderSnapshotsSQL} {
		if _, err := tx.ExecContext(ctx, q, snapshot); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DiscardSnapshot removes an inactive snapshot and everything written to it.
// The active snapshot is never removed.
func (r *Repo) DiscardSnapshot(ctx context.Context, snapshot int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{discardDestinationsSQL, discardCountriesSQL, discardSnapshotSQL} {
		if _, err := tx.ExecContext(ctx, q, snapshot); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// InsertCountry writes a country and its cities in one transaction.
// position is the country's index in the dataset.
func (r *Repo) InsertCountry(ctx context.Context, snapshot int64, position int, c domain.Country) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertCountrySQL, snapshot, c.Name, position)
	if err != nil {
		return fmt.Errorf("insert country %q: %w", c.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := insertDestinations(ctx, tx, snapshot, catCity, &id, c.Cities); err != nil {
		return fmt.Errorf("insert cities of %q: %w", c.Name, err)
	}
	return tx.Commit()
}

func (r *Repo) InsertTemples(ctx context.Context, snapshot int64, ds []domain.Destination) error {
	return insertDestinations(ctx, r.db, snapshot, catTemple, nil, ds)
}

func (r *Repo) InsertBeaches(ctx context.Context, snapshot int64, ds []domain.Destination) error {
	return insertDestinations(ctx, r.db, snapshot, catBeach, nil, ds)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertDestinations(ctx context.Context, ex execer, snapshot int64, category string, countryID *int64, ds []domain.Destination) error {
	if len(ds) == 0 {
		return nil
	}
	values := make([]string, 0, len(ds))
	args := make([]any, 0, len(ds)*7) // 7 params per row
	var cid any
	if countryID != nil {
		cid = *countryID
	}
	for i, d := range ds {
		values = append(values, "(?,?,?,?,?,?,?)")
		args = append(args, snapshot, category, cid, d.Name, d.Description, d.ImageKey, i)
	}
	_, err := ex.ExecContext(ctx, insertDestinationPrefix+strings.Join(values, ","), args...)
	return err
}

// LoadDataset rebuilds the active snapshot in declaration order. Both reads
// share one transaction so a concurrent activation is not observed halfway.
func (r *Repo) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return domain.Dataset{}, err
	}
	defer tx.Rollback()

	var snapshot int64
	if err := tx.QueryRowContext(ctx, activeSnapshotSQL).Scan(&snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Dataset{}, fmt.Errorf("no active dataset snapshot: %w", domain.ErrNotFound)
		}
		return domain.Dataset{}, err
	}

	var ds domain.Dataset
	rows, err := tx.QueryContext(ctx, listCountriesSQL, snapshot)
	if err != nil {
		return domain.Dataset{}, err
	}
	byID := map[int64]int{}
	for rows.Next() {
		var id int64
		var c domain.Country
		if err := rows.Scan(&id, &c.Name); err != nil {
			rows.Close()
			return domain.Dataset{}, err
		}
		byID[id] = len(ds.Countries)
		ds.Countries = append(ds.Countries, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, err
	}

	rows, err = tx.QueryContext(ctx, listDestinationsSQL, snapshot)
	if err != nil {
		return domain.Dataset{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category  string
			countryID sql.NullInt64
			d         domain.Destination
		)
		if err := rows.Scan(&category, &countryID, &d.Name, &d.Description, &d.ImageKey); err != nil {
			return domain.Dataset{}, err
		}
		switch category {
		case catCity:
			idx, ok := byID[countryID.Int64]
			if !countryID.Valid || !ok {
				return domain.Dataset{}, fmt.Errorf("city %q has no country", d.Name)
			}
			ds.Countries[idx].Cities = append(ds.Countries[idx].Cities, d)
		case catTemple:
			ds.Temples = append(ds.Temples, d)
		case catBeach:
			ds.Beaches = append(ds.Beaches, d)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, err
	}
	if len(ds.Countries) == 0 && len(ds.Temples) == 0 && len(ds.Beaches) == 0 {
		return domain.Dataset{}, fmt.Errorf("snapshot %d is empty: %w", snapshot, domain.ErrNotFound)
	}
	return ds, nil
}
