package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db  pg.DBI
	now func() time.Time
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Get returns the stored value for key. A missing row is reported with
// ok=false and no error.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	state := &VisitorState{}
	err := r.db.ModelContext(ctx, state).
		Where(`"t"."key" = ?`, key).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to get visitor state: %w", err)
	}

	return state.Value, true, nil
}

// Set stores value under key, overwriting the previous value.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	state := &VisitorState{
		Key:       key,
		Value:     value,
		UpdatedAt: r.now(),
	}

	_, err := r.db.ModelContext(ctx, state).
		OnConflict(`("key") DO UPDATE`).
		Set(`"value" = EXCLUDED."value"`).
		Set(`"updatedAt" = EXCLUDED."updatedAt"`).
		Insert()

	if err != nil {
		return fmt.Errorf("failed to set visitor state: %w", err)
	}

	return nil
}

// DeleteBefore removes rows last written before t and returns how many went.
func (r *Repository) DeleteBefore(ctx context.Context, t time.Time) (int, error) {
	res, err := r.db.ModelContext(ctx, (*VisitorState)(nil)).
		Where(`"t"."updatedAt" < ?`, t).
		Delete()

	if err != nil {
		return 0, fmt.Errorf("failed to delete visitor state: %w", err)
	}

	return res.RowsAffected(), nil
}
