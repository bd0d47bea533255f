package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook logs visitor state queries. Slow queries are logged as warnings
// and failed ones as errors; a missing row is not a failure.
type QueryHook struct {
	logger *slog.Logger
	slow   time.Duration
}

// NewQueryHook returns a hook that warns about queries slower than slow.
// Zero disables the warning.
func NewQueryHook(logger *slog.Logger, slow time.Duration) *QueryHook {
	return &QueryHook{
		logger: logger,
		slow:   slow,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	duration := time.Since(event.StartTime)

	query, err := event.FormattedQuery()
	if err == nil && len(query) == 0 {
		// formatted text is only set for queries go-pg ran itself
		query, err = event.UnformattedQuery()
	}
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	level := slog.LevelDebug
	switch {
	case event.Err != nil && !errors.Is(event.Err, pg.ErrNoRows):
		level = slog.LevelError
	case h.slow > 0 && duration >= h.slow:
		level = slog.LevelWarn
	}

	h.logger.Log(ctx, level, "SQL query executed",
		"query", string(query),
		"duration", duration,
		"error", event.Err,
	)

	return nil
}
