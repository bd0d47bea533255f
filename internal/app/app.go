package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/innonews/config"
	"github.com/daniilsolovey/innonews/internal/db"
	"github.com/daniilsolovey/innonews/internal/newsportal"
	"github.com/daniilsolovey/innonews/internal/rest"
	"github.com/daniilsolovey/innonews/internal/rpc"
)

const (
	pruneInterval = time.Hour
	// visitorStateTTL outlives the longest popup suppression (7 days).
	visitorStateTTL = 8 * 24 * time.Hour
)

type App struct {
	DB      *db.Repository
	Manager *newsportal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

// New wires the application. dbConnect may be nil when popup state is kept
// in memory.
func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	state := newsportal.EmptyState()
	if cfg.App.Seed {
		state = newsportal.DefaultState()
	}

	a := &App{
		Logger: logger,
		Config: cfg,
	}

	var kv newsportal.KeyValue = newsportal.NewMemoryKV()
	if dbConnect != nil {
		a.DB = db.New(dbConnect)
		kv = a.DB
	}

	a.Manager = newsportal.NewNewsManager(
		newsportal.NewStore(state),
		newsportal.NewPopups(kv, nil),
		newsportal.Config{
			MaxAdsPerType: cfg.Ads.MaxPerType,
			UrgentMailbox: cfg.Report.UrgentMailbox,
			SiteName:      cfg.Report.SiteName,
		},
	)

	handler := rest.NewNewsHandler(a.Manager, logger, rest.NewMetrics())
	a.Echo = handler.RegisterRoutes(rpc.New(logger, a.Manager))

	return a
}

func (a *App) Run(ctx context.Context, port int) error {
	if a.DB != nil {
		go a.pruneVisitorState(ctx)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.Info("service starting", "addr", addr, "popups", a.Config.Storage.Popups)

	err := a.Echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		err = nil
	}

	if a.DB != nil {
		if cerr := a.DB.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// pruneVisitorState drops popup state no suppression window can still use.
func (a *App) pruneVisitorState(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := a.DB.DeleteBefore(ctx, time.Now().Add(-visitorStateTTL))
			if err != nil {
				a.Logger.Error("prune visitor state failed", "error", err)
				continue
			}
			a.Logger.Debug("visitor state pruned", "rows", n)
		}
	}
}
