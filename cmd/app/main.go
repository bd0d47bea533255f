package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/innonews/config"
	_ "github.com/daniilsolovey/innonews/docs"
	"github.com/daniilsolovey/innonews/internal/app"
	"github.com/daniilsolovey/innonews/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

// @title INNO NEWS API
// @version 1.0
// @description Content service for the INNO NEWS site: articles, videos, ads, popups, tips and the admin dashboard
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	if err != nil {
		exitOnError(err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var dbc *pg.DB
	if cfg.Storage.Popups == config.StoragePostgres {
		dbc, err = connectDB(ctx)
		if err != nil {
			exitOnError(err)
		}
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

// connectDB opens PostgreSQL for popup state and applies migrations.
func connectDB(ctx context.Context) (*pg.DB, error) {
	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		return nil, err
	}

	if cfg.Storage.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg, time.Duration(cfg.Storage.SlowQueryMs)*time.Millisecond))
	}

	connConfig, err := db.ConnConfig(&cfg.Database)
	if err != nil {
		dbc.Close()
		return nil, err
	}

	if err := db.Migrate(ctx, connConfig); err != nil {
		dbc.Close()
		return nil, err
	}

	return dbc, nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
