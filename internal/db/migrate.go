package db

import (
	"context"
	"embed"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// ConnConfig converts go-pg options to a pgx connection config.
func ConnConfig(opt *pg.Options) (pgx.ConnConfig, error) {
	cfg := pgx.ConnConfig{
		User:     opt.User,
		Password: opt.Password,
		Database: opt.Database,
		Host:     "localhost",
		Port:     5432,
	}

	if opt.Addr == "" {
		return cfg, nil
	}

	host, port, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return cfg, fmt.Errorf("parse addr %q: %w", opt.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return cfg, fmt.Errorf("parse port %q: %w", port, err)
	}

	cfg.Host = host
	cfg.Port = uint16(p)
	return cfg, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, config pgx.ConnConfig) error {
	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
