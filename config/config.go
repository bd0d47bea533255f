package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Database pg.Options
	App      App
	Storage  Storage
	Ads      Ads
	Report   Report
}

type App struct {
	Host string
	Port int
	// Seed loads the demo content on start.
	Seed bool
}

type Storage struct {
	// Popups selects where visitor popup state lives: "memory" or "postgres".
	Popups     string
	LogQueries bool
	// SlowQueryMs logs queries at least this slow as warnings, 0 to disable.
	SlowQueryMs int
}

type Ads struct {
	// MaxPerType caps newly added ads per placement, 0 for no cap.
	MaxPerType int
}

type Report struct {
	UrgentMailbox string
	SiteName      string
}

func Default() Config {
	return Config{
		App: App{
			Host: "localhost",
			Port: 3000,
			Seed: true,
		},
		Storage: Storage{
			Popups:      StorageMemory,
			SlowQueryMs: 200,
		},
		Ads: Ads{
			MaxPerType: 5,
		},
		Report: Report{
			UrgentMailbox: "ai@aag.co.kr",
			SiteName:      "이노뉴스",
		},
	}
}

// Load decodes the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", c.App.Port)
	}

	switch c.Storage.Popups {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("storage.popups must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage.Popups)
	}

	if c.Storage.SlowQueryMs < 0 {
		return fmt.Errorf("storage.slowQueryMs must not be negative: %d", c.Storage.SlowQueryMs)
	}

	if c.Ads.MaxPerType < 0 {
		return fmt.Errorf("ads.maxPerType must not be negative: %d", c.Ads.MaxPerType)
	}

	return nil
}
