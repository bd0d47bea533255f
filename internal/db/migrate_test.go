package db

import (
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnConfig(t *testing.T) {
	t.Run("AddrIsSplit", func(t *testing.T) {
		cfg, err := ConnConfig(&pg.Options{Addr: "db.local:5433", User: "u", Password: "p", Database: "innonews"})
		require.NoError(t, err)
		assert.Equal(t, "db.local", cfg.Host)
		assert.Equal(t, uint16(5433), cfg.Port)
		assert.Equal(t, "u", cfg.User)
		assert.Equal(t, "p", cfg.Password)
		assert.Equal(t, "innonews", cfg.Database)
	})

	t.Run("DefaultsWithoutAddr", func(t *testing.T) {
		cfg, err := ConnConfig(&pg.Options{User: "u"})
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, uint16(5432), cfg.Port)
	})

	t.Run("BadAddr", func(t *testing.T) {
		_, err := ConnConfig(&pg.Options{Addr: "no-port"})
		assert.Error(t, err)

		_, err = ConnConfig(&pg.Options{Addr: "host:99999"})
		assert.Error(t, err)
	})
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_visitor_state.sql", entries[0].Name())
}
