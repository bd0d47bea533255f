package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/innonews/config"
)

func TestNew_MemoryStorage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Seeded", func(t *testing.T) {
		a := New(config.Default(), nil, logger)
		assert.Nil(t, a.DB)
		assert.Len(t, a.Manager.Articles(), 2)

		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rpc/?smd", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "SMD is exposed on GET")
	})

	t.Run("Empty", func(t *testing.T) {
		cfg := config.Default()
		cfg.App.Seed = false

		a := New(cfg, nil, logger)
		assert.Empty(t, a.Manager.Articles())
		assert.NotEmpty(t, a.Manager.Categories())

		_, err := a.Manager.Login("pw")
		require.NoError(t, err)
	})

	t.Run("Shutdown", func(t *testing.T) {
		a := New(config.Default(), nil, logger)
		assert.NoError(t, a.GracefulShutdown(context.Background()))
	})
}
