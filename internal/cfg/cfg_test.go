package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalil-js/VETANIMALIA/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 720*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "vet_session", cfg.Session.CookieName)
	assert.Equal(t, 600*time.Millisecond, cfg.Checkout.SubmitDelay)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHECKOUT_SUBMIT_DELAY", "50ms")
	t.Setenv("STORE_BACKEND", StoreBackendMemory)
	t.Setenv("SESSION_TTL", "24h")

	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Http.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Checkout.SubmitDelay)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := Load(logger.NewNopLogger())
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CHECKOUT_SUBMIT_DELAY", "soon")

	_, err := Load(logger.NewNopLogger())
	assert.Error(t, err)
}
