package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 64, cfg.Server.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/opt/ml/model", cfg.Model.Path)
	assert.Equal(t, 3, cfg.Model.LoadRetries)
	assert.False(t, cfg.AuditLog.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_MAX_CONCURRENT", "8")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")
	t.Setenv("MODEL_PATH", "/models/demand")
	t.Setenv("AUDIT_LOG_ENABLED", "true")
	t.Setenv("AUDIT_LOG_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.MaxConcurrent)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/models/demand", cfg.Model.Path)
	assert.True(t, cfg.AuditLog.Enabled)
	assert.Contains(t, cfg.AuditLog.DSN(), "db.internal")
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}
