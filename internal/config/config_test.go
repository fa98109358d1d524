package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioportal/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Empty(t, cfg.Email.NotifyAddresses)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDIO_DB_HOST", "db.internal")
	t.Setenv("STUDIO_DB_PORT", "6543")
	t.Setenv("STUDIO_DB_CONNECT_TIMEOUT", "2s")
	t.Setenv("STUDIO_EMAIL_PROVIDER", "ses")
	t.Setenv("STUDIO_EMAIL_NOTIFY_ADDRESSES", "owner@studio.test, , desk@studio.test")
	t.Setenv("STUDIO_CORS_ALLOWED_ORIGINS", "https://portal.studio.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 2*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, []string{"owner@studio.test", "desk@studio.test"}, cfg.Email.NotifyAddresses)
	assert.Equal(t, []string{"https://portal.studio.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)

	t.Setenv("STUDIO_SERVER_PORT", ":7070")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: 1, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@h:1/n?sslmode=require", d.DSN())
}
