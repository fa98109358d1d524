package postgres_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioportal/internal/config"
	"studioportal/internal/repository/postgres"
)

func TestNewDB_Unreachable(t *testing.T) {
	cfg := &config.DBConfig{
		Host:           "127.0.0.1",
		Port:           1,
		User:           "studio",
		Password:       "studio_secret",
		Name:           "studio_db",
		SSLMode:        "disable",
		MaxOpen:        2,
		MaxIdle:        1,
		ConnectTimeout: 2 * time.Second,
	}

	db, err := postgres.NewDB(cfg)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "connecting to postgres at 127.0.0.1:1/studio_db")
}
