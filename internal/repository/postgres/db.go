package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"studioportal/internal/config"
)

const defaultConnectTimeout = 5 * time.Second

// NewDB opens the package store's connection pool and waits up to
// cfg.ConnectTimeout for the first successful ping.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to postgres at %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}

	log.Printf("postgres.NewDB: connected to %s:%d/%s (max_open=%d, max_idle=%d)",
		cfg.Host, cfg.Port, cfg.Name, cfg.MaxOpen, cfg.MaxIdle)
	return db, nil
}
