// Package data provides low-level data clients and connection factories.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roguepikachu/smileline/internal/config"
)

// PostgresDSN builds a connection string from configuration.
func PostgresDSN(c config.Config) string {
	if c.PostgresURL != "" {
		return c.PostgresURL
	}
	host := c.PostgresHost
	if host == "" {
		host = "127.0.0.1"
	}
	port := c.PostgresPort
	if port == "" {
		port = "5432"
	}
	user := c.PostgresUser
	if user == "" {
		user = "postgres"
	}
	db := c.PostgresDB
	if db == "" {
		db = "smileline"
	}
	sslmode := c.PostgresSSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, c.PostgresPassword, host, port, db, sslmode)
}

// NewPostgresPool creates a new pgx connection pool based on environment configuration.
func NewPostgresPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(PostgresDSN(config.Conf))
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 30 * time.Second
	cfg.MaxConnLifetime = 30 * time.Minute
	return pgxpool.NewWithConfig(ctx, cfg)
}
