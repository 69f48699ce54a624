// Package db provides warehouse connection management for dwhctl.
//
// The pipeline is sequential and single-connection: every run owns one
// connection for its lifetime and closes it on exit. Redshift speaks the
// PostgreSQL wire protocol, so pgx is used directly.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
)

// Connect establishes a single connection to the warehouse.
func Connect(ctx context.Context, connString string) (*pgx.Conn, error) {
	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	logging.Debug().
		Str("host", cfg.Host).
		Uint16("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("Connecting to warehouse")

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping warehouse: %w", err)
	}

	logging.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Database).
		Msg("Connected to warehouse")

	return conn, nil
}
