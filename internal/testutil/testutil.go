// Package testutil provides helpers for integration testing against a
// live warehouse.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// ConnEnvVar names the environment variable holding the connection string
// of a disposable warehouse (Redshift or Redshift Serverless) endpoint.
// The schema DDL uses Redshift physical hints, so a plain PostgreSQL
// server is not a valid target.
const ConnEnvVar = "DWH_TEST_CONN"

// SkipIfNoWarehouse skips the test unless a test warehouse is configured
// and reachable, and returns its connection string.
func SkipIfNoWarehouse(t *testing.T) string {
	t.Helper()

	connStr := os.Getenv(ConnEnvVar)
	if connStr == "" {
		t.Skipf("%s not set, skipping integration test", ConnEnvVar)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		t.Skipf("test warehouse not reachable: %v", err)
	}
	_ = conn.Close(ctx)

	return connStr
}

// ConnectWarehouse connects to the test warehouse and closes the
// connection when the test finishes.
func ConnectWarehouse(t *testing.T, connStr string) *pgx.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test warehouse: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close(context.Background())
	})

	return conn
}
