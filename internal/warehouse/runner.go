// Package warehouse defines the star schema and the SQL statements that
// provision, load, and populate it, plus the sequential runner that
// executes them.
package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
)

// Statement is a named SQL statement executed against the warehouse.
type Statement struct {
	// Name identifies the statement in logs and errors.
	Name string

	// SQL is the statement text.
	SQL string
}

// DB is the subset of a warehouse connection the runner needs.
// *pgx.Conn satisfies it.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Run executes the statements in order, stopping at the first failure.
// Each statement runs in its own implicit transaction, so a failure at
// statement N leaves statements 1..N-1 committed.
func Run(ctx context.Context, db DB, stmts []Statement) error {
	for _, stmt := range stmts {
		start := time.Now()
		tag, err := db.Exec(ctx, stmt.SQL)
		if err != nil {
			return fmt.Errorf("statement %s: %w", stmt.Name, err)
		}
		logging.Info().
			Str("statement", stmt.Name).
			Int64("rows_affected", tag.RowsAffected()).
			Dur("elapsed", time.Since(start)).
			Msg("Statement executed")
	}
	return nil
}
