package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/quangvdm00/datawarehouse-aws/internal/db"
	"github.com/quangvdm00/datawarehouse-aws/internal/warehouse"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report existence and row counts of the warehouse tables",
	Long: `Check each staging, fact, and dimension table and report whether it
exists and how many rows it holds. Useful after 'create-tables' (all
tables present, zero rows) and after 'etl' (staging and warehouse
tables populated).`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.ConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer conn.Close(ctx)

	for _, table := range warehouse.Tables {
		exists, err := tableExists(ctx, conn, table)
		if err != nil {
			return fmt.Errorf("checking table %s: %w", table, err)
		}
		if !exists {
			cmd.Printf("%-16s missing\n", table)
			continue
		}

		var count int64
		// Table names come from the fixed schema list, not user input.
		err = conn.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).Scan(&count)
		if err != nil {
			return fmt.Errorf("counting rows in %s: %w", table, err)
		}
		cmd.Printf("%-16s %d rows\n", table, count)
	}

	return nil
}

func tableExists(ctx context.Context, conn *pgx.Conn, table string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )
    `, table).Scan(&exists)
	return exists, err
}
