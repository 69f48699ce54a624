package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quangvdm00/datawarehouse-aws/internal/db"
	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
	"github.com/quangvdm00/datawarehouse-aws/internal/warehouse"
)

var createTablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Drop and recreate all warehouse tables",
	Long: `Drop every staging, fact, and dimension table if present, then
recreate the full schema. This destroys any existing data in those
tables on every run; rerun 'etl' afterwards to repopulate.

Example:
  dwhctl create-tables --config dwhctl.yaml`,
	RunE: runCreateTables,
}

func runCreateTables(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.ConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer conn.Close(ctx)

	logging.Warn().
		Str("database", cfg.Cluster.DBName).
		Msg("Dropping all warehouse tables; existing data will be lost")

	if err := warehouse.Run(ctx, conn, warehouse.DropStatements()); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	logging.Info().Msg("Creating warehouse tables")
	if err := warehouse.Run(ctx, conn, warehouse.CreateStatements()); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	logging.Info().
		Int("tables", len(warehouse.Tables)).
		Msg("Schema apply complete")

	return nil
}
