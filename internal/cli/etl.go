package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quangvdm00/datawarehouse-aws/internal/aws"
	"github.com/quangvdm00/datawarehouse-aws/internal/db"
	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
	"github.com/quangvdm00/datawarehouse-aws/internal/warehouse"
)

var etlSkipPreflight bool

var etlCmd = &cobra.Command{
	Use:   "etl",
	Short: "Load staging tables from S3 and populate the star schema",
	Long: `Bulk-load the raw JSON sources into the two staging tables with
warehouse-native COPY, then insert the distinct derived rows into the
fact and dimension tables.

COPY is append-only and the inserts assume empty target tables; run
'create-tables' first for a clean result.

Example:
  dwhctl etl --config dwhctl.yaml`,
	RunE: runETL,
}

func init() {
	etlCmd.Flags().BoolVar(&etlSkipPreflight, "skip-preflight", false,
		"skip the S3 source and credential checks before loading")
}

func runETL(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateETL(); err != nil {
		return err
	}

	ctx := context.Background()

	if !etlSkipPreflight {
		if err := preflight(ctx); err != nil {
			return fmt.Errorf("preflight failed: %w", err)
		}
	}

	conn, err := db.Connect(ctx, cfg.ConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer conn.Close(ctx)

	copyCfg := warehouse.CopyConfig{
		LogData:     cfg.S3.LogData,
		LogJSONPath: cfg.S3.LogJSONPath,
		SongData:    cfg.S3.SongData,
		RoleARN:     cfg.IAMRole.ARN,
		Region:      cfg.S3.Region,
	}

	logging.Info().
		Str("log_data", cfg.S3.LogData).
		Str("song_data", cfg.S3.SongData).
		Msg("Loading staging tables")
	if err := warehouse.Run(ctx, conn, warehouse.CopyStatements(copyCfg)); err != nil {
		return fmt.Errorf("failed to load staging tables: %w", err)
	}

	logging.Info().Msg("Populating fact and dimension tables")
	if err := warehouse.Run(ctx, conn, warehouse.InsertStatements()); err != nil {
		return fmt.Errorf("failed to populate warehouse tables: %w", err)
	}

	logging.Info().Msg("ETL complete")
	return nil
}

func preflight(ctx context.Context) error {
	client, err := aws.NewRealClient(ctx, cfg.S3.Region)
	if err != nil {
		return err
	}
	return aws.Preflight(ctx, client, aws.Sources{
		LogData:     cfg.S3.LogData,
		LogJSONPath: cfg.S3.LogJSONPath,
		SongData:    cfg.S3.SongData,
	})
}
