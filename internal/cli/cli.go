// Package cli implements the command-line interface for dwhctl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quangvdm00/datawarehouse-aws/internal/config"
	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
	"github.com/quangvdm00/datawarehouse-aws/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "dwhctl",
		Short: "Redshift warehouse provisioning and ETL for song-play analytics",
		Long: `dwhctl provisions a star-schema warehouse for song-play analytics,
bulk-loads raw JSON event and song data from S3 into staging tables,
and populates the fact and dimension tables with set-based transforms.

A full refresh is two runs: 'create-tables' drops and recreates the
schema, then 'etl' loads staging from S3 and inserts the distinct
derived rows. Both commands are destructive-by-rerun rather than
incremental; there is no upsert or partial-failure recovery.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./dwhctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createTablesCmd)
	rootCmd.AddCommand(etlCmd)
	rootCmd.AddCommand(statusCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
