// Package config handles configuration management for dwhctl.
// Configuration is loaded from a config file and CLI flags; CLI flags
// take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for dwhctl.
type Config struct {
	// Cluster holds the warehouse connection parameters.
	Cluster ClusterConfig `mapstructure:"cluster"`

	// IAMRole holds the role the warehouse assumes to read from S3.
	IAMRole IAMRoleConfig `mapstructure:"iam_role"`

	// S3 holds the source data locations for staging loads.
	S3 S3Config `mapstructure:"s3"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// ClusterConfig holds the warehouse connection parameters.
type ClusterConfig struct {
	Host     string `mapstructure:"host"`
	DBName   string `mapstructure:"dbname"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Port     int    `mapstructure:"port"`
}

// IAMRoleConfig holds the IAM role the COPY commands authenticate with.
type IAMRoleConfig struct {
	// ARN is the role ARN passed in the COPY CREDENTIALS clause.
	ARN string `mapstructure:"arn"`
}

// S3Config holds the source file locations for the staging loads.
type S3Config struct {
	// LogData is the S3 URI of the user-activity log files.
	LogData string `mapstructure:"log_data"`

	// LogJSONPath is the S3 URI of the JSONPaths document that maps
	// log records onto staging_events columns.
	LogJSONPath string `mapstructure:"log_jsonpath"`

	// SongData is the S3 URI of the song catalog files.
	SongData string `mapstructure:"song_data"`

	// Region is the AWS region the source buckets live in.
	Region string `mapstructure:"region"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Cluster: ClusterConfig{
			Port: 5439,
		},
		S3: S3Config{
			Region: "us-west-2",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./dwhctl.yaml
// 3. ~/.config/dwhctl/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("dwhctl")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "dwhctl"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ConnString renders the cluster section as a pgx connection string.
func (c *Config) ConnString() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
		c.Cluster.Host, c.Cluster.Port, c.Cluster.DBName,
		c.Cluster.User, c.Cluster.Password)
}

// Validate checks that the warehouse connection parameters are present.
func (c *Config) Validate() error {
	if c.Cluster.Host == "" {
		return fmt.Errorf("cluster host is required")
	}
	if c.Cluster.DBName == "" {
		return fmt.Errorf("cluster dbname is required")
	}
	if c.Cluster.User == "" {
		return fmt.Errorf("cluster user is required")
	}
	if c.Cluster.Port < 1 {
		return fmt.Errorf("cluster port must be positive")
	}
	return nil
}

// ValidateETL checks configuration required for the etl command.
func (c *Config) ValidateETL() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IAMRole.ARN == "" {
		return fmt.Errorf("iam_role arn is required for etl")
	}
	if c.S3.LogData == "" {
		return fmt.Errorf("s3 log_data is required for etl")
	}
	if c.S3.LogJSONPath == "" {
		return fmt.Errorf("s3 log_jsonpath is required for etl")
	}
	if c.S3.SongData == "" {
		return fmt.Errorf("s3 song_data is required for etl")
	}
	if c.S3.Region == "" {
		return fmt.Errorf("s3 region is required for etl")
	}
	return nil
}
