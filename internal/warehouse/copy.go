package warehouse

import "fmt"

// CopyConfig holds the source locations and credentials for the staging
// COPY commands. All values come from configuration; nothing is hardcoded.
type CopyConfig struct {
	// LogData is the S3 URI of the user-activity log files.
	LogData string

	// LogJSONPath is the S3 URI of the JSONPaths document mapping log
	// records onto staging_events columns.
	LogJSONPath string

	// SongData is the S3 URI of the song catalog files.
	SongData string

	// RoleARN is the IAM role the cluster assumes to read the sources.
	RoleARN string

	// Region is the AWS region of the source buckets.
	Region string
}

// CopyStatements returns the staging load statements, events first.
// Loads are append-only: COPY never truncates, so running the loader twice
// without recreating the staging tables duplicates rows. The downstream
// transforms deduplicate with DISTINCT.
func CopyStatements(cfg CopyConfig) []Statement {
	return []Statement{
		{
			Name: "copy_staging_events",
			SQL: fmt.Sprintf(`COPY staging_events
FROM '%s'
CREDENTIALS 'aws_iam_role=%s'
FORMAT AS JSON '%s'
REGION '%s'`,
				cfg.LogData, cfg.RoleARN, cfg.LogJSONPath, cfg.Region),
		},
		{
			Name: "copy_staging_songs",
			SQL: fmt.Sprintf(`COPY staging_songs
FROM '%s'
CREDENTIALS 'aws_iam_role=%s'
FORMAT AS JSON 'auto'
REGION '%s'`,
				cfg.SongData, cfg.RoleARN, cfg.Region),
		},
	}
}
