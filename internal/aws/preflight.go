package aws

import (
	"context"
	"fmt"

	"github.com/quangvdm00/datawarehouse-aws/internal/logging"
)

// Sources holds the S3 locations an ETL run reads from.
type Sources struct {
	// LogData is the prefix holding user-activity log files.
	LogData string

	// LogJSONPath is the JSONPaths document object.
	LogJSONPath string

	// SongData is the prefix holding song catalog files.
	SongData string
}

// Preflight verifies that credentials resolve and every configured source
// is present before any COPY runs. Errors name the offending URI.
func Preflight(ctx context.Context, client Client, src Sources) error {
	identity, err := client.VerifyCredentials(ctx)
	if err != nil {
		return fmt.Errorf("verifying AWS credentials: %w", err)
	}
	logging.Debug().
		Str("account", identity.Account).
		Str("arn", identity.ARN).
		Msg("Preflight caller identity")

	for _, prefix := range []string{src.LogData, src.SongData} {
		bucket, key, err := ParseS3URI(prefix)
		if err != nil {
			return err
		}
		ok, err := client.PrefixHasObjects(ctx, bucket, key)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no objects found under %s", prefix)
		}
	}

	bucket, key, err := ParseS3URI(src.LogJSONPath)
	if err != nil {
		return err
	}
	ok, err := client.ObjectExists(ctx, bucket, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("jsonpaths document %s does not exist", src.LogJSONPath)
	}

	return nil
}
