package aws

import "context"

// MockClient implements Client for tests.
type MockClient struct {
	// Identity is returned by VerifyCredentials.
	Identity *CallerIdentity

	// IdentityErr, if set, is returned by VerifyCredentials.
	IdentityErr error

	// Objects maps "bucket/key" to existence.
	Objects map[string]bool

	// Prefixes maps "bucket/prefix" to whether objects exist under it.
	Prefixes map[string]bool

	// Err, if set, is returned by every S3 call.
	Err error
}

// VerifyCredentials returns the configured identity or error.
func (m *MockClient) VerifyCredentials(ctx context.Context) (*CallerIdentity, error) {
	if m.IdentityErr != nil {
		return nil, m.IdentityErr
	}
	if m.Identity != nil {
		return m.Identity, nil
	}
	return &CallerIdentity{
		Account: "123456789012",
		ARN:     "arn:aws:iam::123456789012:user/test",
		UserID:  "AIDATEST",
	}, nil
}

// ObjectExists consults the Objects map.
func (m *MockClient) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Objects[bucket+"/"+key], nil
}

// PrefixHasObjects consults the Prefixes map.
func (m *MockClient) PrefixHasObjects(ctx context.Context, bucket, prefix string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Prefixes[bucket+"/"+prefix], nil
}
