package interfaces

import "context"

// IMetadataRepository abstracts the per-enrollment key/value fact table.
//
// Set upserts (one value per key per enrollment). Get returns the raw value
// or "" when the key is absent. GetAll returns every raw pair for the
// enrollment; JSON decoding is the caller's concern.

type IMetadataRepository interface {
	Set(ctx context.Context, enrollmentID, key, value string) error
	Get(ctx context.Context, enrollmentID, key string) (string, error)
	GetAll(ctx context.Context, enrollmentID string) (map[string]string, error)
}
