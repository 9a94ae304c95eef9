package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"escola_crm/internal/usecase/interfaces"
)

// IMetadataUseCase exposes the per-enrollment fact table to the rest of the
// pipeline.
//
// Behavior contract:
//   - Set upserts; string values are stored raw, everything else is
//     JSON-encoded.
//   - Get returns the raw stored value ("" when absent).
//   - GetAll opportunistically JSON-decodes every value; values that are
//     not valid JSON come back as their raw string.

type IMetadataUseCase interface {
	Set(ctx context.Context, enrollmentID, key string, value any) error
	Get(ctx context.Context, enrollmentID, key string) (string, error)
	GetAll(ctx context.Context, enrollmentID string) (map[string]any, error)
}

type MetadataUseCase struct {
	repo interfaces.IMetadataRepository
}

var _ IMetadataUseCase = (*MetadataUseCase)(nil)

func NewMetadataUseCase(repo interfaces.IMetadataRepository) *MetadataUseCase {
	return &MetadataUseCase{repo: repo}
}

func (u *MetadataUseCase) Set(ctx context.Context, enrollmentID, key string, value any) error {
	if enrollmentID == "" || key == "" {
		return fmt.Errorf("metadata set: empty enrollment id or key")
	}

	raw, ok := value.(string)
	if !ok {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		raw = string(b)
	}
	return u.repo.Set(ctx, enrollmentID, key, raw)
}

func (u *MetadataUseCase) Get(ctx context.Context, enrollmentID, key string) (string, error) {
	return u.repo.Get(ctx, enrollmentID, key)
}

func (u *MetadataUseCase) GetAll(ctx context.Context, enrollmentID string) (map[string]any, error) {
	raw, err := u.repo.GetAll(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	decoded := make(map[string]any, len(raw))
	for k, v := range raw {
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			decoded[k] = v
			continue
		}
		decoded[k] = parsed
	}
	return decoded, nil
}
