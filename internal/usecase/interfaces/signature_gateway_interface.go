package interfaces

import (
	"context"
	"encoding/json"

	"escola_crm/internal/domain/entities"
)

// ISignatureGateway abstracts the external e-signature provider.
//
// CreateEnvelope submits the assembled envelope and returns the provider
// response body verbatim; callers persist it in metadata for later
// correlation. Transport and provider errors are returned as err — the
// envelope use case converts them into a structured result and never lets
// them cross the API boundary.
type ISignatureGateway interface {
	CreateEnvelope(ctx context.Context, req entities.EnvelopeRequest) (json.RawMessage, error)
}
