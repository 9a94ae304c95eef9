package interfaces

import (
	"context"
	"escola_crm/internal/domain/entities"
)

// ISignerContactRepository looks up fixed-role signers (co-signer,
// witnesses) by their well-known role identifiers. A zero-value
// SignerContact means the role is not configured.

type ISignerContactRepository interface {
	GetByRole(ctx context.Context, role string) (entities.SignerContact, error)
}
