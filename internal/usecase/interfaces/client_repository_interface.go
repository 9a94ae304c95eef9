package interfaces

import (
	"context"
	"escola_crm/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Upsert(ctx context.Context, c entities.Client) (entities.Client, error)
}
