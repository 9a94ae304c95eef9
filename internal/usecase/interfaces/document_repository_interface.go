package interfaces

import (
	"context"
	"escola_crm/internal/domain/entities"
)

// IDocumentRepository abstracts the rendered-artifact catalog.

type IDocumentRepository interface {
	Put(ctx context.Context, d entities.Document) (entities.Document, error)
	ListByEnrollmentID(ctx context.Context, enrollmentID string) ([]entities.Document, error)
	Delete(ctx context.Context, id string) error
}
