package interfaces

import (
	"context"
	"escola_crm/internal/domain/entities"
)

// IEnrollmentRepository abstracts DynamoDB persistence for Enrollment.
//
// GetByID and GetByPublicToken return a zero-value Enrollment (ID == "")
// when nothing matches; soft-deleted records are treated as absent.

type IEnrollmentRepository interface {
	Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	GetByID(ctx context.Context, id string) (entities.Enrollment, error)
	GetByPublicToken(ctx context.Context, token string) (entities.Enrollment, error)
	Update(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	SoftDelete(ctx context.Context, id string) error
	DeletePermanently(ctx context.Context, id string) error
}
