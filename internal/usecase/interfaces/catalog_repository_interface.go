package interfaces

import (
	"context"
	"escola_crm/internal/domain/entities"
)

// Catalog repositories cover the read-mostly course structure the pipeline
// consumes: courses, their periods and the contract templates a period lists.

type ICourseRepository interface {
	GetByID(ctx context.Context, id string) (entities.Course, error)
}

type IPeriodRepository interface {
	GetByID(ctx context.Context, id string) (entities.Period, error)
	ListByCourseID(ctx context.Context, courseID string) ([]entities.Period, error)
}

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}
