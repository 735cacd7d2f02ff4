package interfaces

import (
	"context"
	"fieldops/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// A zero-value entity with an empty ID means "not found"; repositories do not
// return errors for missing items.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdatePricingMode(ctx context.Context, id string, mode entities.PricingMode) (entities.Job, error)
}
