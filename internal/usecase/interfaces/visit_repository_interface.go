package interfaces

import (
	"context"
	"fieldops/internal/domain/entities"
)

// IVisitRepository abstracts DynamoDB persistence for Visit.
//
// The repository must be able to:
//   - list a job's visits ordered by visit number (pricing, mode lock checks)
//   - list all visits scheduled on a given day (dispatch board)

type IVisitRepository interface {
	Create(ctx context.Context, v entities.Visit) (entities.Visit, error)
	GetByID(ctx context.Context, id string) (entities.Visit, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Visit, error)
	ListByScheduledDay(ctx context.Context, day string) ([]entities.Visit, error)
	Update(ctx context.Context, v entities.Visit) (entities.Visit, error)
}
