package interfaces

import (
	"context"
	"fieldops/internal/domain/entities"
)

// ITechnicianRepository abstracts DynamoDB persistence for Technician.

type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context, activeOnly bool) ([]entities.Technician, error)
	Update(ctx context.Context, t entities.Technician) (entities.Technician, error)
}
