package interfaces

import (
	"context"
	"fieldops/internal/domain/entities"
)

// IConsentRepository abstracts DynamoDB persistence for the append-only
// consent event log.

type IConsentRepository interface {
	Create(ctx context.Context, e entities.ConsentEvent) (entities.ConsentEvent, error)
	ListByPhone(ctx context.Context, phone string) ([]entities.ConsentEvent, error)
}
