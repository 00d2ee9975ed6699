package ports

import (
	"context"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, schema *domain.FormSchema) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	LatestSchema(ctx context.Context, eventID string) (*domain.FormSchema, error)
	AppendSchema(ctx context.Context, schema *domain.FormSchema) error
}
