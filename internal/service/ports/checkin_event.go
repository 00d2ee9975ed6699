package ports

import (
	"context"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

type CheckInEventRepo interface {
	Create(ctx context.Context, e *domain.CheckInEvent) error
	GetByID(ctx context.Context, id string) (*domain.CheckInEvent, error)
	List(ctx context.Context) ([]*domain.CheckInEvent, error)
	Delete(ctx context.Context, id string) (domain.DeletedCounts, error)
}

type AttendeeRepo interface {
	// Create inserts a into its roster, honouring the roster's max attendees.
	Create(ctx context.Context, a *domain.QRAttendee) error
	GetByID(ctx context.Context, id string) (*domain.QRAttendee, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendeeView, error)
	UnsentIDs(ctx context.Context, eventID string) ([]string, error)
}
