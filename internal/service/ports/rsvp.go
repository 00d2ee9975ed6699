package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

type RSVPRepo interface {
	// Admit inserts r if the event still accepts it at now. Capacity, deadline
	// and uniqueness are checked in the same transaction as the insert.
	Admit(ctx context.Context, r *domain.RSVPResponse, now time.Time) error
	GetByID(ctx context.Context, id string) (*domain.RSVPResponse, error)
	ConfirmPayment(ctx context.Context, id, reference string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.RSVPResponse, error)
	ListAttendees(ctx context.Context, eventID string) ([]*domain.AttendeeView, error)
}
