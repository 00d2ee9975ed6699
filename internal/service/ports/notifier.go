package ports

import (
	"context"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

// CredentialMailer delivers a credential email with the QR image attached.
type CredentialMailer interface {
	SendCredential(ctx context.Context, rec *domain.Recipient, qrPNG []byte) error
}

type OpsAlerter interface {
	NotifyDeliveryExhausted(ctx context.Context, rec *domain.Recipient, reason string)
	NotifyRosterDeleted(ctx context.Context, event *domain.CheckInEvent, counts domain.DeletedCounts)
}

type CredentialIssuer interface {
	Issue(ctx context.Context, ref domain.AttendeeRef) (string, error)
}

// DeliveryDispatcher starts delivery of ref in the background.
type DeliveryDispatcher interface {
	Dispatch(ctx context.Context, ref domain.AttendeeRef)
}
