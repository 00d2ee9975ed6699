package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

// CredentialStore is implemented once per flow.
type CredentialStore interface {
	// BindCredential stores token unless a credential is already bound and
	// returns whichever token the record holds afterwards.
	BindCredential(ctx context.Context, id, token string) (string, error)
	Resolve(ctx context.Context, token string) (*domain.CredentialHolder, error)
	// CheckIn records the check-in at most once. created is false when a
	// check-in already existed; at is then the original timestamp.
	CheckIn(ctx context.Context, holder *domain.CredentialHolder, now time.Time, scannedBy string) (at time.Time, created bool, err error)
}

// DeliveryStore is implemented once per flow. Mark methods report false when
// the row no longer exists or is not in the expected state.
type DeliveryStore interface {
	LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error)
	ClaimDelivery(ctx context.Context, id string, claim domain.DeliveryClaim) (bool, error)
	ClaimResend(ctx context.Context, id string, now time.Time) (bool, error)
	MarkSent(ctx context.Context, id string, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, id string, at time.Time, reason string) (retries int, ok bool, err error)
	ListDue(ctx context.Context, maxRetries, limit int) ([]domain.DeliveryCandidate, error)
}

type ScanLog interface {
	Record(ctx context.Context, rec *domain.ScanRecord) error
}
