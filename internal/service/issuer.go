package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/EventCheckIn/internal/credential"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxIssueAttempts = 3

// IssuerService binds one opaque credential token per attendee.
type IssuerService struct {
	stores map[domain.Flow]ports.CredentialStore
	rsvps  ports.RSVPRepo
	logger logger.Logger
}

func NewIssuerService(
	rsvpStore ports.CredentialStore,
	standaloneStore ports.CredentialStore,
	rsvps ports.RSVPRepo,
	logger logger.Logger,
) *IssuerService {
	return &IssuerService{
		stores: map[domain.Flow]ports.CredentialStore{
			domain.FlowRSVP:       rsvpStore,
			domain.FlowStandalone: standaloneStore,
		},
		rsvps:  rsvps,
		logger: logger,
	}
}

// Issue returns the credential bound to ref, creating it on first call.
// Repeated calls return the same token.
func (s *IssuerService) Issue(ctx context.Context, ref domain.AttendeeRef) (string, error) {
	store, ok := s.stores[ref.Flow]
	if !ok {
		return "", fmt.Errorf("issue credential: unknown flow %q", ref.Flow)
	}

	if ref.Flow == domain.FlowRSVP {
		rsvp, err := s.rsvps.GetByID(ctx, ref.ID)
		if err != nil {
			return "", fmt.Errorf("get rsvp: %w", err)
		}
		if !rsvp.PaymentConfirmed {
			return "", domain.ErrPaymentNotConfirmed
		}
		if token := rsvp.Credential(); token != "" {
			return token, nil
		}
	}

	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		token, err := credential.NewToken(ref.Flow)
		if err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}

		bound, err := store.BindCredential(ctx, ref.ID, token)
		if errors.Is(err, domain.ErrCredentialTaken) {
			s.logger.Warn("credential token collision, regenerating",
				logger.String("flow", string(ref.Flow)),
				logger.String("attendee_id", ref.ID),
				logger.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("bind credential: %w", err)
		}

		if bound == token {
			s.logger.Info("credential issued",
				logger.String("flow", string(ref.Flow)),
				logger.String("attendee_id", ref.ID),
			)
		}
		return bound, nil
	}

	return "", fmt.Errorf("issue credential for %s: %w", ref.ID, domain.ErrCredentialTaken)
}
