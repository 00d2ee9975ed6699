package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/credential"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/metrics"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ExpiryPolicy decides when a credential stops being accepted.
type ExpiryPolicy struct {
	RSVPGrace        time.Duration
	StandaloneExpiry bool
	StandaloneGrace  time.Duration
}

// ExpiresAt returns the instant after which holder's credential is rejected;
// ok is false when it never expires.
func (p ExpiryPolicy) ExpiresAt(holder *domain.CredentialHolder) (time.Time, bool) {
	switch holder.Ref.Flow {
	case domain.FlowRSVP:
		return holder.EventDate.Add(p.RSVPGrace), true
	case domain.FlowStandalone:
		if !p.StandaloneExpiry {
			return time.Time{}, false
		}
		return holder.EventDate.Add(24 * time.Hour).Add(p.StandaloneGrace), true
	}
	return time.Time{}, false
}

type CheckInService struct {
	stores  map[domain.Flow]ports.CredentialStore
	scanLog ports.ScanLog
	expiry  ExpiryPolicy
	logger  logger.Logger
	now     func() time.Time
}

func NewCheckInService(
	rsvpStore ports.CredentialStore,
	standaloneStore ports.CredentialStore,
	scanLog ports.ScanLog,
	expiry ExpiryPolicy,
	logger logger.Logger,
) *CheckInService {
	return &CheckInService{
		stores: map[domain.Flow]ports.CredentialStore{
			domain.FlowRSVP:       rsvpStore,
			domain.FlowStandalone: standaloneStore,
		},
		scanLog: scanLog,
		expiry:  expiry,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Scan checks in the holder of code. A repeated scan is not an error: it
// returns ScanAlreadyCheckedIn with the original check-in time.
func (s *CheckInService) Scan(ctx context.Context, code, scannedBy string) (*domain.ScanResult, error) {
	now := s.now()
	token := credential.Normalize(code)
	entry := &domain.ScanRecord{
		ID:        uuid.New().String(),
		Code:      token,
		ScannedBy: scannedBy,
		ScannedAt: now,
	}

	result, err := s.scan(ctx, token, scannedBy, now, entry)
	switch {
	case err == nil:
		entry.Outcome = result.Outcome
	case errors.Is(err, domain.ErrUnknownCredential):
		entry.Outcome = domain.ScanUnknown
	case errors.Is(err, domain.ErrCredentialExpired):
		entry.Outcome = domain.ScanExpired
	default:
		entry.Outcome = domain.ScanFailed
	}

	metrics.TrackScan(string(entry.Flow), string(entry.Outcome))
	s.record(ctx, entry)

	return result, err
}

func (s *CheckInService) scan(
	ctx context.Context, token, scannedBy string, now time.Time, entry *domain.ScanRecord,
) (*domain.ScanResult, error) {
	flow, ok := domain.FlowOfToken(token)
	if !ok {
		return nil, domain.ErrUnknownCredential
	}
	entry.Flow = flow

	holder, err := s.stores[flow].Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	entry.AttendeeID = &holder.Ref.ID

	if expiresAt, ok := s.expiry.ExpiresAt(holder); ok && now.After(expiresAt) {
		return nil, domain.ErrCredentialExpired
	}

	at, created, err := s.stores[flow].CheckIn(ctx, holder, now, scannedBy)
	if err != nil {
		return nil, fmt.Errorf("record check-in: %w", err)
	}

	result := &domain.ScanResult{
		Outcome:      domain.ScanCheckedIn,
		Ref:          holder.Ref,
		AttendeeName: holder.Name,
		CheckedInAt:  at,
	}
	if !created {
		result.Outcome = domain.ScanAlreadyCheckedIn
	}

	s.logger.Info("credential scanned",
		logger.String("flow", string(flow)),
		logger.String("attendee_id", holder.Ref.ID),
		logger.String("outcome", string(result.Outcome)),
		logger.String("scanned_by", scannedBy),
	)

	return result, nil
}

func (s *CheckInService) record(ctx context.Context, entry *domain.ScanRecord) {
	if err := s.scanLog.Record(ctx, entry); err != nil {
		s.logger.Error("failed to record scan",
			logger.String("scan_id", entry.ID),
			logger.String("outcome", string(entry.Outcome)),
			logger.String("error", err.Error()),
		)
	}
}
