package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/credential"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/metrics"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

var (
	errDiscarded  = errors.New("delivery discarded: attendee no longer exists")
	errSendFailed = errors.New("credential email not sent")
)

type DeliveryConfig struct {
	Policy    domain.RetryPolicy
	Workers   int
	BatchSize int
}

// DeliveryService issues credentials and emails them, tracking the outcome in
// the attendee's delivery columns.
type DeliveryService struct {
	issuer    ports.CredentialIssuer
	stores    map[domain.Flow]ports.DeliveryStore
	rosters   ports.CheckInEventRepo
	attendees ports.AttendeeRepo
	mailer    ports.CredentialMailer
	alerter   ports.OpsAlerter
	cfg       DeliveryConfig
	sem       chan struct{}
	wg        sync.WaitGroup
	logger    logger.Logger
	now       func() time.Time
}

func NewDeliveryService(
	issuer ports.CredentialIssuer,
	rsvpStore ports.DeliveryStore,
	standaloneStore ports.DeliveryStore,
	rosters ports.CheckInEventRepo,
	attendees ports.AttendeeRepo,
	mailer ports.CredentialMailer,
	alerter ports.OpsAlerter,
	cfg DeliveryConfig,
	logger logger.Logger,
) *DeliveryService {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}

	return &DeliveryService{
		issuer: issuer,
		stores: map[domain.Flow]ports.DeliveryStore{
			domain.FlowRSVP:       rsvpStore,
			domain.FlowStandalone: standaloneStore,
		},
		rosters:   rosters,
		attendees: attendees,
		mailer:    mailer,
		alerter:   alerter,
		cfg:       cfg,
		sem:       make(chan struct{}, cfg.Workers),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch delivers ref in a background goroutine. It never blocks the
// caller; at most cfg.Workers deliveries run at once.
func (s *DeliveryService) Dispatch(ctx context.Context, ref domain.AttendeeRef) {
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sem <- struct{}{}
		defer func() { <-s.sem }()

		if err := s.Deliver(ctx, ref); err != nil {
			s.logger.Warn("credential delivery failed",
				logger.String("flow", string(ref.Flow)),
				logger.String("attendee_id", ref.ID),
				logger.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until all dispatched deliveries have finished.
func (s *DeliveryService) Wait() {
	s.wg.Wait()
}

// Deliver is the automatic path: it only sends when the attendee's delivery
// can be claimed, so a sent or exhausted delivery is left alone.
func (s *DeliveryService) Deliver(ctx context.Context, ref domain.AttendeeRef) error {
	store, err := s.store(ref.Flow)
	if err != nil {
		return err
	}

	token, err := s.issuer.Issue(ctx, ref)
	if err != nil {
		if isMissingAttendee(err) {
			s.logger.Debug("delivery skipped, attendee gone", logger.String("attendee_id", ref.ID))
			return nil
		}
		return fmt.Errorf("issue credential: %w", err)
	}

	claimed, err := store.ClaimDelivery(ctx, ref.ID, s.cfg.Policy.Claim(s.now()))
	if err != nil {
		return err
	}
	if !claimed {
		s.logger.Debug("delivery not claimable",
			logger.String("flow", string(ref.Flow)),
			logger.String("attendee_id", ref.ID),
		)
		return nil
	}

	d, rec, err := s.attempt(ctx, store, ref, token)
	if errors.Is(err, errDiscarded) {
		s.logger.Info("delivery result discarded", logger.String("attendee_id", ref.ID))
		return nil
	}
	if err != nil {
		return err
	}

	if d.Status == domain.EmailFailed {
		if s.cfg.Policy.Exhausted(d) {
			rec.Delivery = d
			s.alerter.NotifyDeliveryExhausted(ctx, rec, *d.ErrorMessage)
		}
		return fmt.Errorf("%w: %s", errSendFailed, *d.ErrorMessage)
	}

	return nil
}

// Resend is the manual path. It ignores the sent state and the retry budget
// and keeps the retry counter as it is.
func (s *DeliveryService) Resend(ctx context.Context, attendeeID string) (domain.AttendeeRef, domain.Delivery, error) {
	ref, store, err := s.locate(ctx, attendeeID)
	if err != nil {
		return ref, domain.Delivery{}, err
	}

	token, err := s.issuer.Issue(ctx, ref)
	if err != nil {
		return ref, domain.Delivery{}, fmt.Errorf("issue credential: %w", err)
	}

	claimed, err := store.ClaimResend(ctx, ref.ID, s.now())
	if err != nil {
		return ref, domain.Delivery{}, err
	}
	if !claimed {
		return s.current(ctx, store, ref)
	}

	d, _, err := s.attempt(ctx, store, ref, token)
	if errors.Is(err, errDiscarded) {
		// a concurrent attempt recorded its result first
		s.logger.Info("resend result superseded", logger.String("attendee_id", ref.ID))
		return s.current(ctx, store, ref)
	}
	if err != nil {
		return ref, domain.Delivery{}, err
	}

	s.logger.Info("credential resent",
		logger.String("flow", string(ref.Flow)),
		logger.String("attendee_id", ref.ID),
		logger.String("status", string(d.Status)),
	)

	return ref, d, nil
}

// RetryDue delivers every due attendee of both flows and returns how many
// were attempted. One attendee's failure does not stop the others.
func (s *DeliveryService) RetryDue(ctx context.Context) (int, error) {
	now := s.now()

	var due []domain.AttendeeRef
	for _, flow := range domain.Flows {
		candidates, err := s.stores[flow].ListDue(ctx, s.cfg.Policy.MaxRetries, s.cfg.BatchSize)
		if err != nil {
			return 0, fmt.Errorf("list due %s deliveries: %w", flow, err)
		}
		for _, c := range candidates {
			if s.cfg.Policy.Due(c.Delivery, now) {
				due = append(due, c.Ref)
			}
		}
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for _, ref := range due {
		g.Go(func() error {
			if err := s.Deliver(ctx, ref); err != nil {
				s.logger.Warn("retry delivery failed",
					logger.String("flow", string(ref.Flow)),
					logger.String("attendee_id", ref.ID),
					logger.String("error", err.Error()),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return len(due), nil
}

// SendRoster dispatches delivery for every attendee of a standalone roster
// whose email has not been sent yet.
func (s *DeliveryService) SendRoster(ctx context.Context, rosterID string) (int, error) {
	if _, err := s.rosters.GetByID(ctx, rosterID); err != nil {
		return 0, err
	}

	ids, err := s.attendees.UnsentIDs(ctx, rosterID)
	if err != nil {
		return 0, fmt.Errorf("list unsent attendees: %w", err)
	}

	for _, id := range ids {
		s.Dispatch(ctx, domain.AttendeeRef{Flow: domain.FlowStandalone, ID: id})
	}

	s.logger.Info("roster delivery dispatched",
		logger.String("roster_id", rosterID),
		logger.Int("count", len(ids)),
	)

	return len(ids), nil
}

// attempt sends the credential of a claimed delivery and records the result.
// The returned Delivery mirrors what was persisted.
func (s *DeliveryService) attempt(
	ctx context.Context, store ports.DeliveryStore, ref domain.AttendeeRef, token string,
) (domain.Delivery, *domain.Recipient, error) {
	done := metrics.DeliveryStarted()
	defer done()
	started := time.Now()

	rec, err := store.LoadRecipient(ctx, ref.ID)
	if err != nil {
		if isMissingAttendee(err) {
			return domain.Delivery{}, nil, errDiscarded
		}
		return domain.Delivery{}, nil, fmt.Errorf("load recipient: %w", err)
	}
	rec.Credential = token

	sendErr := s.send(ctx, rec)
	at := s.now()
	d := rec.Delivery
	d.LastAttemptAt = &at

	if sendErr == nil {
		ok, err := store.MarkSent(ctx, ref.ID, at)
		if err != nil {
			return d, rec, err
		}
		if !ok {
			return d, rec, errDiscarded
		}
		metrics.TrackDelivery(string(ref.Flow), "sent", time.Since(started))

		d.Status = domain.EmailSent
		d.SentAt = &at
		d.ErrorMessage = nil
		return d, rec, nil
	}

	reason := sendErr.Error()
	retries, ok, err := store.MarkFailed(ctx, ref.ID, at, reason)
	if err != nil {
		return d, rec, err
	}
	if !ok {
		return d, rec, errDiscarded
	}
	metrics.TrackDelivery(string(ref.Flow), "failed", time.Since(started))

	d.Status = domain.EmailFailed
	d.RetryCount = retries
	d.ErrorMessage = &reason
	return d, rec, nil
}

func (s *DeliveryService) send(ctx context.Context, rec *domain.Recipient) error {
	png, err := credential.RenderQR(rec.Credential)
	if err != nil {
		return fmt.Errorf("render qr: %w", err)
	}

	sendCtx := ctx
	if s.cfg.Policy.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.cfg.Policy.AttemptTimeout)
		defer cancel()
	}

	return s.mailer.SendCredential(sendCtx, rec, png)
}

// current reports the delivery state as persisted, or ErrAttendeeNotFound
// when the attendee was removed.
func (s *DeliveryService) current(
	ctx context.Context, store ports.DeliveryStore, ref domain.AttendeeRef,
) (domain.AttendeeRef, domain.Delivery, error) {
	rec, err := store.LoadRecipient(ctx, ref.ID)
	if err != nil {
		if isMissingAttendee(err) {
			return ref, domain.Delivery{}, domain.ErrAttendeeNotFound
		}
		return ref, domain.Delivery{}, fmt.Errorf("load recipient: %w", err)
	}
	return ref, rec.Delivery, nil
}

// locate finds which flow an attendee id belongs to.
func (s *DeliveryService) locate(ctx context.Context, id string) (domain.AttendeeRef, ports.DeliveryStore, error) {
	for _, flow := range domain.Flows {
		store := s.stores[flow]
		_, err := store.LoadRecipient(ctx, id)
		if err == nil {
			return domain.AttendeeRef{Flow: flow, ID: id}, store, nil
		}
		if !isMissingAttendee(err) {
			return domain.AttendeeRef{}, nil, fmt.Errorf("load recipient: %w", err)
		}
	}
	return domain.AttendeeRef{}, nil, domain.ErrAttendeeNotFound
}

func (s *DeliveryService) store(flow domain.Flow) (ports.DeliveryStore, error) {
	store, ok := s.stores[flow]
	if !ok {
		return nil, fmt.Errorf("unknown flow %q", flow)
	}
	return store, nil
}

func isMissingAttendee(err error) bool {
	return errors.Is(err, domain.ErrRSVPNotFound) || errors.Is(err, domain.ErrAttendeeNotFound)
}
