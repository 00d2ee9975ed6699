package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/form"
	"github.com/stpnv0/EventCheckIn/internal/metrics"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RSVPService struct {
	rsvpRepo   ports.RSVPRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	dispatcher ports.DeliveryDispatcher
	logger     logger.Logger
	now        func() time.Time
}

func NewRSVPService(
	rsvpRepo ports.RSVPRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	dispatcher ports.DeliveryDispatcher,
	logger logger.Logger,
) *RSVPService {
	return &RSVPService{
		rsvpRepo:   rsvpRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SubmitRSVP validates the submission against the event's latest form and
// admits it. Capacity, deadline and duplicate checks run inside the
// repository's transaction; the checks here only fail fast.
func (s *RSVPService) SubmitRSVP(
	ctx context.Context, eventID, userID string, submission map[string]any,
) (*domain.RSVPResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.RSVPRequired {
		metrics.TrackAdmission("not_applicable")
		return nil, domain.ErrRSVPNotApplicable
	}
	now := s.now()
	if !event.AcceptsAt(now) {
		metrics.TrackAdmission("deadline_expired")
		return nil, domain.ErrDeadlineExpired
	}

	if _, err = s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	schema, err := s.eventRepo.LatestSchema(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load form schema: %w", err)
	}

	responses, err := form.Validate(schema, submission)
	if err != nil {
		metrics.TrackAdmission("invalid")
		return nil, err
	}

	rsvp := &domain.RSVPResponse{
		ID:               uuid.New().String(),
		EventID:          eventID,
		UserID:           userID,
		SchemaVersion:    schema.Version,
		Responses:        responses,
		PaymentConfirmed: !event.RequiresPayment,
		Delivery:         domain.NewDelivery(),
		CreatedAt:        now,
	}

	if err = s.rsvpRepo.Admit(ctx, rsvp, now); err != nil {
		metrics.TrackAdmission(admissionOutcome(err))
		return nil, fmt.Errorf("admit rsvp: %w", err)
	}
	metrics.TrackAdmission("admitted")

	s.logger.Info("rsvp admitted",
		logger.String("rsvp_id", rsvp.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("schema_version", rsvp.SchemaVersion),
	)

	if rsvp.PaymentConfirmed {
		s.dispatcher.Dispatch(ctx, rsvp.Ref())
	}

	return rsvp, nil
}

// ConfirmPayment opens the payment gate once and starts credential delivery.
func (s *RSVPService) ConfirmPayment(ctx context.Context, rsvpID, reference string) (*domain.RSVPResponse, error) {
	if err := s.rsvpRepo.ConfirmPayment(ctx, rsvpID, reference); err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	rsvp, err := s.rsvpRepo.GetByID(ctx, rsvpID)
	if err != nil {
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	s.logger.Info("rsvp payment confirmed",
		logger.String("rsvp_id", rsvpID),
		logger.String("event_id", rsvp.EventID),
	)

	s.dispatcher.Dispatch(ctx, rsvp.Ref())

	return rsvp, nil
}

func (s *RSVPService) GetByID(ctx context.Context, id string) (*domain.RSVPResponse, error) {
	return s.rsvpRepo.GetByID(ctx, id)
}

func (s *RSVPService) ListByUser(ctx context.Context, userID string) ([]*domain.RSVPResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.rsvpRepo.ListByUser(ctx, userID)
}

func admissionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDeadlineExpired):
		return "deadline_expired"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, domain.ErrRSVPNotApplicable):
		return "not_applicable"
	default:
		return "error"
	}
}
