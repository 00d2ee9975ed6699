package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RegistryService manages standalone check-in events and their rosters.
type RegistryService struct {
	events     ports.CheckInEventRepo
	attendees  ports.AttendeeRepo
	calendar   ports.EventRepo
	rsvps      ports.RSVPRepo
	dispatcher ports.DeliveryDispatcher
	alerter    ports.OpsAlerter
	logger     logger.Logger
}

func NewRegistryService(
	events ports.CheckInEventRepo,
	attendees ports.AttendeeRepo,
	calendar ports.EventRepo,
	rsvps ports.RSVPRepo,
	dispatcher ports.DeliveryDispatcher,
	alerter ports.OpsAlerter,
	logger logger.Logger,
) *RegistryService {
	return &RegistryService{
		events:     events,
		attendees:  attendees,
		calendar:   calendar,
		rsvps:      rsvps,
		dispatcher: dispatcher,
		alerter:    alerter,
		logger:     logger,
	}
}

func (s *RegistryService) Create(ctx context.Context, input domain.CreateCheckInEventInput) (*domain.CheckInEvent, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	date, err := time.Parse(domain.DateLayout, input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	if input.Time != "" {
		if _, err = time.Parse(domain.TimeLayout, input.Time); err != nil {
			return nil, fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
		}
	}

	if input.MaxAttendees != nil && *input.MaxAttendees <= 0 {
		return nil, fmt.Errorf("%w: max_attendees must be positive", domain.ErrValidation)
	}

	event := &domain.CheckInEvent{
		ID:           uuid.New().String(),
		Title:        title,
		Date:         date,
		Time:         input.Time,
		Location:     strings.TrimSpace(input.Location),
		MaxAttendees: input.MaxAttendees,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    time.Now().UTC(),
	}

	if err = s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create check-in event: %w", err)
	}

	s.logger.Info("check-in event created",
		logger.String("checkin_event_id", event.ID),
		logger.String("created_by", event.CreatedBy),
	)

	return event, nil
}

func (s *RegistryService) Get(ctx context.Context, id string) (*domain.CheckInEvent, error) {
	return s.events.GetByID(ctx, id)
}

func (s *RegistryService) List(ctx context.Context) ([]*domain.CheckInEvent, error) {
	return s.events.List(ctx)
}

// Delete removes the event with its attendees and check-ins. Deliveries still
// in flight for those attendees are discarded when they try to record a result.
func (s *RegistryService) Delete(ctx context.Context, id string) (domain.DeletedCounts, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.DeletedCounts{}, err
	}

	counts, err := s.events.Delete(ctx, id)
	if err != nil {
		return domain.DeletedCounts{}, fmt.Errorf("delete check-in event: %w", err)
	}

	s.logger.Info("check-in event deleted",
		logger.String("checkin_event_id", id),
		logger.Int("attendees", counts.Attendees),
		logger.Int("check_ins", counts.CheckIns),
	)

	go s.alerter.NotifyRosterDeleted(context.WithoutCancel(ctx), event, counts)

	return counts, nil
}

func (s *RegistryService) AddAttendee(ctx context.Context, input domain.AddAttendeeInput) (*domain.QRAttendee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(input.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	if input.Adults < 0 || input.Kids < 0 {
		return nil, fmt.Errorf("%w: adults and kids must not be negative", domain.ErrValidation)
	}
	for item, n := range input.FoodCounts {
		if n < 0 {
			return nil, fmt.Errorf("%w: food count for %q must not be negative", domain.ErrValidation, item)
		}
	}

	food := input.FoodCounts
	if food == nil {
		food = map[string]int{}
	}

	attendee := &domain.QRAttendee{
		ID:         uuid.New().String(),
		EventID:    input.EventID,
		Name:       name,
		Email:      addr.Address,
		Adults:     input.Adults,
		Kids:       input.Kids,
		FoodCounts: food,
		Delivery:   domain.NewDelivery(),
		CreatedAt:  time.Now().UTC(),
	}

	if err = s.attendees.Create(ctx, attendee); err != nil {
		return nil, fmt.Errorf("add attendee: %w", err)
	}

	s.logger.Info("attendee added",
		logger.String("attendee_id", attendee.ID),
		logger.String("checkin_event_id", attendee.EventID),
	)

	s.dispatcher.Dispatch(ctx, attendee.Ref())

	return attendee, nil
}

// ListAttendees returns the roster of a standalone check-in event or, when
// no such event exists, of the calendar event with that id.
func (s *RegistryService) ListAttendees(ctx context.Context, rosterID string) ([]*domain.AttendeeView, error) {
	_, err := s.events.GetByID(ctx, rosterID)
	if err == nil {
		return s.attendees.ListByEvent(ctx, rosterID)
	}
	if !errors.Is(err, domain.ErrCheckInEventNotFound) {
		return nil, err
	}

	if _, err = s.calendar.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrRosterNotFound
		}
		return nil, err
	}

	return s.rsvps.ListAttendees(ctx, rosterID)
}
