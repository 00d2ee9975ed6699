package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stpnv0/EventCheckIn/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	if input.RSVPDeadline != nil && input.RSVPDeadline.After(input.EventDate) {
		return nil, fmt.Errorf("%w: rsvp_deadline must not be after event_date", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		Location:        input.Location,
		EventDate:       input.EventDate.UTC(),
		RSVPRequired:    input.RSVPRequired,
		RSVPDeadline:    input.RSVPDeadline,
		MaxParticipants: input.MaxParticipants,
		RequiresPayment: input.RequiresPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var schema *domain.FormSchema
	if len(input.Fields) > 0 {
		schema = &domain.FormSchema{
			ID:        uuid.New().String(),
			EventID:   event.ID,
			Version:   1,
			Fields:    input.Fields,
			CreatedAt: now,
		}
		if err := schema.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, event, schema); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return &domain.EventDetails{Event: *event, Schema: schema, AvailableSpots: event.MaxParticipants}, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	schema, err := s.repo.LatestSchema(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load form schema: %w", err)
	}
	if schema.Version > 0 {
		details.Schema = schema
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// UpdateSchema appends a new form version. Responses already stored keep
// the version they were validated against.
func (s *EventService) UpdateSchema(ctx context.Context, eventID string, fields []domain.Field) (*domain.FormSchema, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	schema := &domain.FormSchema{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.AppendSchema(ctx, schema); err != nil {
		return nil, fmt.Errorf("append form schema: %w", err)
	}

	return schema, nil
}
