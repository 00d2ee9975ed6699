package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const eventColumns = `id, title, description, location, event_date, rsvp_required,
		rsvp_deadline, max_participants, requires_payment, created_at, updated_at`

func scanEvent(row rowScanner, e *domain.Event) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate, &e.RSVPRequired,
		&e.RSVPDeadline, &e.MaxParticipants, &e.RequiresPayment, &e.CreatedAt, &e.UpdatedAt,
	)
}

// Create stores the event and, if given, the first version of its form.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, schema *domain.FormSchema) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, title, description, location, event_date, rsvp_required,
			  		rsvp_deadline, max_participants, requires_payment, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	if _, err = tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Location, e.EventDate, e.RSVPRequired,
		e.RSVPDeadline, e.MaxParticipants, e.RequiresPayment, now, now,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt, e.UpdatedAt = now, now

	if schema != nil {
		if err = insertSchema(ctx, tx, schema); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.location, e.event_date, e.rsvp_required,
			e.rsvp_deadline, e.max_participants, e.requires_payment, e.created_at, e.updated_at,
			COUNT(r.id) AS registered
		FROM events e
		LEFT JOIN rsvp_responses r ON r.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	e := &d.Event
	err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.EventDate, &e.RSVPRequired,
		&e.RSVPDeadline, &e.MaxParticipants, &e.RequiresPayment, &e.CreatedAt, &e.UpdatedAt,
		&d.Registered,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event details: %w", err)
	}
	if e.MaxParticipants != nil {
		available := max(*e.MaxParticipants-d.Registered, 0)
		d.AvailableSpots = &available
	}

	return &d, nil
}

// LatestSchema returns the newest form version, or an empty version 0 schema
// when the event has no form.
func (r *EventRepository) LatestSchema(ctx context.Context, eventID string) (*domain.FormSchema, error) {
	query := `SELECT id, event_id, version, fields, created_at
			  FROM event_schemas
			  WHERE event_id = $1
			  ORDER BY version DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get schema: %w", err)
	}

	var (
		s      domain.FormSchema
		fields []byte
	)
	if err = row.Scan(&s.ID, &s.EventID, &s.Version, &fields, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.FormSchema{EventID: eventID}, nil
		}
		return nil, fmt.Errorf("scan schema: %w", err)
	}
	if err = json.Unmarshal(fields, &s.Fields); err != nil {
		return nil, fmt.Errorf("decode schema fields: %w", err)
	}

	return &s, nil
}

// AppendSchema stores schema as the next version of its event's form. The
// version is assigned here; existing versions are never modified.
func (r *EventRepository) AppendSchema(ctx context.Context, schema *domain.FormSchema) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err = tx.QueryRowContext(ctx,
		`SELECT TRUE FROM events WHERE id = $1 FOR UPDATE`, schema.EventID,
	).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM event_schemas WHERE event_id = $1`, schema.EventID,
	).Scan(&schema.Version); err != nil {
		return fmt.Errorf("next schema version: %w", err)
	}

	if err = insertSchema(ctx, tx, schema); err != nil {
		return err
	}

	return tx.Commit()
}

func insertSchema(ctx context.Context, tx execer, s *domain.FormSchema) error {
	fields, err := json.Marshal(s.Fields)
	if err != nil {
		return fmt.Errorf("encode schema fields: %w", err)
	}
	if s.Version == 0 {
		s.Version = 1
	}
	s.CreatedAt = time.Now().UTC()

	query := `INSERT INTO event_schemas (id, event_id, version, fields, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, s.ID, s.EventID, s.Version, fields, s.CreatedAt); err != nil {
		return fmt.Errorf("insert schema: %w", err)
	}
	return nil
}
