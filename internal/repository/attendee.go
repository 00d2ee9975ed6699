package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type AttendeeRepository struct {
	deliveryTable
}

func NewAttendeeRepo(db *dbpg.DB) *AttendeeRepository {
	return &AttendeeRepository{
		deliveryTable: deliveryTable{
			db:       db,
			strategy: defaultStrategy(),
			table:    "qr_attendees",
			flow:     domain.FlowStandalone,
			notFound: domain.ErrAttendeeNotFound,
		},
	}
}

const attendeeColumns = `id, event_id, name, email, adults, kids, food_counts, qr_code, ` +
	deliveryColumns + `, created_at`

// Create adds a to its roster. The roster row is locked so the max_attendees
// check and the insert are one unit.
func (r *AttendeeRepository) Create(ctx context.Context, a *domain.QRAttendee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxAttendees *int
	if err = tx.QueryRowContext(ctx,
		`SELECT max_attendees FROM checkin_events WHERE id = $1 FOR UPDATE`, a.EventID,
	).Scan(&maxAttendees); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCheckInEventNotFound
		}
		return fmt.Errorf("lock check-in event: %w", err)
	}

	if maxAttendees != nil {
		var count int
		if err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM qr_attendees WHERE event_id = $1`, a.EventID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count attendees: %w", err)
		}
		if count >= *maxAttendees {
			return domain.ErrCapacityExceeded
		}
	}

	food, err := json.Marshal(a.FoodCounts)
	if err != nil {
		return fmt.Errorf("encode food counts: %w", err)
	}

	query := `INSERT INTO qr_attendees (id, event_id, name, email, adults, kids, food_counts, email_status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, query,
		a.ID, a.EventID, a.Name, a.Email, a.Adults, a.Kids, food, a.Delivery.Status, a.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert attendee: %w", err)
	}

	return tx.Commit()
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id string) (*domain.QRAttendee, error) {
	query := `SELECT ` + attendeeColumns + `
			  FROM qr_attendees
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	var (
		a    domain.QRAttendee
		food []byte
	)
	dest := []any{&a.ID, &a.EventID, &a.Name, &a.Email, &a.Adults, &a.Kids, &food, &a.QRCode}
	dest = append(dest, scanDelivery(&a.Delivery)...)
	if err = row.Scan(append(dest, &a.CreatedAt)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("scan attendee: %w", err)
	}
	if err = json.Unmarshal(food, &a.FoodCounts); err != nil {
		return nil, fmt.Errorf("decode food counts: %w", err)
	}

	return &a, nil
}

func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendeeView, error) {
	query := `SELECT a.id, a.name, a.email,
			  		a.email_status, a.email_sent_at, a.email_retry_count, a.email_error, a.email_last_attempt_at,
			  		c.checked_in_at
			  FROM qr_attendees a
			  LEFT JOIN check_ins c ON c.attendee_id = a.id
			  WHERE a.event_id = $1
			  ORDER BY a.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []*domain.AttendeeView
	for rows.Next() {
		v := domain.AttendeeView{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone}}
		dest := append([]any{&v.Ref.ID, &v.Name, &v.Email}, scanDelivery(&v.Delivery)...)
		if err = rows.Scan(append(dest, &v.CheckedInAt)...); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

// UnsentIDs lists attendees of a roster whose credential email is not sent yet.
func (r *AttendeeRepository) UnsentIDs(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT id FROM qr_attendees
			  WHERE event_id = $1 AND email_status <> 'sent'
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list unsent attendees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan attendee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *AttendeeRepository) LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error) {
	query := `SELECT a.id, a.name, a.email, COALESCE(a.qr_code, ''),
			  		e.title, e.event_date, e.event_time, e.location,
			  		a.email_status, a.email_sent_at, a.email_retry_count, a.email_error, a.email_last_attempt_at
			  FROM qr_attendees a
			  JOIN checkin_events e ON e.id = a.event_id
			  WHERE a.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("load attendee recipient: %w", err)
	}

	rec := domain.Recipient{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone}}
	dest := []any{
		&rec.Ref.ID, &rec.Name, &rec.Email, &rec.Credential,
		&rec.EventTitle, &rec.EventDate, &rec.EventTime, &rec.Location,
	}
	if err = row.Scan(append(dest, scanDelivery(&rec.Delivery)...)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("scan attendee recipient: %w", err)
	}

	return &rec, nil
}

func (r *AttendeeRepository) Resolve(ctx context.Context, token string) (*domain.CredentialHolder, error) {
	query := `SELECT a.id, a.name, a.event_id, e.event_date
			  FROM qr_attendees a
			  JOIN checkin_events e ON e.id = a.event_id
			  WHERE a.qr_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("resolve attendee credential: %w", err)
	}

	h := domain.CredentialHolder{Ref: domain.AttendeeRef{Flow: domain.FlowStandalone}}
	if err = row.Scan(&h.Ref.ID, &h.Name, &h.RosterID, &h.EventDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownCredential
		}
		return nil, fmt.Errorf("scan attendee credential: %w", err)
	}

	return &h, nil
}

// CheckIn inserts the check_ins row; the unique attendee_id makes a second
// insert a no-op, after which the existing row is read back.
func (r *AttendeeRepository) CheckIn(
	ctx context.Context, holder *domain.CredentialHolder, now time.Time, scannedBy string,
) (time.Time, bool, error) {
	query := `INSERT INTO check_ins (id, attendee_id, event_id, checked_in_at, scanned_by)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (attendee_id) DO NOTHING
			  RETURNING checked_in_at`

	var at time.Time
	err := r.db.Master.QueryRowContext(
		ctx, query,
		uuid.New().String(), holder.Ref.ID, holder.RosterID, now, scannedBy,
	).Scan(&at)
	if err == nil {
		return at, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		// attendee removed between resolve and insert
		if isForeignKeyViolation(err) {
			return time.Time{}, false, domain.ErrUnknownCredential
		}
		return time.Time{}, false, fmt.Errorf("insert check-in: %w", err)
	}

	err = r.db.Master.QueryRowContext(ctx,
		`SELECT checked_in_at FROM check_ins WHERE attendee_id = $1`, holder.Ref.ID,
	).Scan(&at)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, domain.ErrUnknownCredential
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read check-in: %w", err)
	}

	return at, false, nil
}
