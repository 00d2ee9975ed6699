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
)

type RSVPRepository struct {
	deliveryTable
}

func NewRSVPRepo(db *dbpg.DB) *RSVPRepository {
	return &RSVPRepository{
		deliveryTable: deliveryTable{
			db:        db,
			strategy:  defaultStrategy(),
			table:     "rsvp_responses",
			flow:      domain.FlowRSVP,
			notFound:  domain.ErrRSVPNotFound,
			dueFilter: "AND payment_confirmed",
		},
	}
}

const rsvpColumns = `id, event_id, user_id, schema_version, responses, payment_confirmed,
		payment_reference, qr_code, ` + deliveryColumns + `, checked_in_at, created_at`

func scanRSVP(row rowScanner) (*domain.RSVPResponse, error) {
	var (
		r         domain.RSVPResponse
		responses []byte
	)
	dest := []any{
		&r.ID, &r.EventID, &r.UserID, &r.SchemaVersion, &responses, &r.PaymentConfirmed,
		&r.PaymentReference, &r.QRCode,
	}
	dest = append(dest, scanDelivery(&r.Delivery)...)
	dest = append(dest, &r.CheckedInAt, &r.CreatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(responses, &r.Responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	return &r, nil
}

// Admit runs admission control in one transaction. The event row is locked
// FOR UPDATE, so concurrent admissions for the same event are serialised and
// the count check and insert cannot interleave.
func (r *RSVPRepository) Admit(ctx context.Context, rsvp *domain.RSVPResponse, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		rsvpRequired    bool
		deadline        *time.Time
		maxParticipants *int
	)
	lockQuery := `SELECT rsvp_required, rsvp_deadline, max_participants
				  FROM events
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, rsvp.EventID).
		Scan(&rsvpRequired, &deadline, &maxParticipants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if !rsvpRequired {
		return domain.ErrRSVPNotApplicable
	}
	if deadline != nil && deadline.Before(now) {
		return domain.ErrDeadlineExpired
	}

	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM rsvp_responses WHERE event_id = $1 AND user_id = $2)`
	if err = tx.QueryRowContext(ctx, existsQuery, rsvp.EventID, rsvp.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check existing rsvp: %w", err)
	}
	if exists {
		return domain.ErrAlreadyRegistered
	}

	if maxParticipants != nil {
		var count int
		countQuery := `SELECT COUNT(*) FROM rsvp_responses WHERE event_id = $1`
		if err = tx.QueryRowContext(ctx, countQuery, rsvp.EventID).Scan(&count); err != nil {
			return fmt.Errorf("count rsvps: %w", err)
		}
		if count >= *maxParticipants {
			return domain.ErrCapacityExceeded
		}
	}

	responses, err := json.Marshal(rsvp.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	query := `INSERT INTO rsvp_responses (id, event_id, user_id, schema_version, responses,
			  		payment_confirmed, email_status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, query,
		rsvp.ID, rsvp.EventID, rsvp.UserID, rsvp.SchemaVersion, responses,
		rsvp.PaymentConfirmed, rsvp.Delivery.Status, rsvp.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert rsvp: %w", err)
	}

	return tx.Commit()
}

func (r *RSVPRepository) GetByID(ctx context.Context, id string) (*domain.RSVPResponse, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvp_responses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("scan rsvp: %w", err)
	}

	return rsvp, nil
}

// ConfirmPayment flips the payment gate once.
func (r *RSVPRepository) ConfirmPayment(ctx context.Context, id, reference string) error {
	query := `UPDATE rsvp_responses
			  SET payment_confirmed = TRUE, payment_reference = NULLIF($2, '')
			  WHERE id = $1 AND NOT payment_confirmed`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, reference)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	var confirmed bool
	checkQuery := `SELECT payment_confirmed FROM rsvp_responses WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&confirmed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRSVPNotFound
		}
		return fmt.Errorf("check payment: %w", err)
	}
	return domain.ErrPaymentAlreadyConfirmed
}

func (r *RSVPRepository) ListByUser(ctx context.Context, userID string) ([]*domain.RSVPResponse, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvp_responses
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.RSVPResponse
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		res = append(res, rsvp)
	}

	return res, rows.Err()
}

func (r *RSVPRepository) ListAttendees(ctx context.Context, eventID string) ([]*domain.AttendeeView, error) {
	query := `SELECT r.id, u.name, u.email,
			  		r.email_status, r.email_sent_at, r.email_retry_count, r.email_error, r.email_last_attempt_at,
			  		r.checked_in_at
			  FROM rsvp_responses r
			  JOIN users u ON u.id = r.user_id
			  WHERE r.event_id = $1
			  ORDER BY r.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvp attendees: %w", err)
	}
	defer rows.Close()

	var res []*domain.AttendeeView
	for rows.Next() {
		v := domain.AttendeeView{Ref: domain.AttendeeRef{Flow: domain.FlowRSVP}}
		dest := append([]any{&v.Ref.ID, &v.Name, &v.Email}, scanDelivery(&v.Delivery)...)
		if err = rows.Scan(append(dest, &v.CheckedInAt)...); err != nil {
			return nil, fmt.Errorf("scan rsvp attendee: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *RSVPRepository) LoadRecipient(ctx context.Context, id string) (*domain.Recipient, error) {
	query := `SELECT r.id, u.name, u.email, COALESCE(r.qr_code, ''),
			  		e.title, e.event_date, e.location,
			  		r.email_status, r.email_sent_at, r.email_retry_count, r.email_error, r.email_last_attempt_at
			  FROM rsvp_responses r
			  JOIN users u ON u.id = r.user_id
			  JOIN events e ON e.id = r.event_id
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("load rsvp recipient: %w", err)
	}

	rec := domain.Recipient{Ref: domain.AttendeeRef{Flow: domain.FlowRSVP}}
	dest := []any{&rec.Ref.ID, &rec.Name, &rec.Email, &rec.Credential, &rec.EventTitle, &rec.EventDate, &rec.Location}
	if err = row.Scan(append(dest, scanDelivery(&rec.Delivery)...)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("scan rsvp recipient: %w", err)
	}

	return &rec, nil
}

func (r *RSVPRepository) Resolve(ctx context.Context, token string) (*domain.CredentialHolder, error) {
	query := `SELECT r.id, u.name, r.event_id, e.event_date
			  FROM rsvp_responses r
			  JOIN users u ON u.id = r.user_id
			  JOIN events e ON e.id = r.event_id
			  WHERE r.qr_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("resolve rsvp credential: %w", err)
	}

	h := domain.CredentialHolder{Ref: domain.AttendeeRef{Flow: domain.FlowRSVP}}
	if err = row.Scan(&h.Ref.ID, &h.Name, &h.RosterID, &h.EventDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownCredential
		}
		return nil, fmt.Errorf("scan rsvp credential: %w", err)
	}

	return &h, nil
}

// CheckIn sets checked_in_at only while it is NULL. Of two racing scans the
// second blocks on the row lock, then matches no row and reads the winner's
// timestamp.
func (r *RSVPRepository) CheckIn(
	ctx context.Context, holder *domain.CredentialHolder, now time.Time, _ string,
) (time.Time, bool, error) {
	query := `UPDATE rsvp_responses
			  SET checked_in_at = $2
			  WHERE id = $1 AND checked_in_at IS NULL
			  RETURNING checked_in_at`

	var at time.Time
	err := r.db.Master.QueryRowContext(ctx, query, holder.Ref.ID, now).Scan(&at)
	if err == nil {
		return at, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, fmt.Errorf("check in rsvp: %w", err)
	}

	var existing *time.Time
	err = r.db.Master.QueryRowContext(ctx,
		`SELECT checked_in_at FROM rsvp_responses WHERE id = $1`, holder.Ref.ID,
	).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, domain.ErrUnknownCredential
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read rsvp check-in: %w", err)
	}
	if existing == nil {
		return time.Time{}, false, fmt.Errorf("rsvp %s: check-in not recorded", holder.Ref.ID)
	}

	return *existing, false, nil
}
