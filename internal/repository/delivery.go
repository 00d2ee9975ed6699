package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// deliveryTable holds the credential and email-delivery columns shared by
// rsvp_responses and qr_attendees. Both repositories embed it.
type deliveryTable struct {
	db       *dbpg.DB
	strategy retry.Strategy
	table    string
	flow     domain.Flow
	notFound error
	// dueFilter narrows ListDue, e.g. to paid RSVPs.
	dueFilter string
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

const deliveryColumns = `email_status, email_sent_at, email_retry_count, email_error, email_last_attempt_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanDelivery(d *domain.Delivery) []any {
	return []any{&d.Status, &d.SentAt, &d.RetryCount, &d.ErrorMessage, &d.LastAttemptAt}
}

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func (t *deliveryTable) BindCredential(ctx context.Context, id, token string) (string, error) {
	query := fmt.Sprintf(`UPDATE %s SET qr_code = COALESCE(qr_code, $2)
			  WHERE id = $1
			  RETURNING qr_code`, t.table)

	var bound string
	err := t.db.Master.QueryRowContext(ctx, query, id, token).Scan(&bound)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", t.notFound
	case isUniqueViolation(err):
		return "", domain.ErrCredentialTaken
	case err != nil:
		return "", fmt.Errorf("bind credential: %w", err)
	}

	return bound, nil
}

func (t *deliveryTable) ClaimDelivery(ctx context.Context, id string, claim domain.DeliveryClaim) (bool, error) {
	query := fmt.Sprintf(`UPDATE %s
			  SET email_status = 'pending', email_last_attempt_at = $2
			  WHERE id = $1
			    AND (
			      (email_status = 'failed' AND email_retry_count < $3)
			      OR (email_status = 'pending'
			          AND (email_last_attempt_at IS NULL OR email_last_attempt_at < $4))
			    )`, t.table)

	res, err := t.db.Master.ExecContext(ctx, query, id, claim.Now, claim.MaxRetries, claim.StaleBefore)
	if err != nil {
		return false, fmt.Errorf("claim delivery: %w", err)
	}
	return affected(res)
}

func (t *deliveryTable) ClaimResend(ctx context.Context, id string, now time.Time) (bool, error) {
	query := fmt.Sprintf(`UPDATE %s
			  SET email_status = 'pending', email_last_attempt_at = $2
			  WHERE id = $1`, t.table)

	res, err := t.db.Master.ExecContext(ctx, query, id, now)
	if err != nil {
		return false, fmt.Errorf("claim resend: %w", err)
	}
	return affected(res)
}

func (t *deliveryTable) MarkSent(ctx context.Context, id string, at time.Time) (bool, error) {
	query := fmt.Sprintf(`UPDATE %s
			  SET email_status = 'sent', email_sent_at = $2, email_error = NULL
			  WHERE id = $1 AND email_status = 'pending'`, t.table)

	res, err := t.db.ExecWithRetry(ctx, t.strategy, query, id, at)
	if err != nil {
		return false, fmt.Errorf("mark sent: %w", err)
	}
	return affected(res)
}

// MarkFailed is not retried: a replayed statement would count the failure twice.
func (t *deliveryTable) MarkFailed(ctx context.Context, id string, at time.Time, reason string) (int, bool, error) {
	query := fmt.Sprintf(`UPDATE %s
			  SET email_status = 'failed',
			      email_retry_count = email_retry_count + 1,
			      email_error = $3,
			      email_last_attempt_at = $2
			  WHERE id = $1 AND email_status = 'pending'
			  RETURNING email_retry_count`, t.table)

	var retries int
	err := t.db.Master.QueryRowContext(ctx, query, id, at, reason).Scan(&retries)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("mark failed: %w", err)
	}
	return retries, true, nil
}

func (t *deliveryTable) ListDue(ctx context.Context, maxRetries, limit int) ([]domain.DeliveryCandidate, error) {
	query := fmt.Sprintf(`SELECT id, %s
			  FROM %s
			  WHERE ((email_status = 'failed' AND email_retry_count < $1) OR email_status = 'pending') %s
			  ORDER BY email_last_attempt_at NULLS FIRST, created_at
			  LIMIT $2`, deliveryColumns, t.table, t.dueFilter)

	rows, err := t.db.QueryWithRetry(ctx, t.strategy, query, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("list due deliveries: %w", err)
	}
	defer rows.Close()

	var res []domain.DeliveryCandidate
	for rows.Next() {
		c := domain.DeliveryCandidate{Ref: domain.AttendeeRef{Flow: t.flow}}
		if err = rows.Scan(append([]any{&c.Ref.ID}, scanDelivery(&c.Delivery)...)...); err != nil {
			return nil, fmt.Errorf("scan due delivery: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
