package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CheckInEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCheckInEventRepo(db *dbpg.DB) *CheckInEventRepository {
	return &CheckInEventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const checkInEventColumns = `id, title, event_date, event_time, location, max_attendees, created_by, created_at`

func scanCheckInEvent(row rowScanner, e *domain.CheckInEvent) error {
	return row.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Location, &e.MaxAttendees, &e.CreatedBy, &e.CreatedAt)
}

func (r *CheckInEventRepository) Create(ctx context.Context, e *domain.CheckInEvent) error {
	query := `INSERT INTO checkin_events (` + checkInEventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Date, e.Time, e.Location, e.MaxAttendees, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert check-in event: %w", err)
	}

	return nil
}

func (r *CheckInEventRepository) GetByID(ctx context.Context, id string) (*domain.CheckInEvent, error) {
	query := `SELECT ` + checkInEventColumns + `
			  FROM checkin_events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get check-in event: %w", err)
	}

	var e domain.CheckInEvent
	if err = scanCheckInEvent(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckInEventNotFound
		}
		return nil, fmt.Errorf("scan check-in event: %w", err)
	}

	return &e, nil
}

func (r *CheckInEventRepository) List(ctx context.Context) ([]*domain.CheckInEvent, error) {
	query := `SELECT ` + checkInEventColumns + `
			  FROM checkin_events
			  ORDER BY event_date DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list check-in events: %w", err)
	}
	defer rows.Close()

	var res []*domain.CheckInEvent
	for rows.Next() {
		var e domain.CheckInEvent
		if err = scanCheckInEvent(rows, &e); err != nil {
			return nil, fmt.Errorf("scan check-in event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Delete removes the roster with its attendees and check-ins and reports how
// many of each were removed. The event row is locked first so no attendee can
// be added while the counts are taken.
func (r *CheckInEventRepository) Delete(ctx context.Context, id string) (domain.DeletedCounts, error) {
	var counts domain.DeletedCounts

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx,
		`SELECT id FROM checkin_events WHERE id = $1 FOR UPDATE`, id,
	).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return counts, domain.ErrCheckInEventNotFound
		}
		return counts, fmt.Errorf("lock check-in event: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM check_ins WHERE event_id = $1`, id)
	if err != nil {
		return counts, fmt.Errorf("delete check-ins: %w", err)
	}
	if counts.CheckIns, err = rowCount(res); err != nil {
		return counts, err
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM qr_attendees WHERE event_id = $1`, id)
	if err != nil {
		return counts, fmt.Errorf("delete attendees: %w", err)
	}
	if counts.Attendees, err = rowCount(res); err != nil {
		return counts, err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM checkin_events WHERE id = $1`, id); err != nil {
		return counts, fmt.Errorf("delete check-in event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return counts, fmt.Errorf("commit: %w", err)
	}
	return counts, nil
}

func rowCount(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
