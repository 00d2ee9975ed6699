package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ScanLogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScanLogRepo(db *dbpg.DB) *ScanLogRepository {
	return &ScanLogRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Record appends one scan attempt. The id is the primary key, so a retried
// insert that already landed fails instead of duplicating the entry.
func (r *ScanLogRepository) Record(ctx context.Context, rec *domain.ScanRecord) error {
	query := `INSERT INTO scan_log (id, code, flow, attendee_id, outcome, scanned_by, scanned_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.Code, rec.Flow, rec.AttendeeID, rec.Outcome, rec.ScannedBy, rec.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan record: %w", err)
	}

	return nil
}
