package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type pendingReviewRepository struct {
	db *database.DB
}

// ReadAll implements record.PendingRepository.
func (r *pendingReviewRepository) ReadAll(ctx context.Context) ([]record.PendingRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_key, work_date, year_month, client, work_type, site,
			   worker_name, quantity, overtime_hours, source_message_id, registered_at,
			   status,
			   override_client, override_work_type, override_site,
			   override_worker_name, override_quantity, override_overtime_hours
		FROM pending_reviews
		ORDER BY registered_at, record_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending reviews: %w", err)
	}
	defer rows.Close()

	var records []record.PendingRecord
	for rows.Next() {
		var rec record.PendingRecord
		if err := rows.Scan(
			&rec.Key, &rec.Date, &rec.YearMonth, &rec.Client, &rec.WorkType, &rec.Site,
			&rec.WorkerName, &rec.Quantity, &rec.OvertimeHours, &rec.SourceMessageID, &rec.RegisteredAt,
			&rec.Status,
			&rec.Overrides.Client, &rec.Overrides.WorkType, &rec.Overrides.Site,
			&rec.Overrides.WorkerName, &rec.Overrides.Quantity, &rec.Overrides.OvertimeHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending review: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending reviews: %w", err)
	}

	return records, nil
}

// Append implements record.PendingRepository.
func (r *pendingReviewRepository) Append(ctx context.Context, records []record.PendingRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pending_reviews (
			record_key, work_date, year_month, client, work_type, site,
			worker_name, quantity, overtime_hours, source_message_id, registered_at,
			status,
			override_client, override_work_type, override_site,
			override_worker_name, override_quantity, override_overtime_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	for _, rec := range records {
		if _, err := q.Exec(ctx, query,
			rec.Key, rec.Date, rec.YearMonth, rec.Client, rec.WorkType, rec.Site,
			rec.WorkerName, rec.Quantity, rec.OvertimeHours, rec.SourceMessageID, rec.RegisteredAt,
			rec.Status,
			rec.Overrides.Client, rec.Overrides.WorkType, rec.Overrides.Site,
			rec.Overrides.WorkerName, rec.Overrides.Quantity, rec.Overrides.OvertimeHours,
		); err != nil {
			return fmt.Errorf("failed to insert pending review %s: %w", rec.Key, err)
		}
	}

	return nil
}

// OverwriteOriginals implements record.PendingRepository.
func (r *pendingReviewRepository) OverwriteOriginals(ctx context.Context, key string, row record.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pending_reviews
		SET work_date = $2, year_month = $3, client = $4, work_type = $5, site = $6,
			worker_name = $7, quantity = $8, overtime_hours = $9,
			source_message_id = $10, registered_at = $11
		WHERE record_key = $1
	`

	tag, err := q.Exec(ctx, query,
		key, row.Date, row.YearMonth, row.Client, row.WorkType, row.Site,
		row.WorkerName, row.Quantity, row.OvertimeHours, row.SourceMessageID, row.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh pending review %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// SetOverrides implements record.PendingRepository.
func (r *pendingReviewRepository) SetOverrides(ctx context.Context, key string, overrides record.Overrides) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pending_reviews
		SET override_client = $2, override_work_type = $3, override_site = $4,
			override_worker_name = $5, override_quantity = $6, override_overtime_hours = $7
		WHERE record_key = $1
	`

	tag, err := q.Exec(ctx, query,
		key, overrides.Client, overrides.WorkType, overrides.Site,
		overrides.WorkerName, overrides.Quantity, overrides.OvertimeHours,
	)
	if err != nil {
		return fmt.Errorf("failed to set overrides on pending review %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// DeleteKeys implements record.PendingRepository.
func (r *pendingReviewRepository) DeleteKeys(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM pending_reviews WHERE record_key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("failed to delete pending reviews: %w", err)
	}

	return nil
}

// DeleteByMessageID implements record.PendingRepository.
func (r *pendingReviewRepository) DeleteByMessageID(ctx context.Context, messageID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pending_reviews WHERE source_message_id = $1`, messageID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending reviews for message %s: %w", messageID, err)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteAll implements record.PendingRepository.
func (r *pendingReviewRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM pending_reviews`); err != nil {
		return fmt.Errorf("failed to clear pending reviews: %w", err)
	}

	return nil
}

func NewPendingReviewRepository(db *database.DB) record.PendingRepository {
	return &pendingReviewRepository{db: db}
}
