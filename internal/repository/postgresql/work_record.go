package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type workRecordRepository struct {
	db *database.DB
}

// ReadAll implements record.WorkRepository.
func (r *workRecordRepository) ReadAll(ctx context.Context) ([]record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_key, work_date, year_month, client, work_type, site,
			   worker_name, quantity, overtime_hours, source_message_id, registered_at
		FROM work_records
		ORDER BY registered_at, record_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read work records: %w", err)
	}
	defer rows.Close()

	var records []record.WorkRecord
	for rows.Next() {
		var rec record.WorkRecord
		if err := rows.Scan(
			&rec.Key, &rec.Date, &rec.YearMonth, &rec.Client, &rec.WorkType, &rec.Site,
			&rec.WorkerName, &rec.Quantity, &rec.OvertimeHours, &rec.SourceMessageID, &rec.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work records: %w", err)
	}

	return records, nil
}

// Append implements record.WorkRepository.
func (r *workRecordRepository) Append(ctx context.Context, records []record.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (
			record_key, work_date, year_month, client, work_type, site,
			worker_name, quantity, overtime_hours, source_message_id, registered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, rec := range records {
		if _, err := q.Exec(ctx, query,
			rec.Key, rec.Date, rec.YearMonth, rec.Client, rec.WorkType, rec.Site,
			rec.WorkerName, rec.Quantity, rec.OvertimeHours, rec.SourceMessageID, rec.RegisteredAt,
		); err != nil {
			return fmt.Errorf("failed to insert work record %s: %w", rec.Key, err)
		}
	}

	return nil
}

// DeleteByMessageID implements record.WorkRepository.
func (r *workRecordRepository) DeleteByMessageID(ctx context.Context, messageID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_records WHERE source_message_id = $1`, messageID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete work records for message %s: %w", messageID, err)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteAll implements record.WorkRepository.
func (r *workRecordRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM work_records`); err != nil {
		return fmt.Errorf("failed to clear work records: %w", err)
	}

	return nil
}

func NewWorkRecordRepository(db *database.DB) record.WorkRepository {
	return &workRecordRepository{db: db}
}
