package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type approvedRepository struct {
	db *database.DB
}

// ReadAll implements record.ApprovedRepository.
func (r *approvedRepository) ReadAll(ctx context.Context) ([]record.ApprovedRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_key, work_date, year_month, client, work_type, site,
			   worker_name, quantity, overtime_hours, source_message_id, registered_at,
			   status, actor, acted_at
		FROM approved_records
		ORDER BY acted_at, record_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read approved records: %w", err)
	}
	defer rows.Close()

	var records []record.ApprovedRecord
	for rows.Next() {
		var rec record.ApprovedRecord
		if err := rows.Scan(
			&rec.Key, &rec.Date, &rec.YearMonth, &rec.Client, &rec.WorkType, &rec.Site,
			&rec.WorkerName, &rec.Quantity, &rec.OvertimeHours, &rec.SourceMessageID, &rec.RegisteredAt,
			&rec.Status, &rec.Actor, &rec.ActedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan approved record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approved records: %w", err)
	}

	return records, nil
}

// Keys implements record.ApprovedRepository.
func (r *approvedRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	return readKeySet(ctx, GetQuerier(ctx, r.db), "approved_records")
}

// Append implements record.ApprovedRepository.
func (r *approvedRepository) Append(ctx context.Context, records []record.ApprovedRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approved_records (
			record_key, work_date, year_month, client, work_type, site,
			worker_name, quantity, overtime_hours, source_message_id, registered_at,
			status, actor, acted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	for _, rec := range records {
		if _, err := q.Exec(ctx, query,
			rec.Key, rec.Date, rec.YearMonth, rec.Client, rec.WorkType, rec.Site,
			rec.WorkerName, rec.Quantity, rec.OvertimeHours, rec.SourceMessageID, rec.RegisteredAt,
			rec.Status, rec.Actor, rec.ActedAt,
		); err != nil {
			return fmt.Errorf("failed to insert approved record %s: %w", rec.Key, err)
		}
	}

	return nil
}

// DeleteAll implements record.ApprovedRepository.
func (r *approvedRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM approved_records`); err != nil {
		return fmt.Errorf("failed to clear approved records: %w", err)
	}

	return nil
}

func NewApprovedRepository(db *database.DB) record.ApprovedRepository {
	return &approvedRepository{db: db}
}

type rejectedRepository struct {
	db *database.DB
}

// ReadAll implements record.RejectedRepository.
func (r *rejectedRepository) ReadAll(ctx context.Context) ([]record.RejectedRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_key, work_date, year_month, client, work_type, site,
			   worker_name, quantity, overtime_hours, source_message_id, registered_at,
			   status, actor, acted_at, reason
		FROM rejected_records
		ORDER BY acted_at, record_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read rejected records: %w", err)
	}
	defer rows.Close()

	var records []record.RejectedRecord
	for rows.Next() {
		var rec record.RejectedRecord
		if err := rows.Scan(
			&rec.Key, &rec.Date, &rec.YearMonth, &rec.Client, &rec.WorkType, &rec.Site,
			&rec.WorkerName, &rec.Quantity, &rec.OvertimeHours, &rec.SourceMessageID, &rec.RegisteredAt,
			&rec.Status, &rec.Actor, &rec.ActedAt, &rec.Reason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rejected record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rejected records: %w", err)
	}

	return records, nil
}

// Keys implements record.RejectedRepository.
func (r *rejectedRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	return readKeySet(ctx, GetQuerier(ctx, r.db), "rejected_records")
}

// Append implements record.RejectedRepository.
func (r *rejectedRepository) Append(ctx context.Context, records []record.RejectedRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rejected_records (
			record_key, work_date, year_month, client, work_type, site,
			worker_name, quantity, overtime_hours, source_message_id, registered_at,
			status, actor, acted_at, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	for _, rec := range records {
		if _, err := q.Exec(ctx, query,
			rec.Key, rec.Date, rec.YearMonth, rec.Client, rec.WorkType, rec.Site,
			rec.WorkerName, rec.Quantity, rec.OvertimeHours, rec.SourceMessageID, rec.RegisteredAt,
			rec.Status, rec.Actor, rec.ActedAt, rec.Reason,
		); err != nil {
			return fmt.Errorf("failed to insert rejected record %s: %w", rec.Key, err)
		}
	}

	return nil
}

// DeleteAll implements record.RejectedRepository.
func (r *rejectedRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM rejected_records`); err != nil {
		return fmt.Errorf("failed to clear rejected records: %w", err)
	}

	return nil
}

func NewRejectedRepository(db *database.DB) record.RejectedRepository {
	return &rejectedRepository{db: db}
}

// readKeySet loads the record_key column of one terminal table into a set.
func readKeySet(ctx context.Context, q database.Querier, table string) (map[string]struct{}, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT record_key FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to read keys from %s: %w", table, err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key from %s: %w", table, err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys from %s: %w", table, err)
	}

	return keys, nil
}
