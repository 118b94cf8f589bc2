package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/payroll"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

// ReadAll implements payroll.Repository.
func (r *payrollRepository) ReadAll(ctx context.Context) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_key, year_month, work_date, site, work_type, worker_name,
			   quantity, overtime_hours, daily_rate, amount, status
		FROM payroll_entries
		ORDER BY year_month, work_date, record_key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		var e payroll.Entry
		if err := rows.Scan(
			&e.Key, &e.YearMonth, &e.Date, &e.Site, &e.WorkType, &e.WorkerName,
			&e.Quantity, &e.OvertimeHours, &e.DailyRate, &e.Amount, &e.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}

	return entries, nil
}

// Keys implements payroll.Repository.
func (r *payrollRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	return readKeySet(ctx, GetQuerier(ctx, r.db), "payroll_entries")
}

// Append implements payroll.Repository.
func (r *payrollRepository) Append(ctx context.Context, entries []payroll.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			record_key, year_month, work_date, site, work_type, worker_name,
			quantity, overtime_hours, daily_rate, amount, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, e := range entries {
		if _, err := q.Exec(ctx, query,
			e.Key, e.YearMonth, e.Date, e.Site, e.WorkType, e.WorkerName,
			e.Quantity, e.OvertimeHours, e.DailyRate, e.Amount, e.Status,
		); err != nil {
			return fmt.Errorf("failed to insert payroll entry %s: %w", e.Key, err)
		}
	}

	return nil
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}
