package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/worker"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

// ReadAll implements worker.Repository.
func (r *workerRepository) ReadAll(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT name, daily_rate FROM workers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.Name, &w.DailyRate); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}
