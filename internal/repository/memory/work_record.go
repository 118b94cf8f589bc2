// Package memory provides in-memory implementations of the repository
// interfaces. They back the service unit tests and small deployments that
// do not need durable storage.
package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
)

type WorkRecordRepository struct {
	mu   sync.Mutex
	rows []record.WorkRecord
}

func NewWorkRecordRepository() *WorkRecordRepository {
	return &WorkRecordRepository{}
}

func (r *WorkRecordRepository) ReadAll(ctx context.Context) ([]record.WorkRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]record.WorkRecord, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *WorkRecordRepository) Append(ctx context.Context, rows []record.WorkRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *WorkRecordRepository) DeleteByMessageID(ctx context.Context, messageID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	removed := 0
	for _, row := range r.rows {
		if row.SourceMessageID == messageID {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed, nil
}

func (r *WorkRecordRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}
