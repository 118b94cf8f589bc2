package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
)

type ApprovedRepository struct {
	mu   sync.Mutex
	rows []record.ApprovedRecord
}

func NewApprovedRepository() *ApprovedRepository {
	return &ApprovedRepository{}
}

func (r *ApprovedRepository) ReadAll(ctx context.Context) ([]record.ApprovedRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]record.ApprovedRecord, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *ApprovedRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make(map[string]struct{}, len(r.rows))
	for _, row := range r.rows {
		keys[row.Key] = struct{}{}
	}
	return keys, nil
}

func (r *ApprovedRepository) Append(ctx context.Context, rows []record.ApprovedRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *ApprovedRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}

type RejectedRepository struct {
	mu   sync.Mutex
	rows []record.RejectedRecord
}

func NewRejectedRepository() *RejectedRepository {
	return &RejectedRepository{}
}

func (r *RejectedRepository) ReadAll(ctx context.Context) ([]record.RejectedRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]record.RejectedRecord, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *RejectedRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make(map[string]struct{}, len(r.rows))
	for _, row := range r.rows {
		keys[row.Key] = struct{}{}
	}
	return keys, nil
}

func (r *RejectedRepository) Append(ctx context.Context, rows []record.RejectedRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *RejectedRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}
