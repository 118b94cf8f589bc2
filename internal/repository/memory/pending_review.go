package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/record"
)

type PendingReviewRepository struct {
	mu   sync.Mutex
	rows []record.PendingRecord
}

func NewPendingReviewRepository() *PendingReviewRepository {
	return &PendingReviewRepository{}
}

func (r *PendingReviewRepository) ReadAll(ctx context.Context) ([]record.PendingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]record.PendingRecord, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *PendingReviewRepository) Append(ctx context.Context, rows []record.PendingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *PendingReviewRepository) OverwriteOriginals(ctx context.Context, key string, row record.WorkRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Key == key {
			r.rows[i].WorkRecord = row
			return nil
		}
	}
	return record.ErrRecordNotFound
}

func (r *PendingReviewRepository) DeleteKeys(ctx context.Context, keys []string) error {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if _, ok := drop[row.Key]; ok {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}

func (r *PendingReviewRepository) DeleteByMessageID(ctx context.Context, messageID string) (int, error) {
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

func (r *PendingReviewRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}

// SetOverrides replaces the override fields of one pending row. Reviewer
// edits arrive through this path in tests and in the HTTP review API.
func (r *PendingReviewRepository) SetOverrides(ctx context.Context, key string, o record.Overrides) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Key == key {
			r.rows[i].Overrides = o
			return nil
		}
	}
	return record.ErrRecordNotFound
}
