package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu   sync.Mutex
	rows []payroll.Entry
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{}
}

func (r *PayrollRepository) ReadAll(ctx context.Context) ([]payroll.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]payroll.Entry, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *PayrollRepository) Keys(ctx context.Context) (map[string]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make(map[string]struct{}, len(r.rows))
	for _, row := range r.rows {
		keys[row.Key] = struct{}{}
	}
	return keys, nil
}

func (r *PayrollRepository) Append(ctx context.Context, rows []payroll.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
	return nil
}
