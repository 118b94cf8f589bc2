package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/worker"
)

type WorkerRepository struct {
	mu      sync.Mutex
	workers []worker.Worker
}

func NewWorkerRepository(workers ...worker.Worker) *WorkerRepository {
	return &WorkerRepository{workers: workers}
}

func (r *WorkerRepository) ReadAll(ctx context.Context) ([]worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]worker.Worker, len(r.workers))
	copy(out, r.workers)
	return out, nil
}
