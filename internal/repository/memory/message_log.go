package memory

import (
	"context"
	"sync"

	"github.com/genbaflow/genba-backend-go/internal/domain/message"
)

type MessageLogRepository struct {
	mu      sync.Mutex
	entries []message.LogEntry
}

func NewMessageLogRepository() *MessageLogRepository {
	return &MessageLogRepository{}
}

func (r *MessageLogRepository) Append(ctx context.Context, entry message.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MessageLogRepository) RecentMessageIDs(ctx context.Context, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := 0
	if limit > 0 && len(r.entries) > limit {
		start = len(r.entries) - limit
	}

	ids := make([]string, 0, len(r.entries)-start)
	for _, e := range r.entries[start:] {
		ids = append(ids, e.MessageID)
	}
	return ids, nil
}

// Entries returns a snapshot of the log, newest last. Test helper.
func (r *MessageLogRepository) Entries() []message.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]message.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
