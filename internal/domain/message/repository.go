package message

import (
	"context"
)

type LogRepository interface {
	Append(ctx context.Context, entry LogEntry) error

	// RecentMessageIDs returns the message ids of at most limit of the most
	// recent log entries. The dedup check inspects only this bounded window
	// rather than the full history.
	RecentMessageIDs(ctx context.Context, limit int) ([]string, error)
}
