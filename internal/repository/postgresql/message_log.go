package postgresql

import (
	"context"
	"fmt"

	"github.com/genbaflow/genba-backend-go/internal/domain/message"
	"github.com/genbaflow/genba-backend-go/internal/pkg/database"
)

type messageLogRepository struct {
	db *database.DB
}

// Append implements message.LogRepository.
func (r *messageLogRepository) Append(ctx context.Context, entry message.LogEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO message_log (message_id, received_at, group_id, user_id, body, status, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := q.Exec(ctx, query,
		entry.MessageID, entry.ReceivedAt, entry.GroupID, entry.UserID,
		entry.Body, entry.Status, entry.Detail,
	); err != nil {
		return fmt.Errorf("failed to insert message log entry: %w", err)
	}

	return nil
}

// RecentMessageIDs implements message.LogRepository. Only the newest rows
// matter for dedup, hence the bounded window.
func (r *messageLogRepository) RecentMessageIDs(ctx context.Context, limit int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT message_id FROM message_log
		ORDER BY received_at DESC, id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent message ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan message id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message ids: %w", err)
	}

	return ids, nil
}

func NewMessageLogRepository(db *database.DB) message.LogRepository {
	return &messageLogRepository{db: db}
}
