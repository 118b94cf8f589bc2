package message

import (
	"time"
)

// Event types delivered by the chat transport.
const (
	EventTypeMessage = "message"
	EventTypeUnsend  = "unsend"
)

// Log entry statuses.
const (
	LogStatusSuccess   = "SUCCESS"
	LogStatusDuplicate = "DUPLICATE"
	LogStatusError     = "ERROR"
	LogStatusDeleted   = "DELETED"
)

// Event is one inbound transport event, already unwrapped from the webhook
// payload. For unsend events only UnsendMessageID is set.
type Event struct {
	Type            string
	MessageID       string
	Text            string
	Timestamp       time.Time
	GroupID         string
	UserID          string
	UnsendMessageID string

	// DeliveryID identifies this webhook delivery in logs. Assigned by the
	// handler when the upstream does not provide one.
	DeliveryID string
}

// LogEntry records one processed event: the raw text plus the processing
// outcome. The log doubles as the dedup history.
type LogEntry struct {
	MessageID  string
	ReceivedAt time.Time
	GroupID    string
	UserID     string
	Body       string
	Status     string
	Detail     string
}
