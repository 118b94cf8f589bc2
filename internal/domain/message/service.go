package message

import (
	"context"
)

// IngestService turns inbound transport events into work records.
type IngestService interface {
	// ProcessEvent handles one event end to end: dedup check, parsing, key
	// assignment, persistence and logging for messages; record withdrawal
	// for unsends. The error is for the caller's log only; transports are
	// always acknowledged.
	ProcessEvent(ctx context.Context, ev Event) (ProcessResult, error)
}

// ProcessResult mirrors the log entry written for the event.
type ProcessResult struct {
	Status string `json:"status"`
	// Rows is how many work records a message produced.
	Rows int `json:"rows"`
	// Removed is how many work records an unsend withdrew.
	Removed int `json:"removed"`
}
