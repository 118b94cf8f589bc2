package record

import (
	"time"
)

// Contract type literals as they appear in site messages.
const (
	WorkTypeRegular  = "常用"
	WorkTypeContract = "請負"
)

// Review lifecycle states.
const (
	StatusOpen     = "OPEN"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// WorkRecord is one worker-day parsed out of a site message.
// Key is "<sourceMessageID>_<index>" where index is the row's 0-based
// position within that message's output, so reprocessing the same message
// derives the same keys.
type WorkRecord struct {
	Key             string
	Date            time.Time
	YearMonth       string
	Client          string
	WorkType        string
	Site            string
	WorkerName      string
	Quantity        float64
	OvertimeHours   float64
	SourceMessageID string
	RegisteredAt    time.Time
}

// Overrides holds reviewer-entered corrections. A nil pointer (or, for the
// string fields, an empty value) means the parsed original stands.
type Overrides struct {
	Client        *string
	WorkType      *string
	Site          *string
	WorkerName    *string
	Quantity      *float64
	OvertimeHours *float64
}

// PendingRecord is a work record sitting in review. Originals are refreshed
// on every resync while status is OPEN; overrides survive resync untouched.
type PendingRecord struct {
	WorkRecord
	Status    string
	Overrides Overrides
}

// FinalValues are the resolved fields actually used downstream:
// override where present, parsed original otherwise.
type FinalValues struct {
	Client        string
	WorkType      string
	Site          string
	WorkerName    string
	Quantity      float64
	OvertimeHours float64
}

// ApprovedRecord is terminal and immutable. The six mutable fields carry
// final (resolved) values; date, year month, source message id and
// registration time are carried from the original.
type ApprovedRecord struct {
	Key             string
	Date            time.Time
	YearMonth       string
	Client          string
	WorkType        string
	Site            string
	WorkerName      string
	Quantity        float64
	OvertimeHours   float64
	SourceMessageID string
	RegisteredAt    time.Time
	Status          string
	Actor           string
	ActedAt         time.Time
}

// RejectedRecord is terminal and immutable, with a mandatory reason.
type RejectedRecord struct {
	ApprovedRecord
	Reason string
}
