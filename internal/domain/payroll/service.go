package payroll

import (
	"context"
)

// ExportService copies approved records into the payroll collection.
type ExportService interface {
	// ExportApproved validates every approved record's worker name against
	// the worker master, computes the payout and appends one entry per new
	// key. Names missing from the master are dropped from the batch and
	// reported; the rest of the batch still proceeds.
	ExportApproved(ctx context.Context) (ExportResult, error)
}

type ExportResult struct {
	Exported        int      `json:"exported"`
	SkippedExisting int      `json:"skipped_existing"`
	UnknownWorkers  []string `json:"unknown_workers,omitempty"`
}
