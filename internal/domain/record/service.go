package record

import (
	"context"
	"time"
)

// ReviewService drives the review workflow over the pending and terminal
// collections. Every method reads its full snapshot up front, computes the
// mutation set, then applies it; nothing commits against data read halfway
// through an operation.
type ReviewService interface {
	// Sync merges the current work records into the pending collection.
	// Terminal keys are skipped, OPEN rows get their originals refreshed,
	// unseen keys are inserted OPEN with empty overrides.
	Sync(ctx context.Context) (SyncResult, error)

	// ApproveAllOpen moves every OPEN pending record, with finals resolved,
	// into the approved collection. Returns how many moved.
	ApproveAllOpen(ctx context.Context, actor string, now time.Time) (int, error)

	// RejectAllOpen does the same into the rejected collection. The reason
	// is validated before anything mutates; empty reason moves nothing.
	RejectAllOpen(ctx context.Context, actor, reason string, now time.Time) (int, error)

	// SetOverrides stores reviewer corrections on one pending record.
	SetOverrides(ctx context.Context, key string, overrides Overrides) error

	// ResetAll clears pending, approved and rejected. Destructive;
	// confirmation is the caller's concern.
	ResetAll(ctx context.Context) error

	ListPending(ctx context.Context) ([]PendingView, error)
	ListApproved(ctx context.Context) ([]ApprovedRecord, error)
	ListRejected(ctx context.Context) ([]RejectedRecord, error)
}
