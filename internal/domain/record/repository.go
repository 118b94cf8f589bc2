package record

import (
	"context"
)

// WorkRepository holds parser output, the candidate rows for review sync.
type WorkRepository interface {
	// ReadAll returns every work record in insertion order.
	ReadAll(ctx context.Context) ([]WorkRecord, error)

	// Append appends rows; keys are expected to be unique.
	Append(ctx context.Context, rows []WorkRecord) error

	// DeleteByMessageID removes every row from one source message and
	// returns how many were removed. Used for unsend events.
	DeleteByMessageID(ctx context.Context, messageID string) (int, error)

	// DeleteAll clears the collection.
	DeleteAll(ctx context.Context) error
}

// PendingRepository holds records awaiting a review decision.
type PendingRepository interface {
	ReadAll(ctx context.Context) ([]PendingRecord, error)

	Append(ctx context.Context, rows []PendingRecord) error

	// OverwriteOriginals replaces only the parsed (non-override) fields of
	// the row with the given key. Reviewer overrides must survive.
	OverwriteOriginals(ctx context.Context, key string, row WorkRecord) error

	// SetOverrides replaces the reviewer override fields of the row with
	// the given key, leaving originals untouched.
	SetOverrides(ctx context.Context, key string, overrides Overrides) error

	// DeleteKeys removes the given keys, used when records move to a
	// terminal collection.
	DeleteKeys(ctx context.Context, keys []string) error

	DeleteByMessageID(ctx context.Context, messageID string) (int, error)

	DeleteAll(ctx context.Context) error
}

// ApprovedRepository is append-only terminal storage.
type ApprovedRepository interface {
	ReadAll(ctx context.Context) ([]ApprovedRecord, error)

	// Keys returns the set of keys already approved.
	Keys(ctx context.Context) (map[string]struct{}, error)

	Append(ctx context.Context, rows []ApprovedRecord) error

	DeleteAll(ctx context.Context) error
}

// RejectedRepository is append-only terminal storage.
type RejectedRepository interface {
	ReadAll(ctx context.Context) ([]RejectedRecord, error)

	Keys(ctx context.Context) (map[string]struct{}, error)

	Append(ctx context.Context, rows []RejectedRecord) error

	DeleteAll(ctx context.Context) error
}
