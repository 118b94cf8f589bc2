package record

// SyncResult reports what one sync pass did with the candidate rows.
// Every candidate is accounted for: inserted, updated in place, or skipped
// because its key already reached a terminal collection.
type SyncResult struct {
	Added           int `json:"added"`
	Updated         int `json:"updated"`
	SkippedTerminal int `json:"skipped_terminal"`
}

// PendingView is a pending record together with its resolved finals,
// recomputed at read time.
type PendingView struct {
	PendingRecord
	Final FinalValues
}
