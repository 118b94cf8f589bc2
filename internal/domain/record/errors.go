package record

import "errors"

// Review workflow domain errors
var (
	ErrReasonRequired  = errors.New("rejection reason is required")
	ErrActorRequired   = errors.New("actor is required")
	ErrRecordNotFound  = errors.New("record not found")
	ErrAlreadyTerminal = errors.New("record has already been approved or rejected")
)
