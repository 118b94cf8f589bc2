package payroll

import (
	"context"
)

type Repository interface {
	ReadAll(ctx context.Context) ([]Entry, error)

	// Keys returns the set of record keys already exported, so a repeated
	// export never duplicates a row.
	Keys(ctx context.Context) (map[string]struct{}, error)

	Append(ctx context.Context, rows []Entry) error
}
