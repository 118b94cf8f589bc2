package worker

import (
	"context"
)

type Repository interface {
	ReadAll(ctx context.Context) ([]Worker, error)
}
