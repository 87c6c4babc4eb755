package activities

import (
	"context"
)

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, id int64) (*Activity, error)
	Create(ctx context.Context, draft Draft) (*Activity, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
