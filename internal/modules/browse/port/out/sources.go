package out

import (
	"context"
	"time"

	"patterns/internal/modules/browse/domain"
)

type ProblemSource interface {
	Problems(ctx context.Context) ([]domain.Problem, time.Time, error)
}

type MarkSource interface {
	Marks(ctx context.Context) (map[int]domain.Mark, error)
}
