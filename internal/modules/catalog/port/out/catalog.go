package out

import (
	"context"

	"patterns/internal/modules/catalog/domain"
)

type DatasetSource interface {
	Load(ctx context.Context) (domain.Dataset, error)
}
