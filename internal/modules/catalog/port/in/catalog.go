package in

import (
	"context"

	"patterns/internal/modules/catalog/dto"
)

type Usecase interface {
	Dataset(ctx context.Context) (dto.DatasetOutput, error)
	GetProblem(ctx context.Context, id int) (dto.ProblemOutput, error)
}
