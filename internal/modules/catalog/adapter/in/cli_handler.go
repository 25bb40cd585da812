package in

import (
	"context"

	"patterns/internal/modules/catalog/dto"
	catalogin "patterns/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Dataset(ctx context.Context) (dto.DatasetOutput, error) {
	return h.usecase.Dataset(ctx)
}

func (h CLIHandler) GetProblem(ctx context.Context, id int) (dto.ProblemOutput, error) {
	return h.usecase.GetProblem(ctx, id)
}
