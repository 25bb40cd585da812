package in

import (
	"context"

	"patterns/internal/modules/browse/dto"
	browsein "patterns/internal/modules/browse/port/in"
)

type CLIHandler struct {
	usecase browsein.Usecase
}

func NewCLIHandler(usecase browsein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error) {
	return h.usecase.View(ctx, input)
}

func (h CLIHandler) Options(ctx context.Context) (dto.OptionsOutput, error) {
	return h.usecase.Options(ctx)
}
