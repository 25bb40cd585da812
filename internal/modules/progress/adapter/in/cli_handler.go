package in

import (
	"context"

	"patterns/internal/modules/progress/dto"
	progressin "patterns/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Hydrate(ctx context.Context, knownIDs []int) (dto.HydrateOutput, error) {
	return h.usecase.Hydrate(ctx, dto.HydrateInput{KnownIDs: knownIDs})
}

func (h CLIHandler) ToggleCompleted(ctx context.Context, problemID int) (dto.RecordOutput, error) {
	return h.usecase.ToggleCompleted(ctx, problemID)
}

func (h CLIHandler) ToggleSolutionSource(ctx context.Context, problemID int) (dto.RecordOutput, error) {
	return h.usecase.ToggleSolutionSource(ctx, problemID)
}

func (h CLIHandler) ClearAll(ctx context.Context, confirmer progressin.Confirmer) (dto.ClearOutput, error) {
	return h.usecase.ClearAll(ctx, confirmer)
}

func (h CLIHandler) Records(ctx context.Context) (map[int]dto.RecordOutput, error) {
	return h.usecase.Records(ctx)
}

func (h CLIHandler) Summary(ctx context.Context, total int) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, total)
}

func (h CLIHandler) Export(ctx context.Context) (string, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Import(ctx context.Context, raw string) (dto.HydrateOutput, error) {
	return h.usecase.Import(ctx, raw)
}
