package in

import (
	"context"

	"patterns/internal/modules/progress/dto"
)

// ClearPrompt is shown before every clear-all.
const ClearPrompt = "Are you sure you want to clear all completed problems? This cannot be undone."

// Confirmer is the yes/no gate guarding destructive operations.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type Usecase interface {
	Hydrate(ctx context.Context, input dto.HydrateInput) (dto.HydrateOutput, error)
	ToggleCompleted(ctx context.Context, problemID int) (dto.RecordOutput, error)
	ToggleSolutionSource(ctx context.Context, problemID int) (dto.RecordOutput, error)
	ClearAll(ctx context.Context, confirmer Confirmer) (dto.ClearOutput, error)
	Records(ctx context.Context) (map[int]dto.RecordOutput, error)
	Summary(ctx context.Context, total int) (dto.SummaryOutput, error)
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, raw string) (dto.HydrateOutput, error)
}
