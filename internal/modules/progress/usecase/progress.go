package usecase

import (
	"context"
	"math"

	"patterns/internal/modules/progress/domain"
	"patterns/internal/modules/progress/dto"
	progressin "patterns/internal/modules/progress/port/in"
	"patterns/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Hydrate(ctx context.Context, input dto.HydrateInput) (dto.HydrateOutput, error) {
	var known map[int]struct{}
	if input.KnownIDs != nil {
		known = make(map[int]struct{}, len(input.KnownIDs))
		for _, id := range input.KnownIDs {
			known[id] = struct{}{}
		}
	}
	report, err := i.svc.Hydrate(ctx, known)
	if err != nil {
		return dto.HydrateOutput{}, err
	}
	return toHydrateOutput(report), nil
}

func (i *Interactor) ToggleCompleted(ctx context.Context, problemID int) (dto.RecordOutput, error) {
	rec, completed, err := i.svc.ToggleCompleted(ctx, problemID)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toRecordOutput(problemID, rec, completed), nil
}

func (i *Interactor) ToggleSolutionSource(ctx context.Context, problemID int) (dto.RecordOutput, error) {
	rec, completed, err := i.svc.ToggleSolutionSource(ctx, problemID)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toRecordOutput(problemID, rec, completed), nil
}

func (i *Interactor) ClearAll(ctx context.Context, confirmer progressin.Confirmer) (dto.ClearOutput, error) {
	var confirm service.ConfirmFunc
	if confirmer != nil {
		confirm = func(ctx context.Context) (bool, error) {
			return confirmer.Confirm(ctx, progressin.ClearPrompt)
		}
	}
	cleared, removed, err := i.svc.ClearAll(ctx, confirm)
	if err != nil {
		return dto.ClearOutput{}, err
	}
	return dto.ClearOutput{Cleared: cleared, Removed: removed}, nil
}

func (i *Interactor) Records(_ context.Context) (map[int]dto.RecordOutput, error) {
	records, err := i.svc.Snapshot()
	if err != nil {
		return nil, err
	}
	out := make(map[int]dto.RecordOutput, len(records))
	for id, rec := range records {
		out[id] = toRecordOutput(id, rec, true)
	}
	return out, nil
}

// Summary reports completion against total, with the percentage rounded to
// the nearest whole number.
func (i *Interactor) Summary(_ context.Context, total int) (dto.SummaryOutput, error) {
	records, err := i.svc.Snapshot()
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	out := dto.SummaryOutput{Completed: len(records), Total: total}
	if total > 0 {
		out.Percent = int(math.Round(float64(out.Completed) / float64(total) * 100))
	}
	return out, nil
}

func (i *Interactor) Export(_ context.Context) (string, error) {
	return i.svc.Export()
}

func (i *Interactor) Import(ctx context.Context, raw string) (dto.HydrateOutput, error) {
	report, err := i.svc.Import(ctx, raw)
	if err != nil {
		return dto.HydrateOutput{}, err
	}
	return toHydrateOutput(report), nil
}

func toRecordOutput(id int, rec domain.Record, completed bool) dto.RecordOutput {
	if !completed {
		return dto.RecordOutput{ProblemID: id}
	}
	return dto.RecordOutput{
		ProblemID:     id,
		Completed:     true,
		DateCompleted: rec.DateCompleted,
		Source:        string(rec.Source),
	}
}

func toHydrateOutput(report domain.LoadReport) dto.HydrateOutput {
	return dto.HydrateOutput{
		Shape:     string(report.Shape),
		Count:     report.Count,
		Pruned:    report.Pruned,
		Dropped:   report.Dropped,
		Repaired:  report.Repaired,
		Recovered: report.Recovered,
	}
}
