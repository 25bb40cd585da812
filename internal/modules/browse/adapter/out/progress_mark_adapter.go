package out

import (
	"context"

	"patterns/internal/modules/browse/domain"
	browseout "patterns/internal/modules/browse/port/out"
	progressin "patterns/internal/modules/progress/port/in"
)

type ProgressMarkAdapter struct {
	progress progressin.Usecase
}

func NewProgressMarkAdapter(progress progressin.Usecase) browseout.MarkSource {
	return &ProgressMarkAdapter{progress: progress}
}

func (a *ProgressMarkAdapter) Marks(ctx context.Context) (map[int]domain.Mark, error) {
	records, err := a.progress.Records(ctx)
	if err != nil {
		return nil, err
	}
	marks := make(map[int]domain.Mark, len(records))
	for id, r := range records {
		marks[id] = domain.Mark{DateCompleted: r.DateCompleted, Source: r.Source}
	}
	return marks, nil
}
