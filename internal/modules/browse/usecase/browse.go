package usecase

import (
	"context"
	"fmt"

	"patterns/internal/modules/browse/domain"
	"patterns/internal/modules/browse/dto"
	browsein "patterns/internal/modules/browse/port/in"
	"patterns/internal/modules/browse/service"
	apperrors "patterns/internal/platform/errors"
)

type Interactor struct {
	svc *service.BrowseService
}

func NewInteractor(svc *service.BrowseService) browsein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error) {
	key, err := domain.ParseSortKey(input.Sort)
	if err != nil {
		return dto.ViewOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	criteria := domain.Criteria{
		Pattern:       input.Pattern,
		Difficulty:    input.Difficulty,
		Company:       input.Company,
		CompletedOnly: input.CompletedOnly,
		Source:        input.Source,
	}
	rows, total, err := i.svc.View(ctx, criteria, key)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	out := dto.ViewOutput{Rows: make([]dto.RowOutput, 0, len(rows)), Shown: len(rows), Total: total}
	for _, r := range rows {
		out.Rows = append(out.Rows, toRowOutput(r))
	}
	return out, nil
}

func (i *Interactor) Options(ctx context.Context) (dto.OptionsOutput, error) {
	opts, err := i.svc.Options(ctx)
	if err != nil {
		return dto.OptionsOutput{}, err
	}
	return dto.OptionsOutput{
		Patterns:     opts.Patterns,
		Companies:    opts.Companies,
		Difficulties: domain.Difficulties(),
		Updated:      opts.Updated,
	}, nil
}

func toRowOutput(r domain.Row) dto.RowOutput {
	preview, more := r.Problem.CompanyPreview(service.PreviewCompanies)
	companies := make([]dto.CompanyOutput, 0, len(preview))
	for _, c := range preview {
		companies = append(companies, dto.CompanyOutput{Name: c.Name, Frequency: c.Frequency})
	}
	return dto.RowOutput{
		ID:            r.Problem.ID,
		Title:         r.Problem.Title,
		URL:           r.Problem.URL,
		Patterns:      r.Problem.Patterns,
		Difficulty:    r.Problem.Difficulty,
		Companies:     companies,
		MoreCompanies: more,
		Premium:       r.Problem.Premium,
		Completed:     r.Completed,
		DateCompleted: r.Mark.DateCompleted,
		Source:        r.Mark.Source,
	}
}
