package usecase

import (
	"context"

	"patterns/internal/modules/catalog/domain"
	"patterns/internal/modules/catalog/dto"
	catalogin "patterns/internal/modules/catalog/port/in"
	"patterns/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Dataset(ctx context.Context) (dto.DatasetOutput, error) {
	ds, err := i.svc.Dataset(ctx)
	if err != nil {
		return dto.DatasetOutput{}, err
	}
	out := dto.DatasetOutput{Updated: ds.Updated, Problems: make([]dto.ProblemOutput, 0, len(ds.Problems))}
	for _, p := range ds.Problems {
		out.Problems = append(out.Problems, toOutput(p))
	}
	return out, nil
}

func (i *Interactor) GetProblem(ctx context.Context, id int) (dto.ProblemOutput, error) {
	p, err := i.svc.GetProblem(ctx, id)
	if err != nil {
		return dto.ProblemOutput{}, err
	}
	return toOutput(p), nil
}

func toOutput(p domain.Problem) dto.ProblemOutput {
	companies := make([]dto.CompanyOutput, 0, len(p.Companies))
	for _, c := range p.Companies {
		companies = append(companies, dto.CompanyOutput{Name: c.Name, Slug: c.Slug, Frequency: c.Frequency})
	}
	return dto.ProblemOutput{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		URL:        p.URL(),
		Patterns:   p.Patterns,
		Difficulty: string(p.Difficulty),
		Companies:  companies,
		Premium:    p.Premium,
	}
}
