package out

import (
	"context"
	"time"

	"patterns/internal/modules/browse/domain"
	browseout "patterns/internal/modules/browse/port/out"
	catalogin "patterns/internal/modules/catalog/port/in"
)

type CatalogSourceAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogSourceAdapter(catalog catalogin.Usecase) browseout.ProblemSource {
	return &CatalogSourceAdapter{catalog: catalog}
}

func (a *CatalogSourceAdapter) Problems(ctx context.Context) ([]domain.Problem, time.Time, error) {
	ds, err := a.catalog.Dataset(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	problems := make([]domain.Problem, 0, len(ds.Problems))
	for _, p := range ds.Problems {
		companies := make([]domain.Company, 0, len(p.Companies))
		for _, c := range p.Companies {
			companies = append(companies, domain.Company{Name: c.Name, Slug: c.Slug, Frequency: c.Frequency})
		}
		problems = append(problems, domain.Problem{
			ID:         p.ID,
			Title:      p.Title,
			URL:        p.URL,
			Patterns:   p.Patterns,
			Difficulty: p.Difficulty,
			Companies:  companies,
			Premium:    p.Premium,
		})
	}
	return problems, ds.Updated, nil
}
