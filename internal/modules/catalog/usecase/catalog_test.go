package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"patterns/internal/modules/catalog/domain"
	"patterns/internal/modules/catalog/service"
	"patterns/internal/modules/catalog/usecase"
	apperrors "patterns/internal/platform/errors"
)

type countingSource struct {
	dataset domain.Dataset
	calls   int
}

func (s *countingSource) Load(context.Context) (domain.Dataset, error) {
	s.calls++
	return s.dataset, nil
}

func TestDatasetIsLoadedOnceAndMapped(t *testing.T) {
	t.Parallel()
	src := &countingSource{dataset: domain.Dataset{
		Updated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Problems: []domain.Problem{
			{ID: 3, Title: "Coin Change", Slug: "coin-change", Patterns: []string{"Dynamic Programming"}, Difficulty: domain.DifficultyMedium,
				Companies: []domain.Company{{Name: "Amazon", Slug: "amazon", Frequency: 4}}},
		},
	}}
	uc := usecase.NewInteractor(service.NewCatalogService(src, zap.NewNop()))

	for range 2 {
		out, err := uc.Dataset(context.Background())
		if err != nil {
			t.Fatalf("dataset: %v", err)
		}
		if len(out.Problems) != 1 || out.Problems[0].URL != "https://leetcode.com/problems/coin-change/" {
			t.Fatalf("unexpected output: %+v", out)
		}
		if out.Problems[0].Difficulty != "Medium" || out.Problems[0].Companies[0].Name != "Amazon" {
			t.Fatalf("fields not mapped: %+v", out.Problems[0])
		}
	}
	if src.calls != 1 {
		t.Fatalf("dataset should load once, loaded %d times", src.calls)
	}

	if _, err := uc.GetProblem(context.Background(), 3); err != nil {
		t.Fatalf("get problem: %v", err)
	}
	if _, err := uc.GetProblem(context.Background(), 99); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
