package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"patterns/internal/modules/catalog/domain"
	catalogout "patterns/internal/modules/catalog/port/out"
	apperrors "patterns/internal/platform/errors"
)

// CatalogService loads the dataset once and serves it read-only afterwards.
type CatalogService struct {
	source catalogout.DatasetSource
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	dataset domain.Dataset
}

func NewCatalogService(source catalogout.DatasetSource, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{source: source, logger: logger}
}

func (s *CatalogService) Dataset(ctx context.Context) (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.dataset, nil
	}
	ds, err := s.source.Load(ctx)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	s.dataset = ds
	s.loaded = true
	s.logger.Debug("dataset loaded", zap.Int("problems", len(ds.Problems)), zap.Time("updated", ds.Updated))
	return ds, nil
}

func (s *CatalogService) GetProblem(ctx context.Context, id int) (domain.Problem, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return domain.Problem{}, err
	}
	p, ok := ds.Find(id)
	if !ok {
		return domain.Problem{}, fmt.Errorf("problem %d: %w", id, apperrors.ErrNotFound)
	}
	return p, nil
}
