package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"patterns/internal/modules/browse/domain"
	browseout "patterns/internal/modules/browse/port/out"
	apperrors "patterns/internal/platform/errors"
)

// PreviewCompanies is how many companies a row shows before "+N more".
const PreviewCompanies = 3

type BrowseService struct {
	problems browseout.ProblemSource
	marks    browseout.MarkSource
	logger   *zap.Logger
}

func NewBrowseService(problems browseout.ProblemSource, marks browseout.MarkSource, logger *zap.Logger) *BrowseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseService{problems: problems, marks: marks, logger: logger}
}

// View recomputes the whole view from the dataset and the current marks.
func (s *BrowseService) View(ctx context.Context, c domain.Criteria, key domain.SortKey) ([]domain.Row, int, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	problems, _, err := s.problems.Problems(ctx)
	if err != nil {
		return nil, 0, err
	}
	marks, err := s.marks.Marks(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows := domain.View(problems, c, marks, key)
	s.logger.Debug("view computed",
		zap.Int("shown", len(rows)),
		zap.Int("total", len(problems)),
		zap.String("sort", string(key)),
	)
	return rows, len(problems), nil
}

type Options struct {
	Patterns  []string
	Companies []string
	Updated   time.Time
}

func (s *BrowseService) Options(ctx context.Context) (Options, error) {
	problems, updated, err := s.problems.Problems(ctx)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Patterns:  domain.DistinctPatterns(problems),
		Companies: domain.DistinctCompanies(problems),
		Updated:   updated,
	}, nil
}
