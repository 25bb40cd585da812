package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"patterns/internal/modules/progress/domain"
	progressout "patterns/internal/modules/progress/port/out"
	"patterns/internal/platform/clock"
	apperrors "patterns/internal/platform/errors"
)

// ConfirmFunc answers the yes/no gate in front of ClearAll.
type ConfirmFunc func(ctx context.Context) (bool, error)

// ProgressService owns the completion store. Every accepted mutation is
// written through to the state store exactly once, in call order; nothing is
// written until Hydrate has run.
type ProgressService struct {
	clock  clock.Clock
	store  progressout.StateStore
	logger *zap.Logger

	mu       sync.Mutex
	state    *domain.Store
	hydrated bool
	report   domain.LoadReport
}

func NewProgressService(clk clock.Clock, store progressout.StateStore, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{clock: clk, store: store, logger: logger, state: domain.NewStore()}
}

// Hydrate loads the persisted completion map once. known, when non-nil,
// drops records for ids outside the dataset. Malformed state is discarded and
// replaced by an empty store; read failures are returned and leave the
// service unhydrated.
func (s *ProgressService) Hydrate(ctx context.Context, known map[int]struct{}) (domain.LoadReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated {
		return s.report, nil
	}

	raw, ok, err := s.store.Get(ctx, domain.StorageKey)
	if err != nil {
		return domain.LoadReport{}, fmt.Errorf("read completed problems: %w", err)
	}

	report := domain.LoadReport{Shape: domain.ShapeAbsent}
	state := domain.NewStore()
	if ok {
		decoded, decodeErr := domain.Decode(raw, clock.Today(s.clock))
		if decodeErr != nil {
			s.logger.Warn("discarding malformed completed problems",
				zap.Error(fmt.Errorf("%w: %v", apperrors.ErrMalformedState, decodeErr)))
			if rmErr := s.store.Remove(ctx, domain.StorageKey); rmErr != nil {
				s.logger.Error("remove malformed completed problems", zap.Error(rmErr))
			}
			report.Recovered = true
		} else {
			state = decoded.Store
			report.Shape = decoded.Shape
			report.Dropped = decoded.Dropped
			report.Repaired = decoded.Repaired
			if decoded.Shape == domain.ShapeLegacy {
				s.logger.Info("migrated legacy completed problems", zap.Int("count", state.Len()))
			}
			s.logDecodeIssues(decoded)
		}
	}
	if known != nil {
		report.Pruned = state.Prune(known)
		if len(report.Pruned) > 0 {
			s.logger.Info("pruned stale completed problems", zap.Ints("ids", report.Pruned))
		}
	}
	report.Count = state.Len()

	s.state = state
	s.report = report
	s.hydrated = true
	s.logger.Debug("loaded completed problems", zap.Int("count", report.Count), zap.String("shape", string(report.Shape)))
	return report, nil
}

func (s *ProgressService) ToggleCompleted(ctx context.Context, problemID int) (domain.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var completed bool
	err := s.mutate(ctx, "toggle-completed", func(next *domain.Store) bool {
		completed = next.ToggleCompleted(problemID, clock.Today(s.clock))
		return true
	})
	if err != nil {
		return domain.Record{}, false, err
	}
	rec, _ := s.state.Get(problemID)
	return rec, completed, nil
}

// ToggleSolutionSource flips own/help. The bool result is false when the
// problem is not completed, in which case nothing is written.
func (s *ProgressService) ToggleSolutionSource(ctx context.Context, problemID int) (domain.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.mutate(ctx, "toggle-source", func(next *domain.Store) bool {
		return next.ToggleSolutionSource(problemID)
	})
	if err != nil {
		return domain.Record{}, false, err
	}
	rec, ok := s.state.Get(problemID)
	return rec, ok, nil
}

// ClearAll empties the store and removes the persisted key, but only after
// confirm answers yes. A declined confirmation is not an error.
func (s *ProgressService) ClearAll(ctx context.Context, confirm ConfirmFunc) (bool, int, error) {
	if err := s.requireHydrated(); err != nil {
		return false, 0, err
	}
	if confirm == nil {
		return false, 0, fmt.Errorf("confirmation is required: %w", apperrors.ErrInvalidInput)
	}
	ok, err := confirm(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("confirm clear: %w", err)
	}
	if !ok {
		s.logger.Debug("clear all declined")
		return false, 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Remove(ctx, domain.StorageKey); err != nil {
		return false, 0, fmt.Errorf("remove completed problems: %w", err)
	}
	removed := s.state.Len()
	s.state = domain.NewStore()
	s.logger.Info("cleared all completed problems", zap.Int("removed", removed))
	return true, removed, nil
}

// Snapshot returns a copy of every record.
func (s *ProgressService) Snapshot() (map[int]domain.Record, error) {
	if err := s.requireHydrated(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Records(), nil
}

func (s *ProgressService) Export() (string, error) {
	if err := s.requireHydrated(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Encode(s.state)
}

// Import replaces the store with raw, accepting both the legacy list and the
// current map, and persists the result.
func (s *ProgressService) Import(ctx context.Context, raw string) (domain.LoadReport, error) {
	decoded, err := domain.Decode(raw, clock.Today(s.clock))
	if err != nil {
		return domain.LoadReport{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if decoded.Store.Len() == 0 && len(decoded.Dropped) > 0 {
		return domain.LoadReport{}, fmt.Errorf("%w: no readable records in import", apperrors.ErrInvalidInput)
	}
	s.logDecodeIssues(decoded)
	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.mutate(ctx, "import", func(next *domain.Store) bool {
		next.Replace(decoded.Store)
		return true
	})
	if err != nil {
		return domain.LoadReport{}, err
	}
	return domain.LoadReport{
		Shape:    decoded.Shape,
		Count:    s.state.Len(),
		Dropped:  decoded.Dropped,
		Repaired: decoded.Repaired,
	}, nil
}

// logDecodeIssues reports entries that were skipped or defaulted while
// reading a completion map. The other records are kept.
func (s *ProgressService) logDecodeIssues(decoded domain.Decoded) {
	if len(decoded.Dropped) > 0 {
		s.logger.Warn("skipped unreadable completed problems",
			zap.Strings("keys", decoded.Dropped),
			zap.Error(apperrors.ErrMalformedState))
	}
	if len(decoded.Repaired) > 0 {
		s.logger.Warn("repaired incomplete completed problems", zap.Ints("ids", decoded.Repaired))
	}
}

func (s *ProgressService) requireHydrated() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return apperrors.ErrNotHydrated
	}
	return nil
}

// mutate applies fn to a copy of the state and commits it only once the
// write succeeds. Callers hold s.mu.
func (s *ProgressService) mutate(ctx context.Context, op string, fn func(next *domain.Store) bool) error {
	if !s.hydrated {
		return apperrors.ErrNotHydrated
	}
	next := s.state.Clone()
	if !fn(next) {
		return nil
	}
	payload, err := domain.Encode(next)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, domain.StorageKey, payload); err != nil {
		return fmt.Errorf("persist completed problems: %w", err)
	}
	s.state = next
	s.logger.Debug("saved completed problems", zap.String("op", op), zap.Int("count", next.Len()))
	return nil
}
