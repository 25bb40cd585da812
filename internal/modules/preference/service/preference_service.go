package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"patterns/internal/modules/preference/domain"
	preferenceout "patterns/internal/modules/preference/port/out"
	apperrors "patterns/internal/platform/errors"
)

type PreferenceService struct {
	store  preferenceout.PreferenceStore
	logger *zap.Logger
}

func NewPreferenceService(store preferenceout.PreferenceStore, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{store: store, logger: logger}
}

// Theme returns the persisted theme, falling back to light when the key is
// absent. An unparseable value is removed and treated as absent.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := s.store.Get(ctx, domain.StorageKey)
	if err != nil {
		return "", fmt.Errorf("read theme preference: %w", err)
	}
	if !ok {
		return domain.DefaultTheme, nil
	}
	theme, err := domain.DecodeDarkMode(raw)
	if err != nil {
		s.logger.Warn("discarding malformed theme preference",
			zap.Error(fmt.Errorf("%w: %v", apperrors.ErrMalformedState, err)))
		if rmErr := s.store.Remove(ctx, domain.StorageKey); rmErr != nil {
			s.logger.Error("remove malformed theme preference", zap.Error(rmErr))
		}
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if err := s.store.Set(ctx, domain.StorageKey, domain.EncodeDarkMode(theme)); err != nil {
		return "", fmt.Errorf("persist theme preference: %w", err)
	}
	s.logger.Debug("saved theme preference", zap.String("theme", string(theme)))
	return theme, nil
}

func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	return s.SetTheme(ctx, current.Toggle())
}
