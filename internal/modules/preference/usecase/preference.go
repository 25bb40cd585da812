package usecase

import (
	"context"

	"patterns/internal/modules/preference/domain"
	"patterns/internal/modules/preference/dto"
	preferencein "patterns/internal/modules/preference/port/in"
	"patterns/internal/modules/preference/service"
)

type Interactor struct {
	svc *service.PreferenceService
}

func NewInteractor(svc *service.PreferenceService) preferencein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Theme(ctx context.Context) (dto.ThemeOutput, error) {
	return toOutput(i.svc.Theme(ctx))
}

func (i *Interactor) SetTheme(ctx context.Context, dark bool) (dto.ThemeOutput, error) {
	return toOutput(i.svc.SetTheme(ctx, domain.ThemeFromDark(dark)))
}

func (i *Interactor) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	return toOutput(i.svc.ToggleTheme(ctx))
}

func toOutput(theme domain.Theme, err error) (dto.ThemeOutput, error) {
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Theme: string(theme), Dark: theme.Dark()}, nil
}
