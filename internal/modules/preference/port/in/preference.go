package in

import (
	"context"

	"patterns/internal/modules/preference/dto"
)

type Usecase interface {
	Theme(ctx context.Context) (dto.ThemeOutput, error)
	SetTheme(ctx context.Context, dark bool) (dto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (dto.ThemeOutput, error)
}
