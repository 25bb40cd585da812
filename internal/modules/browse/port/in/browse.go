package in

import (
	"context"

	"patterns/internal/modules/browse/dto"
)

type Usecase interface {
	View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error)
	Options(ctx context.Context) (dto.OptionsOutput, error)
}
