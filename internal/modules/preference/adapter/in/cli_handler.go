package in

import (
	"context"
	"fmt"
	"strings"

	"patterns/internal/modules/preference/dto"
	preferencein "patterns/internal/modules/preference/port/in"
)

type CLIHandler struct {
	usecase preferencein.Usecase
}

func NewCLIHandler(usecase preferencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Theme(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.Theme(ctx)
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	return h.usecase.ToggleTheme(ctx)
}

// Apply handles the theme subcommand argument: dark, light or toggle.
func (h CLIHandler) Apply(ctx context.Context, arg string) (dto.ThemeOutput, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "dark":
		return h.usecase.SetTheme(ctx, true)
	case "light":
		return h.usecase.SetTheme(ctx, false)
	case "toggle":
		return h.usecase.ToggleTheme(ctx)
	default:
		return dto.ThemeOutput{}, fmt.Errorf("theme must be dark, light or toggle, got %q", arg)
	}
}
