package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the subset of a Catppuccin flavour the UI draws with.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
}

var (
	Mocha = Palette{
		Base:     lipgloss.Color("#1e1e2e"),
		Mantle:   lipgloss.Color("#181825"),
		Surface0: lipgloss.Color("#313244"),
		Surface1: lipgloss.Color("#45475a"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext0: lipgloss.Color("#a6adc8"),
		Lavender: lipgloss.Color("#b4befe"),
		Sapphire: lipgloss.Color("#74c7ec"),
		Green:    lipgloss.Color("#a6e3a1"),
		Yellow:   lipgloss.Color("#f9e2af"),
		Red:      lipgloss.Color("#f38ba8"),
		Peach:    lipgloss.Color("#fab387"),
	}

	Latte = Palette{
		Base:     lipgloss.Color("#eff1f5"),
		Mantle:   lipgloss.Color("#e6e9ef"),
		Surface0: lipgloss.Color("#ccd0da"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext0: lipgloss.Color("#6c6f85"),
		Lavender: lipgloss.Color("#7287fd"),
		Sapphire: lipgloss.Color("#209fb5"),
		Green:    lipgloss.Color("#40a02b"),
		Yellow:   lipgloss.Color("#df8e1d"),
		Red:      lipgloss.Color("#d20f39"),
		Peach:    lipgloss.Color("#fe640b"),
	}
)

// Styles are the rendered styles for one palette.
type Styles struct {
	Dark    bool
	Palette Palette

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Bar        lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Done       lipgloss.Style
}

// For returns Mocha styles when dark is set and Latte otherwise.
func For(dark bool) Styles {
	p := Latte
	if dark {
		p = Mocha
	}
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Background(p.Mantle).
		Foreground(p.Text).
		Padding(1)

	return Styles{
		Dark:    dark,
		Palette: p,
		App: lipgloss.NewStyle().
			Background(p.Base).
			Foreground(p.Text).
			Padding(1, 2),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.Lavender),
		Bar:        lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		Title:      lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.Subtext0),
		Hot:        lipgloss.NewStyle().Foreground(p.Peach).Bold(true),
		Done:       lipgloss.NewStyle().Foreground(p.Green),
	}
}

// Difficulty colours Easy green, Medium yellow and Hard red.
func (s Styles) Difficulty(level string) lipgloss.Style {
	switch level {
	case "Easy":
		return lipgloss.NewStyle().Foreground(s.Palette.Green)
	case "Medium":
		return lipgloss.NewStyle().Foreground(s.Palette.Yellow)
	case "Hard":
		return lipgloss.NewStyle().Foreground(s.Palette.Red)
	default:
		return s.Muted
	}
}
