package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"patterns/internal/ui/theme"
)

// Answer is the outcome of one key press on the overlay.
type Answer int

const (
	Pending Answer = iota
	Accepted
	Declined
)

// Confirm is a yes/no overlay guarding destructive actions.
type Confirm struct {
	prompt  string
	visible bool
	width   int
	styles  theme.Styles
}

func NewConfirm(styles theme.Styles) Confirm {
	return Confirm{styles: styles}
}

// Visible reports whether the overlay is currently shown.
func (c Confirm) Visible() bool { return c.visible }

// Open shows the overlay with prompt.
func (c *Confirm) Open(prompt string) {
	c.prompt = prompt
	c.visible = true
}

// SetWidth sets the render width for the overlay.
func (c *Confirm) SetWidth(w int) { c.width = w }

func (c *Confirm) SetStyles(styles theme.Styles) { c.styles = styles }

// Update answers yes on y and no on n or esc. Other keys are swallowed while
// the overlay is open. The answer is returned to the caller in the same
// update so the guarded action runs before any later key.
func (c Confirm) Update(msg tea.KeyMsg) (Confirm, Answer) {
	if !c.visible {
		return c, Pending
	}
	switch strings.ToLower(msg.String()) {
	case "y":
		c.visible = false
		return c, Accepted
	case "n", "esc", "ctrl+c":
		c.visible = false
		return c, Declined
	}
	return c, Pending
}

func (c Confirm) View() string {
	if !c.visible {
		return ""
	}
	p := c.styles.Palette
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Peach).
		Background(p.Mantle).
		Foreground(p.Text).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(c.styles.Hot.Render("Clear progress") + "\n\n")
	sb.WriteString(c.prompt + "\n\n")
	sb.WriteString(c.styles.Muted.Render("y: confirm  n/esc: cancel"))

	w := c.width
	if w < 20 {
		w = 64
	}
	return box.Width(w - 2).Render(sb.String())
}
