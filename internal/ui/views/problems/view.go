package problems

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	browsedto "patterns/internal/modules/browse/dto"
	"patterns/internal/platform/clock"
	"patterns/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type BrowsePort interface {
	View(ctx context.Context, input browsedto.ViewInput) (browsedto.ViewOutput, error)
	Options(ctx context.Context) (browsedto.OptionsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the result of one Reload. Seq orders reloads so that a
// slow, superseded result never replaces a newer one.
type LoadedMsg struct {
	Seq int
	Out browsedto.ViewOutput
	Err error
}

type OptionsLoadedMsg struct {
	Options browsedto.OptionsOutput
	Err     error
}

var (
	sources = []string{"own", "help"}
	sorts   = []string{"none", "date-desc", "date-asc"}
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     BrowsePort
	table    table.Model
	criteria browsedto.ViewInput
	options  browsedto.OptionsOutput
	out      browsedto.ViewOutput
	styles   theme.Styles
	err      error
	seq      int
	width    int
	height   int
}

func New(port BrowsePort, styles theme.Styles) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	m := Model{port: port, table: t, criteria: browsedto.ViewInput{Sort: "none"}}
	m.SetStyles(styles)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadOptionsCmd(), m.loadCmd(m.seq, m.criteria))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case LoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.out = msg.Out
		m.table.SetRows(m.rows())
		if m.table.Cursor() >= len(m.out.Rows) {
			m.table.SetCursor(max(len(m.out.Rows)-1, 0))
		}
		return m, nil

	case OptionsLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.options = msg.Options
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderFilters() + "\n")
	if m.err != nil {
		sb.WriteString(m.styles.Hot.Render(m.err.Error()) + "\n")
	}
	sb.WriteString(m.styles.Muted.Render(m.countLine()) + "\n")
	if len(m.out.Rows) == 0 {
		sb.WriteString("\n" + m.styles.Muted.Render("No problems match the current filters. Press x to clear them."))
		return sb.String()
	}
	sb.WriteString(m.table.View() + "\n")
	sb.WriteString(m.renderDetail())
	return sb.String()
}

// SetStyles restyles the table for a palette change.
func (m *Model) SetStyles(styles theme.Styles) {
	m.styles = styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Palette.Surface1).
		BorderBottom(true).
		Foreground(styles.Palette.Sapphire).
		Bold(true)
	s.Cell = s.Cell.Foreground(styles.Palette.Text)
	s.Selected = s.Selected.
		Foreground(styles.Palette.Base).
		Background(styles.Palette.Lavender).
		Bold(false)
	m.table.SetStyles(s)
}

// Criteria returns the active filter and sort selection.
func (m Model) Criteria() browsedto.ViewInput { return m.criteria }

// SelectedID returns the problem under the cursor, if any.
func (m Model) SelectedID() (int, bool) {
	row, ok := m.selected()
	return row.ID, ok
}

// SelectedTitle returns the title under the cursor.
func (m Model) SelectedTitle() string {
	row, _ := m.selected()
	return row.Title
}

// Reload recomputes the view with the current criteria. Results of earlier
// reloads still in flight are dropped when they arrive.
func (m *Model) Reload() tea.Cmd {
	m.seq++
	return m.loadCmd(m.seq, m.criteria)
}

// Current reports whether msg answers the latest reload.
func (m Model) Current(msg LoadedMsg) bool { return msg.Seq == m.seq }

func (m *Model) CyclePattern() tea.Cmd {
	m.criteria.Pattern = cycle(m.options.Patterns, m.criteria.Pattern, true)
	return m.Reload()
}

func (m *Model) CycleDifficulty() tea.Cmd {
	m.criteria.Difficulty = cycle(m.options.Difficulties, m.criteria.Difficulty, true)
	return m.Reload()
}

func (m *Model) CycleCompany() tea.Cmd {
	m.criteria.Company = cycle(m.options.Companies, m.criteria.Company, true)
	return m.Reload()
}

func (m *Model) CycleSource() tea.Cmd {
	m.criteria.Source = cycle(sources, m.criteria.Source, true)
	return m.Reload()
}

func (m *Model) ToggleCompletedOnly() tea.Cmd {
	m.criteria.CompletedOnly = !m.criteria.CompletedOnly
	return m.Reload()
}

func (m *Model) CycleSort() tea.Cmd {
	m.criteria.Sort = cycle(sorts, m.criteria.Sort, false)
	return m.Reload()
}

// ClearFilters drops every filter but keeps the sort order.
func (m *Model) ClearFilters() tea.Cmd {
	m.criteria = browsedto.ViewInput{Sort: m.criteria.Sort}
	return m.Reload()
}

// ─── private ─────────────────────────────────────────────────────────────────

// cycle steps through options. With allowEmpty the empty value ("all") sits
// before the first option.
func cycle(options []string, current string, allowEmpty bool) string {
	if len(options) == 0 {
		return ""
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	next := idx + 1
	if next < len(options) {
		return options[next]
	}
	if allowEmpty {
		return ""
	}
	return options[0]
}

func (m Model) selected() (browsedto.RowOutput, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.out.Rows) {
		return browsedto.RowOutput{}, false
	}
	return m.out.Rows[i], true
}

func columns(width int) []table.Column {
	title := width - 4 - 8 - 24 - 11 - 6 - 12
	if title < 20 {
		title = 20
	}
	return []table.Column{
		{Title: "✓", Width: 4},
		{Title: "Problem", Width: title},
		{Title: "Level", Width: 8},
		{Title: "Pattern", Width: 24},
		{Title: "Completed", Width: 11},
		{Title: "By", Width: 6},
	}
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.out.Rows))
	for _, r := range m.out.Rows {
		check := "[ ]"
		if r.Completed {
			check = "[x]"
		}
		title := r.Title
		if r.Premium {
			title += " *"
		}
		rows = append(rows, table.Row{
			check,
			title,
			r.Difficulty,
			strings.Join(r.Patterns, ", "),
			r.DateCompleted,
			r.Source,
		})
	}
	return rows
}

func (m *Model) resize() {
	m.table.SetColumns(columns(m.width))
	m.table.SetWidth(m.width)
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

func (m Model) renderFilters() string {
	label := func(name, value string) string {
		if value == "" {
			value = "all"
		}
		return m.styles.Muted.Render(name+":") + " " + value
	}
	completed := "all"
	if m.criteria.CompletedOnly {
		completed = "completed"
	}
	parts := []string{
		label("pattern", m.criteria.Pattern),
		label("difficulty", m.criteria.Difficulty),
		label("company", m.criteria.Company),
		label("source", m.criteria.Source),
		m.styles.Muted.Render("show:") + " " + completed,
		label("sort", m.criteria.Sort),
	}
	return strings.Join(parts, "  ")
}

func (m Model) countLine() string {
	line := fmt.Sprintf("Showing %d of %d problems", m.out.Shown, m.out.Total)
	if !m.options.Updated.IsZero() {
		line += "  ·  last updated " + m.options.Updated.Local().Format(clock.DateLayout)
	}
	return line
}

func (m Model) renderDetail() string {
	r, ok := m.selected()
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(r.Title) + "  " + m.styles.Difficulty(r.Difficulty).Render(r.Difficulty) + "\n")
	sb.WriteString(m.styles.Muted.Render("url:       ") + r.URL + "\n")
	if len(r.Companies) > 0 {
		sb.WriteString(m.styles.Muted.Render("companies: ") + r.CompanyPreview() + "\n")
	}
	if r.Completed {
		sb.WriteString(m.styles.Done.Render(fmt.Sprintf("completed %s (%s)", r.DateCompleted, r.Source)))
	}
	return sb.String()
}

func (m Model) loadCmd(seq int, criteria browsedto.ViewInput) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.View(context.Background(), criteria)
		return LoadedMsg{Seq: seq, Out: out, Err: err}
	}
}

func (m Model) loadOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		opts, err := m.port.Options(context.Background())
		return OptionsLoadedMsg{Options: opts, Err: err}
	}
}
