package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	preferencedto "patterns/internal/modules/preference/dto"
	progressdto "patterns/internal/modules/progress/dto"
	progressin "patterns/internal/modules/progress/port/in"
	"patterns/internal/ui/components"
	"patterns/internal/ui/theme"
	problemsview "patterns/internal/ui/views/problems"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type progressPort interface {
	ToggleCompleted(ctx context.Context, problemID int) (progressdto.RecordOutput, error)
	ToggleSolutionSource(ctx context.Context, problemID int) (progressdto.RecordOutput, error)
	ClearAll(ctx context.Context, confirmer progressin.Confirmer) (progressdto.ClearOutput, error)
	Summary(ctx context.Context, total int) (progressdto.SummaryOutput, error)
}

type preferencePort interface {
	ToggleTheme(ctx context.Context) (preferencedto.ThemeOutput, error)
}

// toggleResult describes one completion change for the status bar.
type toggleResult struct {
	record progressdto.RecordOutput
	source bool
}

// answered adapts an overlay answer to the progress confirmer port.
type answered bool

func (a answered) Confirm(context.Context, string) (bool, error) { return bool(a), nil }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle     key.Binding
	Source     key.Binding
	Pattern    key.Binding
	Difficulty key.Binding
	Company    key.Binding
	BySource   key.Binding
	Completed  key.Binding
	Sort       key.Binding
	Reset      key.Binding
	Theme      key.Binding
	ClearAll   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Source:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "own/help")),
		Pattern:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pattern")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Company:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "company")),
		BySource:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "source filter")),
		Completed:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "completed only")),
		Sort:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sort by date")),
		Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ClearAll:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear progress")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Source, k.Sort, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Source, k.ClearAll},
		{k.Pattern, k.Difficulty, k.Company, k.BySource, k.Completed},
		{k.Sort, k.Reset, k.Theme},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes keys, owns the progress
// banner and the confirm overlay, and delegates the problem table to the
// problems view.
type Model struct {
	progress   progressPort
	preference preferencePort

	problems problemsview.Model
	confirm  components.Confirm
	styles   theme.Styles

	keys     keyMap
	help     help.Model
	showHelp bool
	summary  progressdto.SummaryOutput
	status   string
	width    int
	height   int
}

func NewModel(browse problemsview.BrowsePort, progress progressPort, preference preferencePort, dark bool) Model {
	styles := theme.For(dark)
	return Model{
		progress:   progress,
		preference: preference,
		problems:   problemsview.New(browse, styles),
		confirm:    components.NewConfirm(styles),
		styles:     styles,
		keys:       defaultKeys(),
		help:       help.New(),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.problems.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The overlay intercepts all key input while open.
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && m.confirm.Visible() {
		var answer components.Answer
		m.confirm, answer = m.confirm.Update(keyMsg)
		if answer == components.Pending {
			return m, nil
		}
		return m, m.clearAll(answer == components.Accepted)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.confirm.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width
		var cmd tea.Cmd
		m.problems, cmd = m.problems.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 4})
		return m, cmd

	case problemsview.LoadedMsg:
		current := m.problems.Current(msg)
		var cmd tea.Cmd
		m.problems, cmd = m.problems.Update(msg)
		if !current {
			return m, cmd
		}
		if msg.Err != nil {
			m.status = "view: " + msg.Err.Error()
			return m, cmd
		}
		m.refreshSummary(msg.Out.Total)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.problems, cmd = m.problems.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil, true
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.problems.SelectedID(); ok {
			return m.toggle(id, false), true
		}
		return nil, true
	case key.Matches(msg, m.keys.Source):
		if id, ok := m.problems.SelectedID(); ok {
			return m.toggle(id, true), true
		}
		return nil, true
	case key.Matches(msg, m.keys.Pattern):
		return m.problems.CyclePattern(), true
	case key.Matches(msg, m.keys.Difficulty):
		return m.problems.CycleDifficulty(), true
	case key.Matches(msg, m.keys.Company):
		return m.problems.CycleCompany(), true
	case key.Matches(msg, m.keys.BySource):
		return m.problems.CycleSource(), true
	case key.Matches(msg, m.keys.Completed):
		return m.problems.ToggleCompletedOnly(), true
	case key.Matches(msg, m.keys.Sort):
		return m.problems.CycleSort(), true
	case key.Matches(msg, m.keys.Reset):
		return m.problems.ClearFilters(), true
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return nil, true
	case key.Matches(msg, m.keys.ClearAll):
		m.confirm.Open(progressin.ClearPrompt)
		return nil, true
	}
	return nil, false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.confirm.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.confirm.View())
	default:
		content = m.problems.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("LeetCode Patterns")
	banner := m.styles.Done.Render(fmt.Sprintf("%d / %d completed (%d%%)", m.summary.Completed, m.summary.Total, m.summary.Percent))
	return m.styles.Bar.Width(m.width).Render(title+"  "+banner) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.styles.Muted.Render("?:help  space:done  o:source  X:clear  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + m.styles.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) applyTheme(dark bool) {
	m.styles = theme.For(dark)
	m.problems.SetStyles(m.styles)
	m.confirm.SetStyles(m.styles)
}

func describeToggle(msg toggleResult) string {
	r := msg.record
	switch {
	case msg.source && r.Completed:
		return fmt.Sprintf("#%d solved with %s", r.ProblemID, r.Source)
	case msg.source:
		return fmt.Sprintf("#%d is not completed", r.ProblemID)
	case r.Completed:
		return fmt.Sprintf("#%d completed %s", r.ProblemID, r.DateCompleted)
	default:
		return fmt.Sprintf("#%d marked open", r.ProblemID)
	}
}

// ─── progress actions ────────────────────────────────────────────────────────

// The progress and preference stores are synchronous, so every change runs
// inside Update. Bubble Tea serializes Update calls, which keeps saves in the
// order the keys were pressed. Only the view recomputation is asynchronous.

func (m *Model) toggle(id int, source bool) tea.Cmd {
	var (
		rec progressdto.RecordOutput
		err error
	)
	if source {
		rec, err = m.progress.ToggleSolutionSource(context.Background(), id)
	} else {
		rec, err = m.progress.ToggleCompleted(context.Background(), id)
	}
	if err != nil {
		m.status = "save failed: " + err.Error()
		return nil
	}
	m.status = describeToggle(toggleResult{record: rec, source: source})
	return m.problems.Reload()
}

func (m *Model) clearAll(accepted bool) tea.Cmd {
	out, err := m.progress.ClearAll(context.Background(), answered(accepted))
	switch {
	case err != nil:
		m.status = "clear failed: " + err.Error()
		return nil
	case out.Cleared:
		m.status = fmt.Sprintf("cleared %d completed problems", out.Removed)
	default:
		m.status = "clear cancelled"
		return nil
	}
	return m.problems.Reload()
}

func (m *Model) refreshSummary(total int) {
	out, err := m.progress.Summary(context.Background(), total)
	if err != nil {
		m.status = "summary: " + err.Error()
		return
	}
	m.summary = out
}

func (m *Model) toggleTheme() {
	out, err := m.preference.ToggleTheme(context.Background())
	if err != nil {
		m.status = "theme: " + err.Error()
		return
	}
	m.applyTheme(out.Dark)
}
