// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/callum-jones19/terminal-typer/internal/engine"
	"github.com/callum-jones19/terminal-typer/internal/history"
	"github.com/callum-jones19/terminal-typer/internal/model"
	"github.com/callum-jones19/terminal-typer/internal/prompt"
	statsPkg "github.com/callum-jones19/terminal-typer/internal/stats"
)

type screen int

const (
	screenMenu screen = iota
	screenTyping
	screenSummary
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var banner = []string{
	"┌┬┐┌─┐┬─┐┌┬┐┬┌┐┌┌─┐┬    ┌┬┐┬ ┬┌─┐┌─┐┬─┐",
	" │ ├┤ ├┬┘│││││││├─┤│     │ └┬┘├─┘├┤ ├┬┘",
	" ┴ └─┘┴└─┴ ┴┴┘└┘┴ ┴┴─┘   ┴  ┴ ┴  └─┘┴└─",
}

// Model implements the Bubble Tea game UI. It drives the round engine
// with key events and renders read-only snapshots of its state.
type Model struct {
	source prompt.Source
	eng    *engine.Engine
	hist   *history.History

	scr    screen
	width  int
	height int

	summaryTable table.Model
	lastSummary  model.RoundSummary
	hasLast      bool
	errMsg       string
}

// NewModel constructs the game UI model.
func NewModel(source prompt.Source, eng *engine.Engine, hist *history.History) *Model {
	return &Model{
		source:       source,
		eng:          eng,
		hist:         hist,
		scr:          screenMenu,
		summaryTable: newSummaryTable(),
	}
}

// History returns the rounds recorded during this session, for the exit
// recap.
func (m *Model) History() []model.RoundSummary {
	return m.hist.All()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.scr == screenTyping {
			return m, tick()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.scr {
		case screenMenu:
			return m.updateMenu(msg)
		case screenTyping:
			return m.updateTyping(msg)
		case screenSummary:
			return m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.startRound()
	case tea.KeyEsc:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if err := m.eng.Cancel(); err != nil {
			m.reportEngineErr("cancel", err)
		}
		m.scr = screenMenu
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Before the first keystroke there is nothing to erase; the
		// engine only accepts backspace on a started round.
		if snap := m.eng.Snapshot(); snap.Phase == engine.PhaseNotStarted {
			return m, nil
		}
		if err := m.eng.Backspace(); err != nil {
			m.reportEngineErr("backspace", err)
		}
		return m, nil
	case tea.KeySpace:
		return m.typeRunes([]rune{' '})
	case tea.KeyRunes:
		return m.typeRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.startRound()
	case tea.KeyEsc:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.summaryTable, cmd = m.summaryTable.Update(msg)
		return m, cmd
	}
}

func (m *Model) startRound() (tea.Model, tea.Cmd) {
	text, err := m.source.Next()
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to generate prompt: %v", err)
		m.scr = screenMenu
		return m, nil
	}
	if err := m.eng.Begin(text); err != nil {
		m.reportEngineErr("begin", err)
		return m, nil
	}
	m.errMsg = ""
	m.scr = screenTyping
	return m, tick()
}

func (m *Model) typeRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		if err := m.eng.TypeChar(r); err != nil {
			m.reportEngineErr("type", err)
			return m, nil
		}
		if snap := m.eng.Snapshot(); snap.Phase == engine.PhaseCompleted {
			m.finishRound()
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) finishRound() {
	rd, ok := m.eng.Round()
	if !ok {
		return
	}
	summary, err := statsPkg.Summarize(rd)
	if err != nil {
		m.reportEngineErr("summarize", err)
		m.scr = screenMenu
		return
	}
	m.hist.Record(summary)
	m.lastSummary = summary
	m.hasLast = true
	m.summaryTable.SetRows(summaryRows(m.hist.All()))
	m.summaryTable.GotoBottom()
	m.scr = screenSummary
}

func (m *Model) reportEngineErr(op string, err error) {
	m.errMsg = fmt.Sprintf("%s: %v", op, err)
	logErrf("engine %s: %v\n", op, err)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.scr {
	case screenTyping:
		return m.viewTyping()
	case screenSummary:
		return m.viewSummary()
	default:
		return m.viewMenu()
	}
}

func (m *Model) viewMenu() string {
	lines := make([]string, 0, len(banner)+4)
	for _, l := range banner {
		lines = append(lines, titleStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, hintStyle.Render("[enter] new round   [esc] quit"))
	if m.errMsg != "" {
		lines = append(lines, "", errStyle.Render(m.errMsg))
	}
	return m.place(strings.Join(lines, "\n"))
}

func (m *Model) viewTyping() string {
	snap := m.eng.Snapshot()
	if !snap.Active || len(snap.Prompt) == 0 {
		return ""
	}
	cursorIndex := -1
	if len(snap.Typed) < len(snap.Prompt) {
		cursorIndex = len(snap.Typed)
	}
	styledRunes := buildStyledRunes(snap.Prompt, snap.Typed, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter(snap)
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) viewSummary() string {
	rounds := m.hist.All()
	agg := statsPkg.AggregateRounds(rounds)
	lines := []string{
		titleStyle.Render("Round complete"),
		"",
		fmt.Sprintf("WPM %.1f · Accuracy %.1f%% · %.1fs",
			m.lastSummary.WPM, m.lastSummary.Accuracy*100, m.lastSummary.Elapsed.Seconds()),
		"",
		m.summaryTable.View(),
	}
	if agg.Rounds >= 2 {
		wpms := make([]float64, 0, agg.Rounds)
		for _, r := range rounds {
			wpms = append(wpms, r.WPM)
		}
		lines = append(lines, "", footerStyle.Render(fmt.Sprintf("WPM trend [%s]  Best %.1f", statsPkg.Sparkline(wpms), agg.BestWPM)))
	}
	lines = append(lines, "", hintStyle.Render("[enter] new round   [esc] quit"))
	return m.place(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter(snap engine.Snapshot) string {
	if len(snap.Prompt) == 0 {
		return ""
	}
	progress := int(float64(len(snap.Typed)) / float64(len(snap.Prompt)) * 100)
	correct := 0
	for _, ks := range snap.Typed {
		if ks.Correct {
			correct++
		}
	}
	accuracy := 100.0
	if len(snap.Typed) > 0 {
		accuracy = float64(correct) / float64(len(snap.Typed)) * 100
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Accuracy %.1f%%", accuracy),
		fmt.Sprintf("Time %.1fs", snap.Elapsed.Seconds()),
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM", m.lastSummary.WPM))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func newSummaryTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 5},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 8},
		{Title: "Time", Width: 7},
		{Title: "Errors", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0"))
	t.SetStyles(styles)
	return t
}

func summaryRows(rounds []model.RoundSummary) []table.Row {
	rows := make([]table.Row, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%.1f%%", r.Accuracy*100),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			fmt.Sprintf("%d", r.PromptLen-r.Correct),
		})
	}
	return rows
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
