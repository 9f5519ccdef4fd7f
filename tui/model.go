package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/game"
	"github.com/zappabad/botwars/tui/panels"
	"github.com/zappabad/botwars/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket      PanelFocus = 0
	FocusChart       PanelFocus = 1
	FocusLeaderboard PanelFocus = 2
	FocusEvents      PanelFocus = 3
	FocusFeed        PanelFocus = 4

	panelCount = 5
)

// Model is the main TUI application model.
type Model struct {
	ctrl *game.Controller

	// Panels
	marketPanel      *panels.MarketPanel
	chartPanel       *panels.ChartPanel
	leaderboardPanel *panels.LeaderboardPanel
	eventsPanel      *panels.EventsPanel
	feedPanel        *panels.FeedPanel

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	dash  game.Dashboard
	ready bool
}

// NewModel creates a new TUI model driving ctrl.
func NewModel(ctrl *game.Controller) *Model {
	return &Model{
		ctrl:             ctrl,
		marketPanel:      panels.NewMarketPanel(),
		chartPanel:       panels.NewChartPanel(),
		leaderboardPanel: panels.NewLeaderboardPanel(),
		eventsPanel:      panels.NewEventsPanel(),
		feedPanel:        panels.NewFeedPanel(),
		focusedPanel:     FocusMarket,
	}
}

// Init starts the first session.
func (m *Model) Init() tea.Cmd {
	return m.ctrl.Start()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.ctrl.Close()
			return m, tea.Quit

		case "esc":
			m.ctrl.HideResults()

		// Cycle focus with tab
		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % panelCount

		case "shift+tab":
			m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
	}

	if cmd := m.ctrl.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Update focused panel
	m.applyFocus()
	m.updateFocusedPanel(msg, &cmds)
	m.refresh()

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusMarket:
		m.marketPanel, cmd = m.marketPanel.Update(msg)
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusLeaderboard:
		m.leaderboardPanel, cmd = m.leaderboardPanel.Update(msg)
	case FocusEvents:
		m.eventsPanel, cmd = m.eventsPanel.Update(msg)
	case FocusFeed:
		m.feedPanel, cmd = m.feedPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) applyFocus() {
	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.leaderboardPanel.SetFocus(m.focusedPanel == FocusLeaderboard)
	m.eventsPanel.SetFocus(m.focusedPanel == FocusEvents)
	m.feedPanel.SetFocus(m.focusedPanel == FocusFeed)
}

// refresh copies the controller's dashboard into the panels.
func (m *Model) refresh() {
	m.dash = m.ctrl.Dashboard()

	m.marketPanel.SetRows(m.dash.Instruments)
	m.leaderboardPanel.SetRows(m.dash.Leaderboard)
	m.eventsPanel.SetCards(m.dash.Events)
	m.feedPanel.SetEntries(m.dash.Feed)

	// chart follows the market selection, falling back to the first instrument
	selected := m.marketPanel.Selected()
	m.chartPanel.Clear()
	for i, c := range m.dash.Charts {
		if c.Symbol == selected || (selected == "" && i == 0) {
			m.chartPanel.SetChart(c)
			break
		}
	}
}

// Layout:
// ┌──────────────────────────────────────────────┐
// │ header                                       │
// ├──────────────┬──────────────┬────────────────┤
// │    Market    │    Chart     │  Leaderboard   │
// ├──────────────┼──────────────┴────────────────┤
// │    Events    │          Trade Feed           │
// └──────────────┴───────────────────────────────┘
func (m *Model) layout() {
	leftWidth := m.width / 3
	middleWidth := m.width / 3
	rightWidth := m.width - leftWidth - middleWidth

	// header, banner and status bar take one line each
	body := m.height - 3
	topHeight := body / 2
	bottomHeight := body - topHeight

	m.marketPanel.SetSize(leftWidth, topHeight)
	m.chartPanel.SetSize(middleWidth, topHeight)
	m.leaderboardPanel.SetSize(rightWidth, topHeight)
	m.eventsPanel.SetSize(leftWidth, bottomHeight)
	m.feedPanel.SetSize(m.width-leftWidth, bottomHeight)
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		m.chartPanel.View(),
		m.leaderboardPanel.View(),
	)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.eventsPanel.View(),
		m.feedPanel.View(),
	)

	banner := ""
	if m.dash.BannerVisible {
		banner = panels.RenderBanner(m.dash.Banner, m.width)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		banner,
		topRow,
		bottomRow,
		m.renderStatusBar(),
	)

	if m.dash.Results != nil {
		overlay := panels.RenderResults(*m.dash.Results, m.width*2/3)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return screen
}

func (m *Model) renderHeader() string {
	h := m.dash.Header
	round := "Round -"
	if h.TotalRounds > 0 {
		round = fmt.Sprintf("Round %d/%d", h.Round, h.TotalRounds)
	}
	text := fmt.Sprintf("⚔️  BOT WARS  │ %s │ Mood: %s", round, h.MoodText())
	return styles.HeaderStyle.Width(m.width).Render(text)
}

func (m *Model) renderStatusBar() string {
	// Help text
	help := []string{
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("esc") + styles.StatusBarDescStyle.Render(" close results"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3])

	d := m.dash
	session := d.SessionID
	if len(session) > 8 {
		session = session[:8]
	}
	status := fmt.Sprintf(" │ %s │ session %s gen %d │ ticks %d fails %d skipped %d dropped %d news %d",
		d.State, session, d.Generation,
		d.Stats.Ticks, d.Stats.TickFailures, d.Stats.SkippedPolls, d.Stats.Discarded, d.Stats.Banners)

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}
