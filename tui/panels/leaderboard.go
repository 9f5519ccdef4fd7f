package panels

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/leaderboard"
	"github.com/zappabad/botwars/tui/styles"
)

// LeaderboardPanel displays the ranked participants with net worth bars.
type LeaderboardPanel struct {
	rows         []leaderboard.Row
	scrollOffset int
	focused      bool
	width        int
	height       int
}

// NewLeaderboardPanel creates a new leaderboard panel.
func NewLeaderboardPanel() *LeaderboardPanel {
	return &LeaderboardPanel{}
}

// Init initializes the panel.
func (p *LeaderboardPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *LeaderboardPanel) Update(msg tea.Msg) (*LeaderboardPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, keyUp):
			if p.scrollOffset > 0 {
				p.scrollOffset--
			}
		case key.Matches(msg, keyDown):
			if p.scrollOffset < len(p.rows)-1 {
				p.scrollOffset++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *LeaderboardPanel) View() string {
	var content strings.Builder

	if len(p.rows) == 0 {
		content.WriteString(styles.MutedStyle.Render("No participants"))
	} else {
		// two lines per participant: stats, then the bar
		visible := (p.height - 4) / 2
		if visible < 1 {
			visible = 1
		}
		start := p.scrollOffset
		if start > len(p.rows)-1 {
			start = len(p.rows) - 1
		}
		end := start + visible
		if end > len(p.rows) {
			end = len(p.rows)
		}

		barWidth := p.width - 6
		if barWidth < 5 {
			barWidth = 5
		}

		for i := start; i < end; i++ {
			r := p.rows[i]
			line := fmt.Sprintf("%-3s %s %-14s %14s %s",
				r.Badge,
				r.Avatar,
				r.Name,
				r.NetWorth,
				styles.Sign(r.Positive).Render(r.PnL),
			)
			content.WriteString(styles.RowStyle.Render(line))
			content.WriteString("\n")
			content.WriteString(renderBar(r.BarWidth, barWidth, r.Positive))
			if i < end-1 {
				content.WriteString("\n")
			}
		}
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🏁 Leaderboard", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// renderBar draws pct percent of width cells, at least one.
func renderBar(pct float64, width int, positive bool) string {
	cells := int(math.Round(pct / 100 * float64(width)))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return styles.Sign(positive).Render(strings.Repeat("█", cells)) +
		styles.MutedStyle.Render(strings.Repeat("░", width-cells))
}

// SetFocus sets the focus state of the panel.
func (p *LeaderboardPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *LeaderboardPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRows sets the ranked rows.
func (p *LeaderboardPanel) SetRows(rows []leaderboard.Row) {
	p.rows = rows
}
