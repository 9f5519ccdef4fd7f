package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/chart"
	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/tui/styles"
)

// axisWidth is the width of the price axis including the separator.
const axisWidth = 10

// ChartPanel draws the history of one instrument as an area chart.
type ChartPanel struct {
	chart   chart.Chart
	ok      bool
	focused bool
	width   int
	height  int
}

// NewChartPanel creates a new chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *ChartPanel) View() string {
	name := "No instrument"
	var content string
	if !p.ok {
		content = styles.MutedStyle.Render("No price data yet...")
	} else {
		c := p.chart
		name = fmt.Sprintf("%s %s %s",
			c.Symbol,
			styles.PriceStyle.Render(c.PriceLabel),
			styles.Sign(c.BadgeUp).Render(c.Badge),
		)
		content = p.renderChart(p.width-4, p.height-4)
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📉 Chart - "+name, p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content)

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ChartPanel) renderChart(width, height int) string {
	plotWidth := width - axisWidth
	plotHeight := height - 1 // bottom axis
	if plotWidth < 4 || plotHeight < 2 {
		return ""
	}

	plot := chart.Rasterize(p.chart.Series, plotWidth, plotHeight)
	if len(plot.Rows) == 0 {
		return ""
	}

	// the line follows the trend, not the last change
	line := styles.PriceUpStyle
	if p.chart.Trend == chart.TrendDown {
		line = styles.PriceDownStyle
	}

	var b strings.Builder
	for i, row := range plot.Rows {
		label := ""
		switch i {
		case 0:
			label = format.Compact(plot.Max)
		case len(plot.Rows) - 1:
			label = format.Compact(plot.Min)
		}
		b.WriteString(styles.ChartLabelStyle.Render(fmt.Sprintf("%8s", label)))
		b.WriteString(styles.ChartAxisStyle.Render(" │"))
		b.WriteString(line.Render(row))
		b.WriteString("\n")
	}
	b.WriteString(styles.ChartAxisStyle.Render("─────────┴" + strings.Repeat("─", plotWidth)))
	return b.String()
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetChart selects the chart to draw.
func (p *ChartPanel) SetChart(c chart.Chart) {
	p.chart = c
	p.ok = true
}

// Clear removes the chart.
func (p *ChartPanel) Clear() {
	p.chart = chart.Chart{}
	p.ok = false
}
