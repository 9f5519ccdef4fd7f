package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/feed"
	"github.com/zappabad/botwars/internal/market"
	"github.com/zappabad/botwars/tui/styles"
)

// FeedPanel displays the trade feed, newest first, in a scrollable viewport.
type FeedPanel struct {
	entries  []feed.Entry
	viewport viewport.Model
	focused  bool
	width    int
	height   int
}

// NewFeedPanel creates a new feed panel.
func NewFeedPanel() *FeedPanel {
	return &FeedPanel{viewport: viewport.New(0, 0)}
}

// Init initializes the panel.
func (p *FeedPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *FeedPanel) Update(msg tea.Msg) (*FeedPanel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !p.focused {
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p *FeedPanel) View() string {
	var content string
	if len(p.entries) == 0 {
		content = styles.MutedStyle.Render("No trades yet")
	} else {
		content = p.viewport.View()
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := fmt.Sprintf("📰 Trade Feed (%d)", len(p.entries))
	if len(p.entries) > 0 && p.viewport.TotalLineCount() > p.viewport.Height {
		title += fmt.Sprintf(" %3.0f%%", p.viewport.ScrollPercent()*100)
	}
	panel := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle(title, p.focused), content)

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *FeedPanel) render() string {
	width := p.width - 4
	if width < 10 {
		width = 10
	}
	clip := lipgloss.NewStyle().MaxWidth(width)

	var b strings.Builder
	for i, e := range p.entries {
		desc := e.Description
		switch e.Kind {
		case market.ActionBuy:
			desc = styles.PriceUpStyle.Render(desc)
		case market.ActionSell:
			desc = styles.PriceDownStyle.Render(desc)
		case market.ActionTaunt, market.ActionSabotage:
			desc = styles.EventNameStyle.Render(desc)
		}
		head := fmt.Sprintf("%s %s %s %s",
			styles.MutedStyle.Render(fmt.Sprintf("R%-2d", e.Round)),
			e.Icon,
			styles.Hex(e.Color).Render(e.Avatar+" "+e.BotName),
			desc,
		)
		b.WriteString(clip.Render(head))
		if e.Commentary != "" {
			b.WriteString("\n")
			b.WriteString(clip.Render("    " + styles.CommentaryStyle.Render("“"+e.Commentary+"”")))
		}
		if i < len(p.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SetFocus sets the focus state of the panel.
func (p *FeedPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *FeedPanel) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.viewport.Width = width - 4
	p.viewport.Height = height - 3
	if p.viewport.Height < 1 {
		p.viewport.Height = 1
	}
	p.viewport.SetContent(p.render())
}

// SetEntries replaces the feed entries. The scroll position is kept unless
// the viewer is at the top, where new entries appear.
func (p *FeedPanel) SetEntries(entries []feed.Entry) {
	atTop := p.viewport.AtTop()
	p.entries = entries
	p.viewport.SetContent(p.render())
	if atTop {
		p.viewport.GotoTop()
	}
}
