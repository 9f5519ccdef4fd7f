package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/notify"
	"github.com/zappabad/botwars/tui/styles"
)

// EventsPanel lists the active market events.
type EventsPanel struct {
	cards   []notify.Card
	focused bool
	width   int
	height  int
}

// NewEventsPanel creates a new events panel.
func NewEventsPanel() *EventsPanel {
	return &EventsPanel{}
}

// Init initializes the panel.
func (p *EventsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *EventsPanel) Update(msg tea.Msg) (*EventsPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *EventsPanel) View() string {
	var content strings.Builder

	if len(p.cards) == 0 {
		content.WriteString(styles.MutedStyle.Render("Markets are calm"))
	} else {
		clip := lipgloss.NewStyle().MaxWidth(p.width - 4)
		budget := p.height - 3
		for i, c := range p.cards {
			// three lines per card
			if budget < 3 {
				break
			}
			marker := "▼"
			if c.Positive {
				marker = "▲"
			}
			content.WriteString(clip.Render(styles.Sign(c.Positive).Render(marker) + " " + styles.EventNameStyle.Render(c.Name)))
			content.WriteString("\n")
			content.WriteString(clip.Render("  " + c.Description))
			content.WriteString("\n")
			content.WriteString(clip.Render("  " + styles.MutedStyle.Render(c.Meta)))
			if i < len(p.cards)-1 {
				content.WriteString("\n")
			}
			budget -= 3
		}
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("⚡ Events", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *EventsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *EventsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetCards sets the active event cards.
func (p *EventsPanel) SetCards(cards []notify.Card) {
	p.cards = cards
}

// RenderBanner renders the breaking news banner across width cells.
func RenderBanner(b notify.Banner, width int) string {
	style := styles.BannerNegativeStyle
	if b.Positive {
		style = styles.BannerPositiveStyle
	}
	return style.Width(width).MaxWidth(width).Render(b.Text)
}
