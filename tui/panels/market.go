package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/game"
	"github.com/zappabad/botwars/internal/pricecache"
	"github.com/zappabad/botwars/tui/styles"
)

var (
	keyUp   = key.NewBinding(key.WithKeys("up", "k"))
	keyDown = key.NewBinding(key.WithKeys("down", "j"))
)

// MarketPanel displays the live price table of all instruments.
type MarketPanel struct {
	rows          []game.InstrumentRow
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates a new market panel.
func NewMarketPanel() *MarketPanel {
	return &MarketPanel{}
}

// Init initializes the panel.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, keyUp):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, keyDown):
			if p.selectedIndex < len(p.rows)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	if len(p.rows) == 0 {
		content.WriteString(styles.MutedStyle.Render("Waiting for the market..."))
	} else {
		header := fmt.Sprintf("%-6s %-14s %14s %8s", "Sym", "Name", "Price", "Chg")
		content.WriteString(styles.HeaderStyle.Render(header))
		content.WriteString("\n")

		for i, r := range p.rows {
			name := r.Name
			if len([]rune(name)) > 14 {
				name = string([]rune(name)[:13]) + "…"
			}

			sym := styles.Hex(r.Color).Bold(true).Render(fmt.Sprintf("%-6s", r.Symbol))
			price := fmt.Sprintf("%14s", r.Price)
			switch r.Flash {
			case pricecache.FlashUp:
				price = styles.FlashUpStyle.Render(price)
			case pricecache.FlashDown:
				price = styles.FlashDownStyle.Render(price)
			default:
				price = styles.PriceStyle.Render(price)
			}
			change := styles.Sign(r.Up).Render(fmt.Sprintf("%8s", r.Change))

			line := fmt.Sprintf("%s %-14s %s %s", sym, name, price, change)
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}
			content.WriteString(line)
			if i < len(p.rows)-1 {
				content.WriteString("\n")
			}
		}
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Market", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetRows replaces the instrument rows, keeping the selection in range.
func (p *MarketPanel) SetRows(rows []game.InstrumentRow) {
	p.rows = rows
	if p.selectedIndex >= len(p.rows) {
		p.selectedIndex = len(p.rows) - 1
	}
	if p.selectedIndex < 0 {
		p.selectedIndex = 0
	}
}

// Selected returns the symbol of the selected row.
func (p *MarketPanel) Selected() string {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.rows) {
		return p.rows[p.selectedIndex].Symbol
	}
	return ""
}
