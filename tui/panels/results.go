package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/botwars/internal/results"
	"github.com/zappabad/botwars/tui/styles"
)

// RenderResults renders the end-of-session overlay.
func RenderResults(v results.View, width int) string {
	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("🏆 " + v.Title))
	b.WriteString("\n\n")

	if c := v.Champion; c.Name != "" {
		b.WriteString(styles.ChampionStyle.Render(fmt.Sprintf("%s %s", c.Avatar, c.Name)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Net Worth: %s | P&L: %s", c.NetWorth, styles.Sign(c.Positive).Render(c.PnL)))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HeaderStyle.Render(
		fmt.Sprintf("%-3s %-18s %14s %14s %7s %7s", "#", "Bot", "Net Worth", "P/L", "Trades", "Taunts")))
	b.WriteString("\n")
	for _, s := range v.Standings {
		name := s.Avatar + " " + s.Name
		b.WriteString(fmt.Sprintf("%-3d %s %14s %s %7d %7d\n",
			s.Rank,
			styles.Hex(s.Color).Render(padRight(name, 18)),
			s.NetWorth,
			styles.Sign(s.Positive).Render(fmt.Sprintf("%14s", s.PnL)),
			s.Trades,
			s.Taunts,
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.HeaderStyle.Render("🏅 Awards"))
	b.WriteString("\n")
	for _, a := range v.Awards {
		line := a.Line()
		if line == "" {
			line = styles.MutedStyle.Render("-")
		}
		b.WriteString(fmt.Sprintf("%-22s %s\n", a.Label, line))
	}

	b.WriteString("\n")
	b.WriteString(styles.HeaderStyle.Render("📊 Final Market State"))
	b.WriteString("\n")
	for _, m := range v.Market {
		b.WriteString(fmt.Sprintf("%s %14s %s\n",
			styles.Hex(m.Color).Bold(true).Render(fmt.Sprintf("%-6s", m.Symbol)),
			m.Price,
			styles.Sign(m.Positive).Render(m.Change),
		))
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("Next game starts automatically · esc to close"))

	inner := width - 8
	if inner < 40 {
		inner = 40
	}
	return styles.OverlayStyle.Width(inner).Render(b.String())
}

// padRight pads s to n display cells.
func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
