// Package results builds the end-of-session results view model.
package results

import (
	"fmt"

	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/internal/market"
)

// DefaultWinTarget is the net worth that ends a session early.
const DefaultWinTarget = 10000.0

// FallbackTitle is used when the session ran out of rounds.
const FallbackTitle = "FINAL RESULTS"

// Champion is the spotlight block.
type Champion struct {
	Name     string
	Avatar   string
	Color    string
	NetWorth string
	PnL      string
	Positive bool
}

// Standing is one row of the final standings table.
type Standing struct {
	Rank     int // 1-based
	Name     string
	Avatar   string
	Color    string
	NetWorth string
	PnL      string
	Positive bool
	Trades   int
	Taunts   int
}

// AwardRow is one labelled award line. Value is blank when the award is
// missing from the snapshot.
type AwardRow struct {
	Label  string
	Name   string
	Avatar string
	Value  string
}

// Line renders the award as "🐺 Wolf (12 trades)".
func (a AwardRow) Line() string {
	if a.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s %s (%s)", a.Avatar, a.Name, a.Value)
}

// MarketRow summarizes one instrument over the session.
type MarketRow struct {
	Symbol   string
	Color    string
	Price    string
	Change   string
	Positive bool
}

// View is the full results overlay.
type View struct {
	Title     string
	Round     int
	Champion  Champion
	Standings []Standing
	Awards    []AwardRow
	Market    []MarketRow
}

// Build derives the results view from a terminal snapshot. personalities
// may be nil, in which case the snapshot's own participants are used.
func Build(snap *market.Snapshot, personalities map[string]market.Personality, winTarget float64) View {
	if personalities == nil {
		personalities = snap.Personalities()
	}
	if winTarget <= 0 {
		winTarget = DefaultWinTarget
	}
	avatar := func(name string) string {
		return personalities[name].Display().Avatar
	}

	v := View{Round: snap.Round}
	v.Champion = buildChampion(snap, avatar)

	v.Title = FallbackTitle
	if snap.WinReason == market.WinReasonTargetReached && v.Champion.Name != "" {
		v.Title = fmt.Sprintf("%s HIT %s", v.Champion.Name, format.WholeCurrency(winTarget))
	}

	v.Standings = make([]Standing, len(snap.Bots))
	for i, b := range snap.Bots {
		v.Standings[i] = Standing{
			Rank:     i + 1,
			Name:     b.Name,
			Avatar:   avatar(b.Name),
			Color:    b.Color,
			NetWorth: format.Currency(b.NetWorth),
			PnL:      format.SignedCurrency(b.PnL),
			Positive: b.PnL >= 0,
			Trades:   b.Trades,
			Taunts:   b.Taunts,
		}
	}

	v.Awards = buildAwards(snap.Awards, avatar)
	v.Market = buildMarket(snap)
	return v
}

func buildChampion(snap *market.Snapshot, avatar func(string) string) Champion {
	var c market.Award
	switch {
	case snap.Awards != nil && snap.Awards.Champion.Name != "":
		c = snap.Awards.Champion
	case len(snap.Bots) > 0:
		b := snap.Bots[0]
		c = market.Award{Name: b.Name, Color: b.Color, NetWorth: b.NetWorth, PnL: b.PnL}
	default:
		return Champion{}
	}
	return Champion{
		Name:     c.Name,
		Avatar:   avatar(c.Name),
		Color:    c.Color,
		NetWorth: format.Currency(c.NetWorth),
		PnL:      format.SignedCurrency(c.PnL),
		Positive: c.PnL >= 0,
	}
}

func buildAwards(aw *market.Awards, avatar func(string) string) []AwardRow {
	if aw == nil {
		aw = &market.Awards{}
	}
	row := func(label string, a market.Award, value string) AwardRow {
		if a.Name == "" {
			return AwardRow{Label: label}
		}
		return AwardRow{Label: label, Name: a.Name, Avatar: avatar(a.Name), Value: value}
	}
	return []AwardRow{
		row("Most Active Trader", aw.MostActive, fmt.Sprintf("%d trades", aw.MostActive.Trades)),
		row("Biggest Trash Talker", aw.TrashTalker, fmt.Sprintf("%d taunts", aw.TrashTalker.Taunts)),
		row("Best Single Trade", aw.BestTrade, format.Currency(aw.BestTrade.PnL)),
		row("Worst Single Trade", aw.WorstTrade, format.Currency(aw.WorstTrade.PnL)),
		row("Biggest Loser", aw.BiggestLoser, format.Currency(aw.BiggestLoser.PnL)),
	}
}

func buildMarket(snap *market.Snapshot) []MarketRow {
	all := snap.Instruments.All()
	out := make([]MarketRow, 0, len(all))
	for _, inst := range all {
		chg := TotalChange(inst.History)
		out = append(out, MarketRow{
			Symbol:   inst.Symbol,
			Color:    market.SymbolColor(inst.Symbol),
			Price:    format.Currency(inst.Price),
			Change:   format.Percent(chg, 1),
			Positive: chg >= 0,
		})
	}
	return out
}

// TotalChange returns the percent change from the first to the last value
// of history. Empty histories and a zero start yield 0.
func TotalChange(history []float64) float64 {
	if len(history) < 2 || history[0] == 0 {
		return 0
	}
	first, last := history[0], history[len(history)-1]
	return (last - first) / first * 100
}
