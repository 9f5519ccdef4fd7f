package game

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zappabad/botwars/internal/chart"
	"github.com/zappabad/botwars/internal/feed"
	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/internal/leaderboard"
	"github.com/zappabad/botwars/internal/market"
	"github.com/zappabad/botwars/internal/notify"
	"github.com/zappabad/botwars/internal/pricecache"
	"github.com/zappabad/botwars/internal/results"
)

// apply is the render pass. View state derived from the snapshot is always
// recomputed; feed entries, price flashes and the banner are applied only
// once per poll sequence, so applying the same poll twice is a no-op.
func (c *Controller) apply(snap *market.Snapshot, seq uint64) tea.Cmd {
	s := c.session
	s.Snapshot = snap

	c.charts.Update(snap)
	c.board = leaderboard.Rank(snap.Bots, c.cfg.BarFloor)
	c.cards = notify.Cards(snap.Events)

	if seq <= s.lastSeq {
		return nil
	}
	s.lastSeq = seq

	for _, inst := range snap.Instruments.All() {
		c.flashes[inst.Symbol] = c.prices.Observe(inst.Symbol, inst.Price)
	}
	c.feed.PushRound(snap.Round, snap.Actions, s.Personalities)

	if snap.NewEvent != nil {
		return c.showBanner(*snap.NewEvent)
	}
	return nil
}

// applyPrices updates price labels and flashes only.
func (c *Controller) applyPrices(prices map[string]float64) {
	for _, ch := range c.charts.Charts() {
		p, ok := prices[ch.Symbol]
		if !ok {
			continue
		}
		c.charts.SetPrice(ch.Symbol, p)
		c.flashes[ch.Symbol] = c.prices.Observe(ch.Symbol, p)
	}
}

// InstrumentRow is one line of the instrument table.
type InstrumentRow struct {
	Symbol string
	Name   string
	Color  string
	Price  string
	Change string
	Up     bool
	Flash  pricecache.Flash
}

// Header is the round and mood summary.
type Header struct {
	Round       int
	TotalRounds int
	Mood        float64
	MoodLabel   string
}

// Dashboard is everything the surface renders, derived from controller state.
type Dashboard struct {
	State      State
	SessionID  string
	Generation uint64
	Header     Header

	Instruments []InstrumentRow
	Charts      []chart.Chart
	Leaderboard []leaderboard.Row
	Feed        []feed.Entry
	Events      []notify.Card

	Banner        notify.Banner
	BannerVisible bool

	// Results is nil until the results view is shown and while it is hidden.
	Results *results.View

	Stats Stats
}

// Dashboard builds the current view model. It does not mutate state.
func (c *Controller) Dashboard() Dashboard {
	d := Dashboard{
		State:       c.state,
		Leaderboard: c.board,
		Feed:        c.feed.Entries(),
		Events:      c.cards,
		Stats:       c.stats,
	}
	d.Banner, d.BannerVisible = c.overlay.Banner()
	if c.results != nil && !c.resultsHidden {
		d.Results = c.results
	}

	s := c.session
	if s == nil {
		return d
	}
	d.SessionID = s.ID
	d.Generation = s.Generation
	if s.Snapshot != nil {
		d.Header = Header{
			Round:       s.Snapshot.Round,
			TotalRounds: s.Snapshot.TotalRounds,
			Mood:        s.Snapshot.Mood,
			MoodLabel:   s.Snapshot.MoodLabel,
		}
	}

	for _, ch := range c.charts.Charts() {
		d.Charts = append(d.Charts, *ch)
		d.Instruments = append(d.Instruments, InstrumentRow{
			Symbol: ch.Symbol,
			Name:   ch.Name,
			Color:  ch.Color,
			Price:  ch.PriceLabel,
			Change: ch.Badge,
			Up:     ch.BadgeUp,
			Flash:  c.flashes[ch.Symbol],
		})
	}
	return d
}

// MoodText renders the header mood as "Greedy (+0.40)".
func (h Header) MoodText() string {
	if h.MoodLabel == "" {
		return format.Number(h.Mood)
	}
	return h.MoodLabel + " (" + signed(h.Mood) + ")"
}

func signed(v float64) string {
	s := format.Number(v)
	if v >= 0 {
		return "+" + s
	}
	return s
}
