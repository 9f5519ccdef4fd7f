// Package chart keeps one persistent time-series chart per instrument.
package chart

import (
	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/internal/market"
)

// Trend is the direction of a series from its first to its last value.
type Trend int

const (
	TrendUp Trend = iota
	TrendDown
)

func (t Trend) String() string {
	if t == TrendDown {
		return "down"
	}
	return "up"
}

// TrendOf returns TrendUp when the last value is not below the first one.
// Series shorter than two points are flat and therefore up.
func TrendOf(series []float64) Trend {
	if len(series) < 2 {
		return TrendUp
	}
	if series[len(series)-1] >= series[0] {
		return TrendUp
	}
	return TrendDown
}

// Chart is the view state of one instrument chart.
type Chart struct {
	Symbol string
	Name   string
	Color  string // symbol palette color

	Series []float64
	Trend  Trend

	Price      float64
	PriceLabel string
	Badge      string // percent change since the previous snapshot
	BadgeUp    bool
}

// Set owns the charts of a session.
type Set struct {
	order  []string
	charts map[string]*Chart
}

// NewSet creates an empty chart set.
func NewSet() *Set {
	return &Set{charts: make(map[string]*Chart)}
}

// Init replaces every chart with a fresh one per instrument of the snapshot.
func (s *Set) Init(snap *market.Snapshot) {
	s.order = snap.Instruments.Symbols()
	s.charts = make(map[string]*Chart, len(s.order))
	for _, inst := range snap.Instruments.All() {
		c := &Chart{
			Symbol: inst.Symbol,
			Name:   inst.Name,
			Color:  market.SymbolColor(inst.Symbol),
		}
		c.apply(inst)
		s.charts[inst.Symbol] = c
	}
}

// Update mutates the existing charts in place. Symbols that were not present
// at Init are ignored.
func (s *Set) Update(snap *market.Snapshot) {
	for _, inst := range snap.Instruments.All() {
		c, ok := s.charts[inst.Symbol]
		if !ok {
			continue
		}
		c.apply(inst)
	}
}

// SetPrice updates only the live price label of a chart.
func (s *Set) SetPrice(symbol string, price float64) bool {
	c, ok := s.charts[symbol]
	if !ok {
		return false
	}
	c.Price = price
	c.PriceLabel = format.Currency(price)
	return true
}

// Get returns the chart of a symbol.
func (s *Set) Get(symbol string) (*Chart, bool) {
	c, ok := s.charts[symbol]
	return c, ok
}

// Charts returns the charts in instrument order.
func (s *Set) Charts() []*Chart {
	out := make([]*Chart, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.charts[sym])
	}
	return out
}

// Len returns the number of charts.
func (s *Set) Len() int {
	return len(s.order)
}

func (c *Chart) apply(inst market.Instrument) {
	// history is owned by the snapshot; copy into the chart's buffer
	c.Series = append(c.Series[:0], inst.History...)
	c.Trend = TrendOf(c.Series)
	c.Price = inst.Price
	c.PriceLabel = format.Currency(inst.Price)
	c.Badge = format.Percent(inst.ChangePct, 2)
	c.BadgeUp = inst.ChangePct >= 0
}
