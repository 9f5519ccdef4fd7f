package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zappabad/botwars/internal/chart"
)

func TestChartPanelAxisLabels(t *testing.T) {
	p := NewChartPanel()
	p.SetSize(40, 12)
	p.SetChart(chart.Chart{
		Symbol:     "ETH",
		Series:     []float64{3100, 3050, 3000},
		Trend:      chart.TrendDown,
		PriceLabel: "$3,000.00",
		Badge:      "-0.50%",
	})

	view := p.View()
	assert.Contains(t, view, "Chart - ETH")
	assert.Contains(t, view, "3.1K │")
	assert.Contains(t, view, "3K │")
}

func TestChartPanelEmpty(t *testing.T) {
	p := NewChartPanel()
	p.SetSize(40, 12)
	assert.Contains(t, p.View(), "No price data yet")

	p.SetChart(chart.Chart{Symbol: "BTC", Series: []float64{1, 2}})
	p.Clear()
	assert.Contains(t, p.View(), "No instrument")
}
