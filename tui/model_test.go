package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/botwars/internal/game"
	"github.com/zappabad/botwars/internal/market"
)

type stubBackend struct {
	snap *market.Snapshot
}

func (b *stubBackend) NewGame(ctx context.Context) error { return nil }

func (b *stubBackend) Tick(ctx context.Context) (*market.Snapshot, error) { return b.snap, nil }

func (b *stubBackend) Prices(ctx context.Context) (map[string]float64, error) {
	return map[string]float64{}, nil
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	snap := &market.Snapshot{
		Round:       3,
		TotalRounds: 30,
		Mood:        0.4,
		MoodLabel:   "Greedy",
		Instruments: market.NewInstruments(
			market.Instrument{Symbol: "BTC", Name: "Bitcoin", Price: 50000, ChangePct: 1.5, History: []float64{49000, 50000}},
			market.Instrument{Symbol: "ETH", Name: "Ethereum", Price: 3000, ChangePct: -0.5, History: []float64{3100, 3000}},
		),
		Bots: []market.Participant{
			{Name: "Wolf", Personality: "aggressive", NetWorth: 12000, PnL: 2000},
			{Name: "Sloth", Personality: "cautious", NetWorth: 9000, PnL: -1000},
		},
		Actions: []market.Action{{BotName: "Wolf", Kind: "BUY", Asset: "BTC", Amount: 2, Price: 50000}},
	}
	snap.Normalize()

	ctrl, err := game.NewController(&stubBackend{snap: snap}, game.Config{
		TickInterval:    time.Hour,
		StartRetryDelay: time.Hour,
		ResultsDelay:    time.Hour,
		RestartDelay:    time.Hour,
		BannerDuration:  time.Hour,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	return NewModel(ctrl)
}

func TestViewBeforeResize(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())
}

func TestFirstSnapshotRenders(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})

	msg := m.Init()()
	m.Update(msg)

	view := m.View()
	assert.Contains(t, view, "Round 3/30")
	assert.Contains(t, view, "Greedy")
	assert.Contains(t, view, "BTC")
	assert.Contains(t, view, "Wolf")
	assert.Contains(t, view, "BUY 2 BTC")
	assert.Contains(t, view, "Chart - BTC")
}

func TestSelectionMovesChart(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	m.Update(m.Init()())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "Chart - ETH")
	assert.NotContains(t, m.View(), "Chart - BTC")
}

func TestFocusCycles(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, FocusMarket, m.focusedPanel)

	for i := 0; i < panelCount; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, FocusMarket, m.focusedPanel)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusFeed, m.focusedPanel)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, game.StateIdle, m.ctrl.State())
}
