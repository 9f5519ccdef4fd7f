package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zappabad/botwars/internal/market"
)

func terminal(reason string) *market.Snapshot {
	return &market.Snapshot{
		Round:     30,
		GameOver:  true,
		WinReason: reason,
		Instruments: market.NewInstruments(
			market.Instrument{Symbol: "BTC", Price: 55000, History: []float64{50000, 52000, 55000}},
			market.Instrument{Symbol: "MEME", Price: 0.5, History: []float64{1, 0.5}},
		),
		Bots: []market.Participant{
			{Name: "Bot1", Personality: "whale", NetWorth: 10400, PnL: 9400, Trades: 12, Taunts: 3},
			{Name: "Bot2", Personality: "degen", NetWorth: 300, PnL: -700, Trades: 40, Taunts: 9},
		},
		Awards: &market.Awards{
			Champion:     market.Award{Name: "Bot1", NetWorth: 10400, PnL: 9400},
			MostActive:   market.Award{Name: "Bot2", Trades: 40},
			TrashTalker:  market.Award{Name: "Bot2", Taunts: 9},
			BestTrade:    market.Award{Name: "Bot1", PnL: 1250.5},
			WorstTrade:   market.Award{Name: "Bot2", PnL: -420},
			BiggestLoser: market.Award{Name: "Bot2", PnL: -700},
		},
	}
}

func TestTitleTargetReached(t *testing.T) {
	v := Build(terminal(market.WinReasonTargetReached), nil, DefaultWinTarget)
	assert.Equal(t, "Bot1 HIT $10,000", v.Title)
}

func TestTitleRoundsComplete(t *testing.T) {
	v := Build(terminal(market.WinReasonRoundsComplete), nil, DefaultWinTarget)
	assert.Equal(t, FallbackTitle, v.Title)

	v = Build(terminal(""), nil, DefaultWinTarget)
	assert.Equal(t, FallbackTitle, v.Title)
}

func TestTitleUsesConfiguredTarget(t *testing.T) {
	v := Build(terminal(market.WinReasonTargetReached), nil, 25000)
	assert.Equal(t, "Bot1 HIT $25,000", v.Title)
}

func TestChampionAndStandings(t *testing.T) {
	v := Build(terminal(market.WinReasonTargetReached), nil, 0)

	assert.Equal(t, "Bot1", v.Champion.Name)
	assert.Equal(t, "$10,400.00", v.Champion.NetWorth)
	assert.Equal(t, "+$9,400.00", v.Champion.PnL)
	assert.Equal(t, market.PersonalityWhale.Display().Avatar, v.Champion.Avatar)

	require.Len(t, v.Standings, 2)
	assert.Equal(t, 1, v.Standings[0].Rank)
	assert.Equal(t, "Bot2", v.Standings[1].Name)
	assert.Equal(t, "-$700.00", v.Standings[1].PnL)
	assert.False(t, v.Standings[1].Positive)
	assert.Equal(t, 40, v.Standings[1].Trades)
	assert.Equal(t, 9, v.Standings[1].Taunts)
}

func TestAwards(t *testing.T) {
	v := Build(terminal(market.WinReasonRoundsComplete), nil, 0)
	require.Len(t, v.Awards, 5)

	labels := make([]string, len(v.Awards))
	for i, a := range v.Awards {
		labels[i] = a.Label
	}
	assert.Equal(t, []string{
		"Most Active Trader", "Biggest Trash Talker", "Best Single Trade", "Worst Single Trade", "Biggest Loser",
	}, labels)

	assert.Equal(t, "40 trades", v.Awards[0].Value)
	assert.Equal(t, "9 taunts", v.Awards[1].Value)
	assert.Equal(t, "$1,250.50", v.Awards[2].Value)
	assert.Equal(t, "-$420.00", v.Awards[3].Value)
	assert.Equal(t, market.PersonalityDegen.Display().Avatar+" Bot2 (40 trades)", v.Awards[0].Line())
}

func TestMissingAwardsDegrade(t *testing.T) {
	snap := terminal(market.WinReasonTargetReached)
	snap.Awards = nil

	v := Build(snap, nil, 0)
	assert.Equal(t, "Bot1", v.Champion.Name, "first participant becomes champion")
	assert.Equal(t, "Bot1 HIT $10,000", v.Title)
	for _, a := range v.Awards {
		assert.NotEmpty(t, a.Label)
		assert.Empty(t, a.Line())
	}

	snap.Bots = nil
	v = Build(snap, nil, 0)
	assert.Equal(t, FallbackTitle, v.Title)
	assert.Empty(t, v.Standings)
}

func TestMarketSummary(t *testing.T) {
	v := Build(terminal(market.WinReasonRoundsComplete), nil, 0)
	require.Len(t, v.Market, 2)

	assert.Equal(t, "BTC", v.Market[0].Symbol)
	assert.Equal(t, "$55,000.00", v.Market[0].Price)
	assert.Equal(t, "+10.0%", v.Market[0].Change)
	assert.True(t, v.Market[0].Positive)

	assert.Equal(t, "-50.0%", v.Market[1].Change)
	assert.False(t, v.Market[1].Positive)
}

func TestTotalChange(t *testing.T) {
	assert.Equal(t, 0.0, TotalChange(nil))
	assert.Equal(t, 0.0, TotalChange([]float64{5}))
	assert.Equal(t, 0.0, TotalChange([]float64{0, 5}))
	assert.InDelta(t, 25.0, TotalChange([]float64{4, 1, 5}), 1e-9)
}

func TestUnknownParticipantsFallBack(t *testing.T) {
	snap := terminal(market.WinReasonRoundsComplete)
	snap.Awards.MostActive.Name = "Ghost"

	v := Build(snap, map[string]market.Personality{}, 0)
	assert.Equal(t, market.PersonalityUnknown.Display().Avatar, v.Awards[0].Avatar)
	assert.Equal(t, market.PersonalityUnknown.Display().Avatar, v.Champion.Avatar)
}
