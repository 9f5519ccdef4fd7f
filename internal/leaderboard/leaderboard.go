// Package leaderboard ranks participants and scales their net worth bars.
package leaderboard

import (
	"math"
	"sort"
	"strconv"

	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/internal/market"
)

// DefaultFloor is the minimum visible bar width in percent.
const DefaultFloor = 5.0

var podium = []string{"🏆", "🥈", "🥉"}

// Row is the view model of one leaderboard line.
type Row struct {
	Rank        int // 0-indexed
	Badge       string
	Name        string
	Personality market.Personality
	Avatar      string
	NetWorth    string
	PnL         string
	Positive    bool    // P/L sign class
	BarWidth    float64 // percent in [floor, 100]
}

// Badge returns the rank badge for a 0-indexed rank.
func Badge(rank int) string {
	if rank >= 0 && rank < len(podium) {
		return podium[rank]
	}
	return strconv.Itoa(rank + 1)
}

// Sort orders participants by net worth descending. Ties keep their
// snapshot order, so pre-sorted input is returned unchanged.
func Sort(bots []market.Participant) []market.Participant {
	out := append([]market.Participant(nil), bots...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetWorth > out[j].NetWorth
	})
	return out
}

// Rank builds the leaderboard rows. floor is clamped into [0, 100].
func Rank(bots []market.Participant, floor float64) []Row {
	if len(bots) == 0 {
		return nil
	}
	floor = math.Max(0, math.Min(100, floor))

	ranked := Sort(bots)
	lo, hi := ranked[len(ranked)-1].NetWorth, ranked[0].NetWorth
	spread := hi - lo
	if spread == 0 {
		spread = 1
	}

	rows := make([]Row, len(ranked))
	for i, b := range ranked {
		p := market.ParsePersonality(b.Personality)
		width := 100.0
		if len(ranked) > 1 {
			width = BarWidth(b.NetWorth, lo, spread, floor)
		}
		rows[i] = Row{
			Rank:        i,
			Badge:       Badge(i),
			Name:        b.Name,
			Personality: p,
			Avatar:      p.Display().Avatar,
			NetWorth:    format.Currency(b.NetWorth),
			PnL:         format.SignedCurrency(b.PnL),
			Positive:    b.PnL >= 0,
			BarWidth:    width,
		}
	}
	return rows
}

// BarWidth scales nw into [floor, 100] given the minimum and spread.
func BarWidth(nw, lo, spread, floor float64) float64 {
	if spread <= 0 {
		spread = 1
	}
	w := (nw - lo) / spread * 100
	return math.Max(floor, math.Min(100, w))
}
