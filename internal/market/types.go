package market

// WinReasonTargetReached marks a session that ended because a participant
// reached the net worth target.
const WinReasonTargetReached = "target_reached"

// WinReasonRoundsComplete marks a session that ran out of rounds.
const WinReasonRoundsComplete = "rounds_complete"

// Snapshot is the full simulation state returned by one poll.
type Snapshot struct {
	Round       int           `json:"round"`
	TotalRounds int           `json:"total_rounds"`
	GameOver    bool          `json:"game_over"`
	WinReason   string        `json:"win_reason"`
	Mood        float64       `json:"market_mood"`
	MoodLabel   string        `json:"market_mood_label"`
	Instruments Instruments   `json:"assets"`
	Bots        []Participant `json:"bots"`
	Events      []Event       `json:"active_events"`
	NewEvent    *Event        `json:"new_event"`
	Actions     []Action      `json:"round_actions"`
	Awards      *Awards       `json:"awards"`

	// Error is set by the backend when it could not produce a state.
	Error string `json:"error,omitempty"`
}

// Instrument is a tradeable entity with a price history.
type Instrument struct {
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ChangePct  float64   `json:"change_pct"`
	Volatility float64   `json:"volatility"`
	History    []float64 `json:"history"` // oldest first
}

// Participant is one trading bot.
type Participant struct {
	Name          string    `json:"name"`
	Icon          string    `json:"icon"`
	Color         string    `json:"color"`
	Personality   string    `json:"personality"`
	Motto         string    `json:"motto"`
	Cash          float64   `json:"cash"`
	NetWorth      float64   `json:"net_worth"`
	PnL           float64   `json:"pnl"`
	Trades        int       `json:"trades_made"`
	Taunts        int       `json:"taunts_given"`
	BestTradePnL  float64   `json:"best_trade_pnl"`
	WorstTradePnL float64   `json:"worst_trade_pnl"`
	History       []float64 `json:"net_worth_history"`

	// Position is the index in the snapshot's participant sequence.
	Position int `json:"-"`
}

// Action is one discrete event performed by a participant in a round.
type Action struct {
	BotName    string  `json:"bot_name"`
	BotIcon    string  `json:"bot_icon"`
	BotColor   string  `json:"bot_color"`
	Kind       string  `json:"action"`
	Asset      string  `json:"asset"`
	Amount     int     `json:"amount"`
	Price      float64 `json:"price"`
	Commentary string  `json:"commentary"`
}

// Event is a time-limited market condition.
type Event struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Target      string  `json:"target_asset"`
	PriceImpact float64 `json:"price_impact"`
	Remaining   int     `json:"remaining"`
}

// Award references a participant plus a slot specific metric. Only the
// metric belonging to the slot is populated by the backend.
type Award struct {
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
	NetWorth float64 `json:"net_worth"`
	PnL      float64 `json:"pnl"`
	Trades   int     `json:"trades"`
	Taunts   int     `json:"taunts"`
}

// Awards is the end-of-session superlatives summary.
type Awards struct {
	Champion     Award `json:"champion"`
	MostActive   Award `json:"most_active"`
	TrashTalker  Award `json:"trash_talker"`
	BestTrade    Award `json:"best_trade"`
	WorstTrade   Award `json:"worst_trade"`
	BiggestLoser Award `json:"biggest_loser"`
}

// Normalize fills derived fields after decoding: participant positions and a
// non-empty history for every instrument.
func (s *Snapshot) Normalize() {
	for i := range s.Bots {
		s.Bots[i].Position = i
	}
	for _, sym := range s.Instruments.Symbols() {
		inst := s.Instruments.bySymbol[sym]
		if len(inst.History) == 0 {
			inst.History = []float64{inst.Price}
			s.Instruments.bySymbol[sym] = inst
		}
	}
}

// Personalities returns the participant name to personality lookup.
func (s *Snapshot) Personalities() map[string]Personality {
	out := make(map[string]Personality, len(s.Bots))
	for _, b := range s.Bots {
		out[b.Name] = ParsePersonality(b.Personality)
	}
	return out
}

// Participant returns the participant with the given name.
func (s *Snapshot) Participant(name string) (Participant, bool) {
	for _, b := range s.Bots {
		if b.Name == name {
			return b, true
		}
	}
	return Participant{}, false
}

// TargetReached reports whether the session ended on the win target.
func (s *Snapshot) TargetReached() bool {
	return s.GameOver && s.WinReason == WinReasonTargetReached
}
