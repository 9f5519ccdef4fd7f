package market

import "strings"

// Personality classifies a participant's trading style.
type Personality int

const (
	PersonalityUnknown Personality = iota
	PersonalityAggressive
	PersonalityCautious
	PersonalityMomentum
	PersonalityContrarian
	PersonalityDegen
	PersonalitySniper
	PersonalityWhale
	PersonalityScalper
	PersonalityDiamondHands
	PersonalitySaboteur
)

// Display holds the terminal display attributes of a closed-set value.
type Display struct {
	Icon   string // action/role glyph
	Avatar string // participant glyph
	Color  string // hex color
}

var personalityNames = map[string]Personality{
	"aggressive":    PersonalityAggressive,
	"cautious":      PersonalityCautious,
	"momentum":      PersonalityMomentum,
	"contrarian":    PersonalityContrarian,
	"degen":         PersonalityDegen,
	"sniper":        PersonalitySniper,
	"whale":         PersonalityWhale,
	"scalper":       PersonalityScalper,
	"diamond_hands": PersonalityDiamondHands,
	"saboteur":      PersonalitySaboteur,
}

var personalityDisplay = [...]Display{
	PersonalityUnknown:      {Icon: "●", Avatar: "🤖", Color: "#F9FAFB"},
	PersonalityAggressive:   {Icon: "⚔", Avatar: "🐺", Color: "#FF5555"},
	PersonalityCautious:     {Icon: "🛡", Avatar: "🐢", Color: "#55FF55"},
	PersonalityMomentum:     {Icon: "🚀", Avatar: "🚀", Color: "#55FFFF"},
	PersonalityContrarian:   {Icon: "⇄", Avatar: "🎭", Color: "#FF55FF"},
	PersonalityDegen:        {Icon: "♛", Avatar: "👑", Color: "#FFFF55"},
	PersonalitySniper:       {Icon: "⌖", Avatar: "🎯", Color: "#FFFFFF"},
	PersonalityWhale:        {Icon: "⚓", Avatar: "🐋", Color: "#5588FF"},
	PersonalityScalper:      {Icon: "⏱", Avatar: "🕰", Color: "#06B6D4"},
	PersonalityDiamondHands: {Icon: "◆", Avatar: "💎", Color: "#8B5CF6"},
	PersonalitySaboteur:     {Icon: "☠", Avatar: "🃏", Color: "#FF8700"},
}

// ParsePersonality maps the backend classifier to a Personality. Unknown
// values map to PersonalityUnknown.
func ParsePersonality(s string) Personality {
	if p, ok := personalityNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return PersonalityUnknown
}

// Known reports whether p is a member of the closed set.
func (p Personality) Known() bool {
	return p > PersonalityUnknown && int(p) < len(personalityDisplay)
}

// Display returns the display attributes, falling back to the unknown entry.
func (p Personality) Display() Display {
	if !p.Known() {
		return personalityDisplay[PersonalityUnknown]
	}
	return personalityDisplay[p]
}

func (p Personality) String() string {
	for name, v := range personalityNames {
		if v == p {
			return name
		}
	}
	return "unknown"
}

// ActionKind is the kind of a feed action.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionBuy
	ActionSell
	ActionHold
	ActionTaunt
	ActionSabotage
)

var actionNames = [...]string{
	ActionUnknown:  "UNKNOWN",
	ActionBuy:      "BUY",
	ActionSell:     "SELL",
	ActionHold:     "HOLD",
	ActionTaunt:    "TAUNT",
	ActionSabotage: "SABOTAGE",
}

var actionIcons = [...]string{
	ActionUnknown:  "❓",
	ActionBuy:      "▲",
	ActionSell:     "▼",
	ActionHold:     "⏸",
	ActionTaunt:    "💬",
	ActionSabotage: "⚡",
}

// ParseActionKind maps the backend action string to an ActionKind.
func ParseActionKind(s string) ActionKind {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range actionNames {
		if i != int(ActionUnknown) && name == s {
			return ActionKind(i)
		}
	}
	return ActionUnknown
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return actionNames[ActionUnknown]
	}
	return actionNames[k]
}

// Icon returns the feed glyph for the action kind.
func (k ActionKind) Icon() string {
	if k < 0 || int(k) >= len(actionIcons) {
		return actionIcons[ActionUnknown]
	}
	return actionIcons[k]
}

// Trade reports whether the kind carries quantity and price.
func (k ActionKind) Trade() bool {
	return k == ActionBuy || k == ActionSell
}

// ActionKind parses the action's kind.
func (a Action) ActionKind() ActionKind {
	return ParseActionKind(a.Kind)
}

// DefaultSymbolColor is used for symbols outside the palette.
const DefaultSymbolColor = "#3B82F6"

var symbolColors = map[string]string{
	"MEME": "#EAB308",
	"ALGO": "#3B82F6",
	"SAFE": "#22C55E",
	"BOOM": "#F97316",
	"DARK": "#A855F7",
	"BTC":  "#F7931A",
	"ETH":  "#627EEA",
	"SOL":  "#14F195",
	"BNB":  "#F3BA2F",
	"XRP":  "#23A3DF",
}

// SymbolColor returns the palette color of a symbol.
func SymbolColor(symbol string) string {
	if c, ok := symbolColors[symbol]; ok {
		return c
	}
	return DefaultSymbolColor
}
