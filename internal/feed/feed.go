// Package feed keeps the bounded, newest-first activity feed of bot actions.
package feed

import (
	"fmt"

	"github.com/zappabad/botwars/internal/format"
	"github.com/zappabad/botwars/internal/market"
)

// DefaultCapacity is the number of entries retained by a feed.
const DefaultCapacity = 80

// Entry is one rendered feed line.
type Entry struct {
	Round       int
	BotName     string
	Avatar      string
	Color       string
	Kind        market.ActionKind
	Icon        string
	Description string
	Commentary  string
}

// NewEntry builds the feed entry of an action. The avatar comes from the
// bot's personality; unknown bots get the fallback avatar.
func NewEntry(round int, a market.Action, personalities map[string]market.Personality) Entry {
	kind := a.ActionKind()
	p := personalities[a.BotName]

	color := a.BotColor
	if color == "" {
		color = p.Display().Color
	}

	return Entry{
		Round:       round,
		BotName:     a.BotName,
		Avatar:      p.Display().Avatar,
		Color:       color,
		Kind:        kind,
		Icon:        kind.Icon(),
		Description: Describe(a),
		Commentary:  a.Commentary,
	}
}

// Describe renders "BUY 12 BTC @ $50,000.00" for trades and the bare kind
// for everything else.
func Describe(a market.Action) string {
	kind := a.ActionKind()
	label := kind.String()
	if kind == market.ActionUnknown && a.Kind != "" {
		label = a.Kind
	}
	if !kind.Trade() {
		return label
	}
	return fmt.Sprintf("%s %d %s @ %s", label, a.Amount, a.Asset, format.Currency(a.Price))
}

// Feed is a ring buffer of entries. It is owned by the controller and is
// not safe for concurrent use.
type Feed struct {
	buf   []Entry
	size  int
	start int
	count int
}

// New creates a feed with the given capacity.
func New(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		buf:  make([]Entry, capacity),
		size: capacity,
	}
}

// Push adds an entry, evicting the oldest one when full.
func (f *Feed) Push(e Entry) {
	if f.count < f.size {
		f.buf[(f.start+f.count)%f.size] = e
		f.count++
		return
	}
	// overwrite oldest
	f.buf[f.start] = e
	f.start = (f.start + 1) % f.size
}

// PushRound adds a round's actions in the order they happened, so the last
// action of the round ends up on top.
func (f *Feed) PushRound(round int, actions []market.Action, personalities map[string]market.Personality) {
	for _, a := range actions {
		f.Push(NewEntry(round, a, personalities))
	}
}

// Entries returns a copy of the entries, newest first.
func (f *Feed) Entries() []Entry {
	if f.count == 0 {
		return nil
	}
	out := make([]Entry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.buf[(f.start+f.count-1-i)%f.size]
	}
	return out
}

// Clear drops every entry.
func (f *Feed) Clear() {
	for i := range f.buf {
		f.buf[i] = Entry{}
	}
	f.start, f.count = 0, 0
}

// Len returns the number of entries in the feed.
func (f *Feed) Len() int {
	return f.count
}
