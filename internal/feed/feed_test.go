package feed

import (
	"fmt"
	"testing"

	"github.com/zappabad/botwars/internal/market"
)

func entry(name string) Entry {
	return Entry{BotName: name}
}

func TestFeedNewestFirst(t *testing.T) {
	f := New(5)
	f.Push(entry("a"))
	f.Push(entry("b"))
	f.Push(entry("c"))

	got := f.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	want := []string{"c", "b", "a"}
	for i, e := range got {
		if e.BotName != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], e.BotName)
		}
	}
}

func TestFeedEvictsOldest(t *testing.T) {
	f := New(DefaultCapacity)
	for i := 0; i < 85; i++ {
		f.Push(entry(fmt.Sprintf("bot%d", i)))
	}

	if f.Len() != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, f.Len())
	}
	got := f.Entries()
	if got[0].BotName != "bot84" {
		t.Errorf("expected newest bot84, got %s", got[0].BotName)
	}
	if got[len(got)-1].BotName != "bot5" {
		t.Errorf("expected oldest retained bot5, got %s", got[len(got)-1].BotName)
	}
}

func TestFeedEntriesIsCopy(t *testing.T) {
	f := New(2)
	f.Push(entry("a"))

	got := f.Entries()
	got[0].BotName = "mutated"

	if f.Entries()[0].BotName != "a" {
		t.Error("Entries must return a copy")
	}
}

func TestFeedClear(t *testing.T) {
	f := New(3)
	f.Push(entry("a"))
	f.Push(entry("b"))
	f.Clear()

	if f.Len() != 0 || f.Entries() != nil {
		t.Fatalf("expected empty feed after clear, got %d", f.Len())
	}

	f.Push(entry("c"))
	if got := f.Entries(); len(got) != 1 || got[0].BotName != "c" {
		t.Errorf("unexpected entries after clear: %+v", got)
	}
}

func TestFeedDefaultCapacity(t *testing.T) {
	f := New(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		f.Push(entry(fmt.Sprintf("bot%d", i)))
	}
	if f.Len() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, f.Len())
	}
}

func TestPushRoundOrder(t *testing.T) {
	f := New(10)
	pers := map[string]market.Personality{"Wolf": market.PersonalityAggressive}

	f.PushRound(1, []market.Action{{BotName: "Wolf", Kind: "HOLD"}, {BotName: "Wolf", Kind: "TAUNT"}}, pers)
	f.PushRound(2, []market.Action{{BotName: "Wolf", Kind: "SELL", Amount: 1, Asset: "ETH", Price: 2}}, pers)

	got := f.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Round != 2 || got[1].Kind != market.ActionTaunt || got[2].Kind != market.ActionHold {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		action market.Action
		want   string
	}{
		{market.Action{Kind: "BUY", Amount: 12, Asset: "BTC", Price: 50000}, "BUY 12 BTC @ $50,000.00"},
		{market.Action{Kind: "sell", Amount: 3, Asset: "SOL", Price: 98.5}, "SELL 3 SOL @ $98.50"},
		{market.Action{Kind: "TAUNT", Amount: 4, Asset: "BTC"}, "TAUNT"},
		{market.Action{Kind: "HOLD"}, "HOLD"},
		{market.Action{Kind: "MOONWALK"}, "MOONWALK"},
		{market.Action{}, "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := Describe(tc.action); got != tc.want {
			t.Errorf("Describe(%+v) = %q, want %q", tc.action, got, tc.want)
		}
	}
}

func TestNewEntryAvatarFallback(t *testing.T) {
	pers := map[string]market.Personality{"Whale": market.PersonalityWhale}

	known := NewEntry(1, market.Action{BotName: "Whale", Kind: "BUY"}, pers)
	if known.Avatar != market.PersonalityWhale.Display().Avatar {
		t.Errorf("unexpected avatar %q", known.Avatar)
	}
	if known.Icon != market.ActionBuy.Icon() {
		t.Errorf("unexpected icon %q", known.Icon)
	}

	stranger := NewEntry(1, market.Action{BotName: "Ghost", Kind: "???"}, pers)
	if stranger.Avatar != market.PersonalityUnknown.Display().Avatar {
		t.Errorf("expected fallback avatar, got %q", stranger.Avatar)
	}
	if stranger.Icon != market.ActionUnknown.Icon() {
		t.Errorf("expected fallback icon, got %q", stranger.Icon)
	}
}
