// Package notify holds the breaking news overlay and the active event cards.
package notify

import (
	"fmt"

	"github.com/zappabad/botwars/internal/market"
)

// Banner is the displayed content of the overlay.
type Banner struct {
	Title       string
	Description string
	Text        string
	Positive    bool
}

// Overlay is the transient breaking news banner. It keeps only the latest
// event; the controller owns the dismiss timer.
type Overlay struct {
	banner  Banner
	visible bool
}

// Show replaces the banner content with ev.
func (o *Overlay) Show(ev market.Event) Banner {
	o.banner = Banner{
		Title:       ev.Name,
		Description: ev.Description,
		Text:        fmt.Sprintf("BREAKING: %s — %s", ev.Name, ev.Description),
		Positive:    ev.PriceImpact > 0,
	}
	o.visible = true
	return o.banner
}

// Hide dismisses the banner.
func (o *Overlay) Hide() {
	o.visible = false
	o.banner = Banner{}
}

// Banner returns the current banner and whether it is visible.
func (o *Overlay) Banner() (Banner, bool) {
	return o.banner, o.visible
}

// Card is one active event in the events panel.
type Card struct {
	Name        string
	Description string
	Meta        string
	Positive    bool
}

// Cards builds the active event cards in snapshot order.
func Cards(events []market.Event) []Card {
	if len(events) == 0 {
		return nil
	}
	out := make([]Card, len(events))
	for i, ev := range events {
		target := ev.Target
		if target == "" {
			target = "-"
		}
		out[i] = Card{
			Name:        ev.Name,
			Description: ev.Description,
			Meta:        fmt.Sprintf("Target: %s | %dr remaining", target, ev.Remaining),
			Positive:    ev.PriceImpact > 0,
		}
	}
	return out
}
