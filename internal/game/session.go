package game

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zappabad/botwars/internal/market"
)

// Session is the explicit context of one game, owned by the controller.
// Completions are checked against its Generation before they mutate state.
type Session struct {
	ID         string
	Generation uint64
	Started    time.Time

	// Snapshot is the latest applied snapshot; nil until the start poll lands.
	Snapshot *market.Snapshot
	// Personalities maps participant names to their classifier.
	Personalities map[string]market.Personality

	// lastSeq is the sequence of the last applied snapshot poll.
	lastSeq uint64
	// lastPriceSeq is the sequence of the last applied price poll.
	lastPriceSeq uint64

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(parent context.Context, gen uint64) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		ID:            uuid.NewString(),
		Generation:    gen,
		Started:       time.Now(),
		Personalities: map[string]market.Personality{},
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Context is canceled when the session is replaced.
func (s *Session) Context() context.Context { return s.ctx }

// close cancels the session's in-flight requests.
func (s *Session) close() {
	if s != nil && s.cancel != nil {
		s.cancel()
	}
}
