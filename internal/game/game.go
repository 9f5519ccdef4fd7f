// Package game runs the session lifecycle: start, tick, end, results and
// restart, forever.
package game

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zappabad/botwars/internal/chart"
	"github.com/zappabad/botwars/internal/feed"
	"github.com/zappabad/botwars/internal/leaderboard"
	"github.com/zappabad/botwars/internal/market"
	"github.com/zappabad/botwars/internal/notify"
	"github.com/zappabad/botwars/internal/pricecache"
	"github.com/zappabad/botwars/internal/results"
)

// Backend is the simulation API consumed by the controller.
type Backend interface {
	NewGame(ctx context.Context) error
	Tick(ctx context.Context) (*market.Snapshot, error)
	Prices(ctx context.Context) (map[string]float64, error)
}

var errEmptySnapshot = errors.New("empty snapshot")

// State is the controller lifecycle state.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateRunning
	StateEnding
	StateRestartDelay
)

var stateNames = [...]string{
	StateIdle:         "IDLE",
	StateStarting:     "STARTING",
	StateRunning:      "RUNNING",
	StateEnding:       "ENDING",
	StateRestartDelay: "RESTART_DELAY",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

type startedMsg struct {
	gen  uint64
	seq  uint64
	snap *market.Snapshot
	err  error
}

type tickedMsg struct {
	gen  uint64
	seq  uint64
	snap *market.Snapshot
	err  error
}

type pricesMsg struct {
	gen    uint64
	seq    uint64
	prices map[string]float64
	err    error
}

// Controller owns the session and every piece of view state. All methods
// must be called from the bubbletea Update loop.
type Controller struct {
	backend Backend
	cfg     Config
	logger  *zap.Logger
	root    context.Context

	state   State
	gen     uint64
	seq     uint64
	session *Session

	tickTask    *Task
	pricesTask  *Task
	retryTask   *Task
	phaseTask   *Task
	dismissTask *Task

	tickInFlight   bool
	pricesInFlight bool

	charts  *chart.Set
	prices  *pricecache.Cache
	flashes map[string]pricecache.Flash
	feed    *feed.Feed
	overlay notify.Overlay
	board   []leaderboard.Row
	cards   []notify.Card

	results       *results.View
	resultsHidden bool

	stats Stats
}

// Stats counts controller activity for the status bar.
type Stats struct {
	Sessions     int
	StartRetries int
	Ticks        int
	TickFailures int
	SkippedPolls int
	Discarded    int
	Banners      int
}

// NewController creates an idle controller.
func NewController(backend Backend, cfg Config, logger *zap.Logger) (*Controller, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	prices, err := pricecache.New(cfg.PriceCacheTTL)
	if err != nil {
		return nil, err
	}

	return &Controller{
		backend: backend,
		cfg:     cfg,
		logger:  logger,
		root:    context.Background(),
		charts:  chart.NewSet(),
		prices:  prices,
		flashes: make(map[string]pricecache.Flash),
		feed:    feed.New(cfg.FeedCapacity),
	}, nil
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Session returns the current session, nil before the first Start.
func (c *Controller) Session() *Session { return c.session }

// Stats returns the activity counters.
func (c *Controller) Stats() Stats { return c.stats }

// Start begins a new session. Any scheduled task and in-flight request of
// the previous session is cancelled first.
func (c *Controller) Start() tea.Cmd {
	c.cancelTasks()
	c.session.close()

	c.overlay.Hide()
	c.feed.Clear()
	c.results = nil
	c.resultsHidden = false
	c.tickInFlight = false
	c.pricesInFlight = false

	c.gen++
	c.session = newSession(c.root, c.gen)
	c.state = StateStarting
	c.stats.Sessions++

	c.logger.Info("starting session",
		zap.String("session", c.session.ID),
		zap.Uint64("generation", c.gen),
	)

	seq := c.nextSeq()
	return c.startCmd(c.session, seq)
}

// Close cancels everything that is scheduled or in flight.
func (c *Controller) Close() {
	c.cancelTasks()
	c.session.close()
	c.prices.Close()
	c.state = StateIdle
}

// HideResults closes the results overlay. The restart stays scheduled.
func (c *Controller) HideResults() {
	c.resultsHidden = true
}

// Update handles controller messages and ignores everything else.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case firedMsg:
		return c.handleFired(msg.task)
	case startedMsg:
		return c.handleStarted(msg)
	case tickedMsg:
		return c.handleTicked(msg)
	case pricesMsg:
		c.handlePrices(msg)
	}
	return nil
}

func (c *Controller) handleFired(t *Task) tea.Cmd {
	if t == nil || t.Cancelled() {
		return nil
	}
	c.logger.Debug("task fired", zap.String("task", t.Name()))
	switch t {
	case c.tickTask:
		return c.onTick()
	case c.pricesTask:
		return c.onPrices()
	case c.retryTask:
		c.stats.StartRetries++
		return c.Start()
	case c.phaseTask:
		return c.onPhase()
	case c.dismissTask:
		c.overlay.Hide()
	}
	return nil
}

func (c *Controller) handleStarted(msg startedMsg) tea.Cmd {
	if msg.gen != c.gen || c.state != StateStarting {
		c.discard("start", msg.gen, msg.seq)
		return nil
	}
	if msg.err != nil {
		c.logger.Warn("start failed, retrying",
			zap.String("session", c.session.ID),
			zap.Duration("delay", c.cfg.StartRetryDelay),
			zap.Error(msg.err),
		)
		c.retryTask = newTask("retry")
		return c.retryTask.after(c.cfg.StartRetryDelay)
	}

	s := c.session
	s.Personalities = msg.snap.Personalities()
	c.charts.Init(msg.snap)
	c.prices.Clear()
	c.flashes = make(map[string]pricecache.Flash)

	c.state = StateRunning
	c.logger.Info("session running",
		zap.String("session", s.ID),
		zap.Int("instruments", msg.snap.Instruments.Len()),
		zap.Int("participants", len(msg.snap.Bots)),
		zap.Int("total_rounds", msg.snap.TotalRounds),
	)

	banner := c.apply(msg.snap, msg.seq)
	if msg.snap.GameOver {
		return tea.Batch(banner, c.enterEnding())
	}

	c.tickTask = newTask("tick")
	cmds := []tea.Cmd{banner, c.tickTask.after(c.cfg.TickInterval)}
	if c.cfg.PriceInterval > 0 {
		c.pricesTask = newTask("prices")
		cmds = append(cmds, c.pricesTask.after(c.cfg.PriceInterval))
	}
	return tea.Batch(cmds...)
}

func (c *Controller) onTick() tea.Cmd {
	next := c.tickTask.after(c.cfg.TickInterval)
	if c.tickInFlight {
		c.stats.SkippedPolls++
		c.logger.Debug("tick skipped, poll in flight", zap.String("session", c.session.ID))
		return next
	}
	c.tickInFlight = true
	return tea.Batch(next, c.tickCmd(c.session, c.nextSeq()))
}

func (c *Controller) handleTicked(msg tickedMsg) tea.Cmd {
	if msg.gen != c.gen {
		c.discard("tick", msg.gen, msg.seq)
		return nil
	}
	c.tickInFlight = false

	if msg.err != nil {
		c.stats.TickFailures++
		c.logger.Warn("tick failed, skipping", zap.String("session", c.session.ID), zap.Error(msg.err))
		return nil
	}
	if c.state != StateRunning || msg.seq <= c.session.lastSeq {
		c.discard("tick", msg.gen, msg.seq)
		return nil
	}

	c.stats.Ticks++
	banner := c.apply(msg.snap, msg.seq)
	if msg.snap.GameOver {
		c.logger.Info("session over",
			zap.String("session", c.session.ID),
			zap.Int("round", msg.snap.Round),
			zap.String("win_reason", msg.snap.WinReason),
		)
		return tea.Batch(banner, c.enterEnding())
	}
	return banner
}

func (c *Controller) onPrices() tea.Cmd {
	next := c.pricesTask.after(c.cfg.PriceInterval)
	if c.pricesInFlight {
		return next
	}
	c.pricesInFlight = true
	return tea.Batch(next, c.pricesCmd(c.session, c.nextSeq()))
}

func (c *Controller) handlePrices(msg pricesMsg) {
	if msg.gen != c.gen {
		c.discard("prices", msg.gen, msg.seq)
		return
	}
	c.pricesInFlight = false

	if msg.err != nil {
		c.logger.Debug("price poll failed", zap.Error(msg.err))
		return
	}
	// both channels share the sequence; a price poll issued before the last
	// applied tick is older than the tick's prices
	if c.state != StateRunning || msg.seq <= max(c.session.lastSeq, c.session.lastPriceSeq) {
		c.discard("prices", msg.gen, msg.seq)
		return
	}
	c.session.lastPriceSeq = msg.seq
	c.applyPrices(msg.prices)
}

// enterEnding stops polling and schedules the results view.
func (c *Controller) enterEnding() tea.Cmd {
	c.tickTask.Cancel()
	c.pricesTask.Cancel()
	c.state = StateEnding
	c.phaseTask = newTask("results")
	return c.phaseTask.after(c.cfg.ResultsDelay)
}

func (c *Controller) onPhase() tea.Cmd {
	switch c.state {
	case StateEnding:
		v := results.Build(c.session.Snapshot, c.session.Personalities, c.cfg.WinTarget)
		c.results = &v
		c.resultsHidden = false
		c.state = StateRestartDelay
		c.phaseTask = newTask("restart")
		c.logger.Info("showing results",
			zap.String("session", c.session.ID),
			zap.String("title", v.Title),
			zap.Duration("restart_in", c.cfg.RestartDelay),
		)
		return c.phaseTask.after(c.cfg.RestartDelay)
	case StateRestartDelay:
		return c.Start()
	}
	return nil
}

func (c *Controller) showBanner(ev market.Event) tea.Cmd {
	b := c.overlay.Show(ev)
	c.stats.Banners++
	c.dismissTask.Cancel()
	c.dismissTask = newTask("dismiss")
	c.logger.Debug("breaking news", zap.String("banner", b.Text))
	return c.dismissTask.after(c.cfg.BannerDuration)
}

func (c *Controller) cancelTasks() {
	for _, t := range []*Task{c.tickTask, c.pricesTask, c.retryTask, c.phaseTask, c.dismissTask} {
		t.Cancel()
	}
	c.tickTask, c.pricesTask, c.retryTask, c.phaseTask, c.dismissTask = nil, nil, nil, nil, nil
}

func (c *Controller) nextSeq() uint64 {
	c.seq++
	return c.seq
}

func (c *Controller) discard(kind string, gen, seq uint64) {
	c.stats.Discarded++
	c.logger.Debug("stale response discarded",
		zap.String("kind", kind),
		zap.Uint64("generation", gen),
		zap.Uint64("current_generation", c.gen),
		zap.Uint64("seq", seq),
	)
}

func (c *Controller) startCmd(s *Session, seq uint64) tea.Cmd {
	backend, gen, ctx := c.backend, s.Generation, s.Context()
	return func() tea.Msg {
		if err := backend.NewGame(ctx); err != nil {
			return startedMsg{gen: gen, seq: seq, err: err}
		}
		snap, err := backend.Tick(ctx)
		if err == nil && snap == nil {
			err = errEmptySnapshot
		}
		return startedMsg{gen: gen, seq: seq, snap: snap, err: err}
	}
}

func (c *Controller) tickCmd(s *Session, seq uint64) tea.Cmd {
	backend, gen, ctx := c.backend, s.Generation, s.Context()
	return func() tea.Msg {
		snap, err := backend.Tick(ctx)
		if err == nil && snap == nil {
			err = errEmptySnapshot
		}
		return tickedMsg{gen: gen, seq: seq, snap: snap, err: err}
	}
}

func (c *Controller) pricesCmd(s *Session, seq uint64) tea.Cmd {
	backend, gen, ctx := c.backend, s.Generation, s.Context()
	return func() tea.Msg {
		prices, err := backend.Prices(ctx)
		return pricesMsg{gen: gen, seq: seq, prices: prices, err: err}
	}
}
