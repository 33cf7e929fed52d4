package launchpad

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// RefreshInterval is the polling cadence of the controller's steady
// state: one cycle per 5 seconds of wall-clock time, i.e. one tick.
const RefreshInterval = TickDuration

// Mode is the controller's connection mode.
type Mode int

const (
	// Anonymous is the default read-only mode, backed by the shared
	// placeholder credential.
	Anonymous Mode = iota
	// Authenticated is the wallet-bound mode with a derived identity.
	Authenticated
)

func (m Mode) String() string {
	if m == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Snapshot is one internally consistent view of the synchronized state.
// The clock used to classify every offering in the snapshot is the clock
// carried by the snapshot itself.
type Snapshot struct {
	Mode      Mode
	Identity  Identity
	Clock     Clock
	Balance   Amount
	Offerings []Offering
	Positions []Position
	Stats     *Stats
	History   []HistoryEntry

	TotalParticipants int64
	TotalOfferings    int64
}

// Offering finds an offering by id in the snapshot.
func (s Snapshot) Offering(id string) (Offering, bool) {
	for _, o := range s.Offerings {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

// Position finds the participant's position in one offering.
func (s Snapshot) Position(offeringID string) (Position, bool) {
	for _, p := range s.Positions {
		if p.OfferingID == offeringID {
			return p, true
		}
	}
	return Position{}, false
}

// Controller keeps the local view of the rollup consistent through a
// polling loop, in one of two connection modes.
//
// A controller starts in anonymous mode: the shared placeholder
// credential exercises the same query surface as a wallet session, so
// the public view (offerings, clock) updates immediately with no install
// step. Connect switches to authenticated mode after an idempotent
// install; Disconnect drops back to anonymous, clearing participant
// collections but keeping offerings and clock so the public view has no
// gap.
//
// All collections are replaced wholesale on each successful refresh.
// Readers take a Snapshot and never observe a half-updated mix.
type Controller struct {
	ledger Ledger

	mu       sync.Mutex
	session  Session
	identity Identity
	snap     Snapshot

	interval time.Duration
	// refreshMu serializes refresh cycles. Timer cycles yield when one
	// is already in flight; forced refreshes wait their turn and always
	// run, so a caller who asked for fresh state gets it.
	refreshMu sync.Mutex
	onRefresh func(Snapshot)

	cancel context.CancelFunc
	done   chan struct{}
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithInterval overrides the refresh cadence. Tests shorten it.
func WithInterval(d time.Duration) ControllerOption {
	return func(c *Controller) { c.interval = d }
}

// WithOnRefresh registers a callback invoked with each new snapshot,
// after the swap. It runs on the polling goroutine.
func WithOnRefresh(fn func(Snapshot)) ControllerOption {
	return func(c *Controller) { c.onRefresh = fn }
}

// NewController creates a controller in anonymous mode. It performs no
// I/O until Start.
func NewController(ledger Ledger, opts ...ControllerOption) *Controller {
	c := &Controller{
		ledger:   ledger,
		session:  AnonymousSession(),
		interval: RefreshInterval,
		snap:     Snapshot{Clock: EstimateClock(time.Now())},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start performs the initial load and launches the polling loop. Unlike
// steady-state cycles, an initial load failure is surfaced to the
// caller. The loop stops when ctx is cancelled or Close is called.
func (c *Controller) Start(ctx context.Context) error {
	if c.done != nil {
		return fmt.Errorf("controller already started")
	}
	if err := c.RefreshNow(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	go c.loop(ctx)
	return nil
}

// Close cancels the polling loop and waits for it to exit. No periodic
// work survives a Close.
func (c *Controller) Close() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

func (c *Controller) loop(ctx context.Context) {
	defer close(c.done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Best effort: a failed automatic cycle leaves prior state
			// intact and is logged only.
			if err := c.tryRefresh(ctx); err != nil && ctx.Err() == nil {
				log.Printf("launchpad: refresh skipped: %v", err)
			}
		}
	}
}

// Connect switches the controller to authenticated mode for the given
// wallet session. The install command is idempotent: an identity the
// rollup already knows registers as success. On return the participant
// collections are populated from a fresh refresh.
func (c *Controller) Connect(ctx context.Context, session Session) error {
	if session.IsAnonymous() {
		return fmt.Errorf("connect requires a wallet session")
	}
	if err := c.ledger.Install(ctx, session.Key()); err != nil && !errors.Is(err, ErrAlreadyRegistered) {
		return fmt.Errorf("install: %w", err)
	}

	c.mu.Lock()
	c.session = session
	c.identity = session.Identity()
	c.mu.Unlock()

	if err := c.RefreshNow(ctx); err != nil {
		return fmt.Errorf("post-connect refresh: %w", err)
	}
	return nil
}

// Disconnect drops back to anonymous mode. Participant-specific
// collections are cleared; offerings and clock are retained so the
// public view keeps updating without a visible gap.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = AnonymousSession()
	c.identity = Identity{}
	c.snap.Mode = Anonymous
	c.snap.Identity = Identity{}
	c.snap.Balance = Amount{}
	c.snap.Positions = nil
	c.snap.Stats = nil
	c.snap.History = nil
}

// Snapshot returns the current consistent view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Session returns the current processing credential.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// RefreshNow forces a full refresh cycle, bypassing the timer. If a
// cycle is already in flight it waits for it to finish and then runs
// its own, so the snapshot on return is never older than the call.
func (c *Controller) RefreshNow(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	return c.refresh(ctx)
}

// tryRefresh is the timer path. A fetch slower than the polling period
// must not pile up cycles, so a busy controller skips the tick.
func (c *Controller) tryRefresh(ctx context.Context) error {
	if !c.refreshMu.TryLock() {
		return nil
	}
	defer c.refreshMu.Unlock()
	return c.refresh(ctx)
}

// refresh runs one full cycle: clock and balance first, then offerings
// classified against that same clock, then (when authenticated) the
// participant collections. The assembled snapshot replaces the old one
// in a single swap. Callers hold refreshMu.
func (c *Controller) refresh(ctx context.Context) error {
	c.mu.Lock()
	session := c.session
	identity := c.identity
	c.mu.Unlock()

	next := Snapshot{Mode: Anonymous}
	if !session.IsAnonymous() {
		next.Mode = Authenticated
		next.Identity = identity
	}

	// The clock must be read before the offerings it classifies.
	state, err := c.ledger.QueryState(ctx, session.Key())
	if err != nil {
		return fmt.Errorf("query state: %w", err)
	}
	next.Clock = ReadClock(state.Counter)
	next.TotalParticipants = state.TotalParticipants
	next.TotalOfferings = state.TotalOfferings
	if next.Mode == Authenticated {
		next.Balance = state.Balance
	}

	records, err := c.ledger.Offerings(ctx)
	if err != nil {
		return fmt.Errorf("fetch offerings: %w", err)
	}
	next.Offerings = make([]Offering, 0, len(records))
	for _, rec := range records {
		off, err := NewOffering(rec, next.Clock)
		if err != nil {
			return err
		}
		next.Offerings = append(next.Offerings, off)
	}

	if next.Mode == Authenticated {
		if err := c.refreshParticipant(ctx, identity, &next); err != nil {
			// A participant with no recorded data yet is not a failure.
			if !errors.Is(err, ErrNoData) {
				return err
			}
		}
	}

	c.mu.Lock()
	// A Disconnect may have raced the fetch; do not resurrect cleared
	// participant data under an anonymous session.
	if next.Mode == Authenticated && c.session.IsAnonymous() {
		next.Mode = Anonymous
		next.Identity = Identity{}
		next.Balance = Amount{}
		next.Positions = nil
		next.Stats = nil
		next.History = nil
	}
	c.snap = next
	c.mu.Unlock()

	if c.onRefresh != nil {
		c.onRefresh(next)
	}
	return nil
}

func (c *Controller) refreshParticipant(ctx context.Context, id Identity, next *Snapshot) error {
	records, err := c.ledger.Positions(ctx, id)
	if err != nil && !errors.Is(err, ErrNoData) {
		return fmt.Errorf("fetch positions: %w", err)
	}
	next.Positions = make([]Position, 0, len(records))
	for _, rec := range records {
		off, ok := next.Offering(rec.OfferingID)
		if !ok {
			// A position for an offering missing from the same snapshot
			// would mix cycles; skip it until both rows land together.
			log.Printf("launchpad: position references unknown offering %s", rec.OfferingID)
			continue
		}
		p, err := NewPosition(rec, off)
		if err != nil {
			return err
		}
		next.Positions = append(next.Positions, p)
	}

	investments, err := c.ledger.Investments(ctx, id)
	if err != nil && !errors.Is(err, ErrNoData) {
		return fmt.Errorf("fetch investments: %w", err)
	}
	withdrawals, err := c.ledger.Withdrawals(ctx, id)
	if err != nil && !errors.Is(err, ErrNoData) {
		return fmt.Errorf("fetch withdrawals: %w", err)
	}

	stats, err := NewStats(next.Balance, investments, next.Positions)
	if err != nil {
		return err
	}
	next.Stats = &stats

	history, err := NewHistory(investments, withdrawals)
	if err != nil {
		return err
	}
	next.History = history
	return nil
}
