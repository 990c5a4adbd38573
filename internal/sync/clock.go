// ABOUTME: Periodic time sync status tracking
// ABOUTME: Runs a sync check on start and every interval, records synced flag and offset
package sync

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the re-check period
const DefaultInterval = 60 * time.Second

var (
	ErrAlreadyStarted = errors.New("syncer already started")
	ErrBadInterval    = errors.New("sync interval must be positive")
)

// Status is the sync state seen by the renderers
type Status struct {
	Synced bool
	Offset time.Duration // measured offset (reference - local)

	// Diagnostics, never rendered
	LastCheck time.Time
	LastErr   error
	Checks    int
	Failures  int
	Skipped   int
}

// Checker performs one sync check and returns the measured clock offset
type Checker interface {
	Check(ctx context.Context) (time.Duration, error)
}

// Config configures a Syncer
type Config struct {
	Interval time.Duration
	Checker  Checker
	Clock    clockwork.Clock
}

// Syncer owns the periodic sync timer. It is explicitly started and stopped.
type Syncer struct {
	mu       sync.RWMutex
	status   Status
	inFlight bool
	started  bool

	interval time.Duration
	checker  Checker
	clock    clockwork.Clock

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	checks   sync.WaitGroup
}

// NewSyncer creates a stopped syncer; nothing runs until Start
func NewSyncer(cfg Config) *Syncer {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Checker == nil {
		cfg.Checker = NewSimulatedChecker(cfg.Clock, DefaultLatency)
	}

	return &Syncer{
		interval: cfg.Interval,
		checker:  cfg.Checker,
		clock:    cfg.Clock,
		done:     make(chan struct{}),
	}
}

// Start launches the first check immediately and one per interval after that
func (s *Syncer) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return ErrBadInterval
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	ctx, s.cancel = context.WithCancel(ctx)
	ticker := s.clock.NewTicker(s.interval)
	s.mu.Unlock()

	s.launch()

	go s.run(ctx, ticker)

	log.Printf("Sync loop started: interval=%v", s.interval)
	return nil
}

func (s *Syncer) run(ctx context.Context, ticker clockwork.Ticker) {
	defer close(s.done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.launch()
		}
	}
}

// Stop ends the timer loop. A check already in flight is left to finish
// and still records its result.
func (s *Syncer) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	s.mu.RUnlock()
	if cancel == nil {
		return
	}

	s.stopOnce.Do(func() {
		cancel()
		<-s.done
		log.Printf("Sync loop stopped")
	})
}

// Wait blocks until no check is in flight
func (s *Syncer) Wait() {
	s.checks.Wait()
}

// CheckNow starts a check outside the regular cadence.
// It returns false if one is already running.
func (s *Syncer) CheckNow() bool {
	return s.launch()
}

// Status returns a copy of the current status
func (s *Syncer) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Synced reports the synced flag
func (s *Syncer) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status.Synced
}

func (s *Syncer) launch() bool {
	s.mu.Lock()
	if s.inFlight {
		s.status.Skipped++
		s.mu.Unlock()
		log.Printf("Sync check still in flight, skipping")
		return false
	}
	s.inFlight = true
	s.mu.Unlock()

	s.checks.Add(1)
	go func() {
		defer s.checks.Done()
		s.check(uuid.NewString())
	}()
	return true
}

func (s *Syncer) check(id string) {
	started := s.clock.Now()

	// Not tied to the loop context: Stop never aborts a check
	offset, err := s.checker.Check(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	s.status.Checks++
	s.status.LastCheck = s.clock.Now()
	elapsed := s.status.LastCheck.Sub(started)

	if err != nil {
		s.status.Synced = false
		s.status.LastErr = err
		s.status.Failures++
		log.Printf("Sync check %s failed after %v: %v", id, elapsed, err)
		return
	}

	if !s.status.Synced {
		log.Printf("Sync check %s: synced, offset=%v, took %v", id, offset, elapsed)
	}
	s.status.Synced = true
	s.status.Offset = offset
	s.status.LastErr = nil
}
