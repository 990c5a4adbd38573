// ABOUTME: Time source exposing the latest display state
// ABOUTME: Samples the clock on each host-driven refresh and pairs it with sync status
package timesource

import (
	"sync"
	"time"

	internalsync "github.com/harperreed/clockwidget/internal/sync"
	"github.com/harperreed/clockwidget/pkg/clock"
	"github.com/jonboulle/clockwork"
)

// DisplayState is the snapshot every renderer reads for one frame
type DisplayState struct {
	Instant clock.Instant
	Sync    internalsync.Status
}

// StatusProvider supplies the current sync status
type StatusProvider interface {
	Status() internalsync.Status
}

// Option configures a Source
type Option func(*Source)

// WithLocation sets the location used for local fields (default time.Local)
func WithLocation(loc *time.Location) Option {
	return func(s *Source) {
		s.loc = loc
	}
}

// WithOffsetCorrection adds the measured sync offset to every sample
func WithOffsetCorrection() Option {
	return func(s *Source) {
		s.correct = true
	}
}

// Source holds the latest instant. It owns no loop: the host calls Refresh
// at whatever cadence it can draw.
type Source struct {
	mu      sync.RWMutex
	instant clock.Instant

	clock   clockwork.Clock
	status  StatusProvider
	loc     *time.Location
	correct bool
}

// New creates a source sampling clk; status may be nil (never synced)
func New(clk clockwork.Clock, status StatusProvider, opts ...Option) *Source {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	s := &Source{
		clock:  clk,
		status: status,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.instant = s.sample(s.syncStatus())
	return s
}

// Refresh samples a new instant, replacing only the instant, and returns
// the resulting state
func (s *Source) Refresh() DisplayState {
	st := s.syncStatus()
	inst := s.sample(st)

	s.mu.Lock()
	s.instant = inst
	s.mu.Unlock()

	return DisplayState{Instant: inst, Sync: st}
}

// Snapshot returns the last sampled instant with the current sync status
func (s *Source) Snapshot() DisplayState {
	s.mu.RLock()
	inst := s.instant
	s.mu.RUnlock()

	return DisplayState{Instant: inst, Sync: s.syncStatus()}
}

func (s *Source) sample(st internalsync.Status) clock.Instant {
	now := s.clock.Now()
	if s.correct && st.Synced {
		now = now.Add(st.Offset)
	}
	return clock.NewInstant(now, s.loc)
}

func (s *Source) syncStatus() internalsync.Status {
	if s.status == nil {
		return internalsync.Status{}
	}
	return s.status.Status()
}
