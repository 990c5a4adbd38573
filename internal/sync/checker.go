// ABOUTME: Sync check implementations
// ABOUTME: Simulated latency check and a real NTP query via beevik/ntp
package sync

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/beevik/ntp"
	"github.com/jonboulle/clockwork"
)

// DefaultLatency is the simulated network round trip
const DefaultLatency = 800 * time.Millisecond

// ErrSimulatedFailure is returned by a SimulatedChecker set to fail
var ErrSimulatedFailure = errors.New("simulated network failure")

// SimulatedChecker confirms sync after a fixed delay with a zero offset
type SimulatedChecker struct {
	clock   clockwork.Clock
	latency time.Duration
	failing atomic.Bool
}

// NewSimulatedChecker creates a checker that resolves after latency on clk
func NewSimulatedChecker(clk clockwork.Clock, latency time.Duration) *SimulatedChecker {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &SimulatedChecker{
		clock:   clk,
		latency: latency,
	}
}

// SetFailing makes subsequent checks fail with ErrSimulatedFailure
func (c *SimulatedChecker) SetFailing(fail bool) {
	c.failing.Store(fail)
}

// Check waits out the latency, then reports offset 0 or the injected failure
func (c *SimulatedChecker) Check(ctx context.Context) (time.Duration, error) {
	if c.latency > 0 {
		select {
		case <-c.clock.After(c.latency):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	if c.failing.Load() {
		return 0, ErrSimulatedFailure
	}
	return 0, nil
}

// DefaultNTPTimeout bounds a single NTP query
const DefaultNTPTimeout = 5 * time.Second

type queryFunc func(address string, opt ntp.QueryOptions) (*ntp.Response, error)

// NTPChecker measures the local clock offset against an NTP server
type NTPChecker struct {
	server  string
	timeout time.Duration
	query   queryFunc
}

// NewNTPChecker creates a checker for server (host or host:port)
func NewNTPChecker(server string, timeout time.Duration) *NTPChecker {
	if timeout <= 0 {
		timeout = DefaultNTPTimeout
	}
	return &NTPChecker{
		server:  server,
		timeout: timeout,
		query:   ntp.QueryWithOptions,
	}
}

// Check queries the server and validates the response before trusting it
func (c *NTPChecker) Check(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	resp, err := c.query(c.server, ntp.QueryOptions{Timeout: c.timeout})
	if err != nil {
		return 0, fmt.Errorf("ntp query %s: %w", c.server, err)
	}

	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("ntp response from %s: %w", c.server, err)
	}

	return resp.ClockOffset, nil
}
