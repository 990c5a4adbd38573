// ABOUTME: Main widget orchestration
// ABOUTME: Wires config, sync checker, syncer and time source together
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/harperreed/clockwidget/internal/config"
	internalsync "github.com/harperreed/clockwidget/internal/sync"
	"github.com/harperreed/clockwidget/internal/timesource"
	"github.com/harperreed/clockwidget/pkg/clock"
	"github.com/jonboulle/clockwork"
)

// Widget owns the long-lived pieces behind the display
type Widget struct {
	config  *config.Config
	clock   clockwork.Clock
	checker internalsync.Checker
	syncer  *internalsync.Syncer
	source  *timesource.Source
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewChecker builds the sync checker selected by cfg.Mode
func NewChecker(cfg config.SyncConfig, clk clockwork.Clock) (internalsync.Checker, error) {
	switch cfg.Mode {
	case config.SyncSimulated:
		checker := internalsync.NewSimulatedChecker(clk, cfg.Latency)
		checker.SetFailing(cfg.Fail)
		return checker, nil
	case config.SyncNTP:
		return internalsync.NewNTPChecker(cfg.Server, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("%w: unknown sync mode %q", config.ErrInvalid, cfg.Mode)
	}
}

// New creates a widget; nothing runs until Start
func New(cfg *config.Config, clk clockwork.Clock) (*Widget, error) {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	checker, err := NewChecker(cfg.Sync, clk)
	if err != nil {
		return nil, err
	}

	syncer := internalsync.NewSyncer(internalsync.Config{
		Interval: cfg.Sync.Interval,
		Checker:  checker,
		Clock:    clk,
	})

	var opts []timesource.Option
	if cfg.Sync.Correct {
		opts = append(opts, timesource.WithOffsetCorrection())
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Widget{
		config:  cfg,
		clock:   clk,
		checker: checker,
		syncer:  syncer,
		source:  timesource.New(clk, syncer, opts...),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start starts the sync loop
func (w *Widget) Start() error {
	if err := w.syncer.Start(w.ctx); err != nil {
		return fmt.Errorf("failed to start sync: %w", err)
	}
	log.Printf("Widget started: sync mode=%s", w.config.Sync.Mode)
	return nil
}

// Stop stops the sync loop and any stream
func (w *Widget) Stop() {
	w.cancel()
	w.syncer.Stop()
}

// Source returns the time source the renderers read
func (w *Widget) Source() *timesource.Source {
	return w.source
}

// Syncer returns the sync loop
func (w *Widget) Syncer() *internalsync.Syncer {
	return w.syncer
}

// Stream writes one readout line per interval until the widget stops or
// ctx is done
func (w *Widget) Stream(ctx context.Context, out io.Writer, interval time.Duration) {
	ticker := w.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			fmt.Fprintln(out, ReadoutLine(w.source.Refresh(), w.config.Display.Centis))
		case <-ctx.Done():
			return
		case <-w.ctx.Done():
			return
		}
	}
}

// ReadoutLine formats a display state as a single text line
func ReadoutLine(state timesource.DisplayState, centis bool) string {
	r := clock.Format(state.Instant)

	utc := r.UTCTime
	if centis {
		utc += "." + r.Centis
	}

	sync := "syncing"
	if state.Sync.Synced {
		sync = "synced"
	}

	return fmt.Sprintf("UTC %s %s | LOCAL %s | POSIX %s | %s",
		utc, r.UTCDate, r.LocalTime, r.POSIX, sync)
}
