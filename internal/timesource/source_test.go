// ABOUTME: Tests for the time source
// ABOUTME: Tests refresh sampling, snapshots and offset correction
package timesource

import (
	"testing"
	"time"

	internalsync "github.com/harperreed/clockwidget/internal/sync"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStatus struct {
	status internalsync.Status
}

func (f *fixedStatus) Status() internalsync.Status {
	return f.status
}

var start = time.Date(2024, 1, 1, 0, 0, 0, 500_000_000, time.UTC)

func TestNewSamplesImmediately(t *testing.T) {
	clk := clockwork.NewFakeClockAt(start)
	src := New(clk, nil, WithLocation(time.UTC))

	state := src.Snapshot()
	assert.Equal(t, start.UnixMilli(), state.Instant.UnixMilli())
	assert.False(t, state.Sync.Synced)
}

func TestRefreshReplacesInstant(t *testing.T) {
	clk := clockwork.NewFakeClockAt(start)
	src := New(clk, nil, WithLocation(time.UTC))

	clk.Advance(16 * time.Millisecond)
	state := src.Refresh()

	assert.Equal(t, start.Add(16*time.Millisecond).UnixMilli(), state.Instant.UnixMilli())
	assert.True(t, src.Snapshot().Instant.Equal(state.Instant))
}

func TestSnapshotDoesNotSample(t *testing.T) {
	clk := clockwork.NewFakeClockAt(start)
	src := New(clk, nil)

	clk.Advance(time.Second)

	assert.Equal(t, start.UnixMilli(), src.Snapshot().Instant.UnixMilli())
}

func TestSnapshotSeesLatestSyncStatus(t *testing.T) {
	status := &fixedStatus{}
	src := New(clockwork.NewFakeClockAt(start), status)

	require.False(t, src.Snapshot().Sync.Synced)

	status.status = internalsync.Status{Synced: true}
	assert.True(t, src.Snapshot().Sync.Synced)
}

func TestOffsetCorrection(t *testing.T) {
	status := &fixedStatus{status: internalsync.Status{Synced: true, Offset: 2 * time.Second}}
	clk := clockwork.NewFakeClockAt(start)

	plain := New(clk, status).Refresh()
	corrected := New(clk, status, WithOffsetCorrection()).Refresh()

	assert.Equal(t, int64(2000), corrected.Instant.UnixMilli()-plain.Instant.UnixMilli())
}

func TestOffsetIgnoredWhenNotSynced(t *testing.T) {
	status := &fixedStatus{status: internalsync.Status{Synced: false, Offset: 2 * time.Second}}
	clk := clockwork.NewFakeClockAt(start)

	state := New(clk, status, WithOffsetCorrection()).Refresh()

	assert.Equal(t, start.UnixMilli(), state.Instant.UnixMilli())
}

func TestLocationIsApplied(t *testing.T) {
	zone := time.FixedZone("UTC+1", 3600)
	src := New(clockwork.NewFakeClockAt(start), nil, WithLocation(zone))

	assert.Equal(t, 1, src.Refresh().Instant.LocalClock().Hour)
}
