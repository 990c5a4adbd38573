// ABOUTME: Tests for readout formatting
// ABOUTME: Tests UTC, local, centisecond and POSIX strings
package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEpoch(t *testing.T) {
	inst := FromUnixMilli(0, time.UTC)

	assert.Equal(t, "00:00:00", FormatUTCTime(inst))
	assert.Equal(t, "0", FormatPOSIX(inst))
	assert.Equal(t, "Thu, Jan 1, 1970", FormatUTCDate(inst))
}

func TestFormatCentis(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"one ms past midnight", 1, "00"},
		{"nine ms", 9, "00"},
		{"ten ms", 10, "01"},
		{"half second", 500, "50"},
		{"last ms", 999, "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCentis(FromUnixMilli(tt.ms, time.UTC)))
		})
	}
}

func TestFormatLocalTime(t *testing.T) {
	zone := time.FixedZone("UTC+5:30", 5*3600+30*60)
	inst := FromUnixMilli(0, zone)

	assert.Equal(t, "05:30:00", FormatLocalTime(inst))
	assert.Equal(t, "00:00:00", FormatUTCTime(inst))
}

func TestFormatLocalTimeIs24Hour(t *testing.T) {
	inst := NewInstant(time.Date(2024, 1, 1, 21, 5, 9, 0, time.UTC), time.UTC)

	assert.Equal(t, "21:05:09", FormatLocalTime(inst))
}

func TestFormatPOSIXHasNoGrouping(t *testing.T) {
	inst := NewInstant(time.Date(2033, 5, 18, 3, 33, 20, 0, time.UTC), time.UTC)

	assert.Equal(t, "2000000000", FormatPOSIX(inst))
}

func TestEndToEndHalfSecond(t *testing.T) {
	at, err := time.Parse(time.RFC3339Nano, "2024-01-01T00:00:00.500Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inst := NewInstant(at, time.UTC)

	assert.InDelta(t, 3.0, Decompose(inst).Angles.Second, 1e-9)

	r := Format(inst)
	assert.Equal(t, Readout{
		UTCDate:   "Mon, Jan 1, 2024",
		UTCTime:   "00:00:00",
		LocalTime: "00:00:00",
		Centis:    "50",
		POSIX:     "1704067200",
	}, r)
}
