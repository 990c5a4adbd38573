// ABOUTME: Millisecond-resolution point in time
// ABOUTME: Exposes mutually consistent UTC and local projections of one timestamp
package clock

import "time"

// Instant is an immutable point in time with millisecond resolution.
// The location is used for the "local" projections only.
type Instant struct {
	t   time.Time
	loc *time.Location
}

// ClockFields holds the time-of-day projection of an Instant
type ClockFields struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// NewInstant truncates t to the millisecond and drops its monotonic reading.
// A nil loc means UTC.
func NewInstant(t time.Time, loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	return Instant{
		t:   t.Round(0).Truncate(time.Millisecond).UTC(),
		loc: loc,
	}
}

// FromUnixMilli builds an Instant from epoch milliseconds
func FromUnixMilli(ms int64, loc *time.Location) Instant {
	return NewInstant(time.UnixMilli(ms), loc)
}

// Time returns the instant as a UTC time.Time
func (i Instant) Time() time.Time {
	return i.t
}

// Location returns the location used for local projections
func (i Instant) Location() *time.Location {
	if i.loc == nil {
		return time.UTC
	}
	return i.loc
}

// Local returns the instant in its local location
func (i Instant) Local() time.Time {
	return i.t.In(i.Location())
}

// UTCClock returns hour, minute, second and millisecond in UTC
func (i Instant) UTCClock() ClockFields {
	return fieldsOf(i.t)
}

// LocalClock returns hour, minute, second and millisecond in the local location
func (i Instant) LocalClock() ClockFields {
	return fieldsOf(i.Local())
}

// UTCDate returns the calendar date and weekday in UTC
func (i Instant) UTCDate() (year int, month time.Month, day int, weekday time.Weekday) {
	year, month, day = i.t.Date()
	return year, month, day, i.t.Weekday()
}

// Millisecond returns the millisecond within the second (0-999)
func (i Instant) Millisecond() int {
	return i.t.Nanosecond() / int(time.Millisecond)
}

// UnixMilli returns milliseconds since the epoch
func (i Instant) UnixMilli() int64 {
	return i.t.UnixMilli()
}

// UnixSeconds returns floor(epoch milliseconds / 1000).
// time.Time.Unix already floors for instants before 1970.
func (i Instant) UnixSeconds() int64 {
	return i.t.Unix()
}

// Equal reports whether both instants name the same millisecond
func (i Instant) Equal(o Instant) bool {
	return i.t.Equal(o.t)
}

// IsZero reports whether the instant was never set
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

func fieldsOf(t time.Time) ClockFields {
	h, m, s := t.Clock()
	return ClockFields{
		Hour:        h,
		Minute:      m,
		Second:      s,
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}
