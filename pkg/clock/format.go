// ABOUTME: Digital readout formatting
// ABOUTME: UTC date and time, local time, centiseconds and POSIX seconds
package clock

import (
	"fmt"
	"strconv"
)

const utcDateLayout = "Mon, Jan 2, 2006"

// Readout is one Instant formatted for the info panel
type Readout struct {
	UTCDate   string
	UTCTime   string
	LocalTime string
	Centis    string
	POSIX     string
}

// FormatUTCDate renders the UTC date as "Mon, Jan 1, 2024"
func FormatUTCDate(i Instant) string {
	return i.Time().Format(utcDateLayout)
}

// FormatUTCTime renders HH:MM:SS in UTC
func FormatUTCTime(i Instant) string {
	return hms(i.UTCClock())
}

// FormatLocalTime renders HH:MM:SS (24-hour) in the instant's location
func FormatLocalTime(i Instant) string {
	return hms(i.LocalClock())
}

// FormatCentis renders millisecond/10 as two digits
func FormatCentis(i Instant) string {
	return fmt.Sprintf("%02d", i.Millisecond()/10)
}

// FormatPOSIX renders whole epoch seconds without padding or grouping
func FormatPOSIX(i Instant) string {
	return strconv.FormatInt(i.UnixSeconds(), 10)
}

// Format fills every readout field for i
func Format(i Instant) Readout {
	return Readout{
		UTCDate:   FormatUTCDate(i),
		UTCTime:   FormatUTCTime(i),
		LocalTime: FormatLocalTime(i),
		Centis:    FormatCentis(i),
		POSIX:     FormatPOSIX(i),
	}
}

func hms(c ClockFields) string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}
