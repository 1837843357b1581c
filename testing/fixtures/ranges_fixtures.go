// Package fixtures provides shared test data for timerange tests.
package fixtures

import (
	"time"

	"github.com/sgaunet/timerange/pkg/timerange"
)

// ReferenceNow is the fixed reference instant used across tests:
// 2024-06-15 12:00:00 UTC, a Saturday.
func ReferenceNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

// OneHourRange returns an absolute range covering the hour before
// ReferenceNow.
func OneHourRange() timerange.TimeRange {
	now := ReferenceNow()
	return timerange.TimeRange{
		From: now.Add(-time.Hour),
		To:   now,
		Raw:  timerange.RawTimeRange{From: "now-1h", To: "now"},
	}
}

// SixHourRange returns an absolute range covering the six hours before
// ReferenceNow.
func SixHourRange() timerange.TimeRange {
	now := ReferenceNow()
	return timerange.TimeRange{
		From: now.Add(-6 * time.Hour),
		To:   now,
		Raw:  timerange.RawTimeRange{From: "now-6h", To: "now"},
	}
}

// EpochHourRange returns the first hour of the epoch as an absolute
// range, handy for interval math with round numbers.
func EpochHourRange() timerange.TimeRange {
	return timerange.TimeRange{
		From: time.UnixMilli(0).UTC(),
		To:   time.UnixMilli(3600000).UTC(),
	}
}

// AbsoluteRawRange returns a raw range with both sides absolute
// timestamps inside June 2024.
func AbsoluteRawRange() timerange.RawTimeRange {
	return timerange.RawTimeRange{
		From: "2024-06-14 10:00:00",
		To:   "2024-06-14 16:30:00",
	}
}
