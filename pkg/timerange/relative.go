package timerange

import (
	"fmt"
	"time"
)

// TimeRangeToRelative converts an absolute range into
// seconds-before-now offsets against the given reference instant.
func TimeRangeToRelative(tr TimeRange, now time.Time) RelativeTimeRange {
	return RelativeTimeRange{
		From: now.Unix() - tr.From.Unix(),
		To:   now.Unix() - tr.To.Unix(),
	}
}

// RelativeToTimeRange is the inverse of TimeRangeToRelative: offsets
// are subtracted from the reference instant. A To offset of exactly 0
// maps to now itself.
func RelativeToTimeRange(rel RelativeTimeRange, now time.Time) TimeRange {
	from := now.Add(-time.Duration(rel.From) * time.Second)
	to := now
	if rel.To != 0 {
		to = now.Add(-time.Duration(rel.To) * time.Second)
	}
	return TimeRange{
		From: from,
		To:   to,
		Raw: RawTimeRange{
			From: fmt.Sprintf("now-%ds", rel.From),
			To:   "now",
		},
	}
}
