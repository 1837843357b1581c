package timerange

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

const (
	secondsInYear   = 31536000
	secondsInDay    = 86400
	secondsInHour   = 3600
	secondsInMinute = 60
)

// SecondsToHms renders a duration using only its single largest
// applicable unit: "2y", "5d", "1h", and so on. Sub-millisecond
// durations fall through to a literal.
func SecondsToHms(seconds float64) string {
	numYears := int64(seconds / secondsInYear)
	if numYears > 0 {
		return fmt.Sprintf("%dy", numYears)
	}
	numDays := int64(math.Mod(seconds, secondsInYear) / secondsInDay)
	if numDays > 0 {
		return fmt.Sprintf("%dd", numDays)
	}
	numHours := int64(math.Mod(math.Mod(seconds, secondsInYear), secondsInDay) / secondsInHour)
	if numHours > 0 {
		return fmt.Sprintf("%dh", numHours)
	}
	numMinutes := int64(math.Mod(math.Mod(math.Mod(seconds, secondsInYear), secondsInDay), secondsInHour) / secondsInMinute)
	if numMinutes > 0 {
		return fmt.Sprintf("%dm", numMinutes)
	}
	numSeconds := int64(math.Mod(math.Mod(math.Mod(math.Mod(seconds, secondsInYear), secondsInDay), secondsInHour), secondsInMinute))
	if numSeconds > 0 {
		return fmt.Sprintf("%ds", numSeconds)
	}
	numMilliseconds := int64(seconds * 1000.0)
	if numMilliseconds > 0 {
		return fmt.Sprintf("%dms", numMilliseconds)
	}
	return "less than a millisecond"
}

// MsRangeToTimeString renders a span in up to three units (h, min, sec)
// joined by spaces, e.g. "1h 30min". Unlike SecondsToHms it composes
// units; zero-valued units are dropped.
func MsRangeToTimeString(rangeMs int64) string {
	rangeSec := int64(math.Round(float64(rangeMs) / 1000.0))

	hours := rangeSec / secondsInHour
	minutes := (rangeSec % secondsInHour) / secondsInMinute
	seconds := rangeSec % secondsInMinute

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dmin", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%dsec", seconds))
	}

	if len(parts) == 0 {
		return "less than 1 second"
	}
	return strings.Join(parts, " ")
}

// RelativeAge renders the age of an instant relative to now, e.g.
// "6 hours ago" or "in 2 days". Only the largest unit is kept.
func RelativeAge(t, now time.Time) string {
	d := now.Sub(t).Truncate(time.Second)
	if d >= 0 {
		return durafmt.Parse(d).LimitFirstN(1).String() + " ago"
	}
	return "in " + durafmt.Parse(-d).LimitFirstN(1).String()
}
