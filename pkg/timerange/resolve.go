package timerange

import (
	"fmt"
	"strconv"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/backend/gtime"
)

// absoluteLayouts are the timestamp forms accepted verbatim on either
// side of a range. Epoch milliseconds are handled separately.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// instantLayout is the fixed display layout for absolute instants.
const instantLayout = "2006-01-02 15:04:05"

// ResolveOptions carries the reference instant and calendar settings
// used when resolving expressions. Zero values mean: current time, UTC,
// Sunday week start, January fiscal year start.
type ResolveOptions struct {
	Now                  time.Time
	Location             *time.Location
	WeekStart            time.Weekday
	FiscalYearStartMonth time.Month
}

func (o ResolveOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o ResolveOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o ResolveOptions) fiscalStartMonth() time.Month {
	if o.FiscalYearStartMonth == 0 {
		return time.January
	}
	return o.FiscalYearStartMonth
}

func (o ResolveOptions) gtimeOptions() []gtime.TimeRangeOption {
	return []gtime.TimeRangeOption{
		gtime.WithLocation(o.location()),
		gtime.WithWeekstart(o.WeekStart),
		gtime.WithFiscalStartMonth(o.fiscalStartMonth()),
	}
}

// Resolve turns a raw range into absolute instants. The from side
// rounds down and the to side rounds up, so "now/d to now/d" covers the
// whole day. The raw strings are retained on the result.
func Resolve(raw RawTimeRange, opts ResolveOptions) (TimeRange, error) {
	tr := gtime.TimeRange{From: raw.From, To: raw.To, Now: opts.now()}

	from, err := tr.ParseFrom(opts.gtimeOptions()...)
	if err != nil {
		return TimeRange{}, fmt.Errorf("parse range from %q: %w", raw.From, err)
	}

	to, err := tr.ParseTo(opts.gtimeOptions()...)
	if err != nil {
		return TimeRange{}, fmt.Errorf("parse range to %q: %w", raw.To, err)
	}

	return TimeRange{From: from, To: to, Raw: raw}, nil
}

func resolveFrom(expr string, opts ResolveOptions) (time.Time, error) {
	tr := gtime.TimeRange{From: expr, Now: opts.now()}
	return tr.ParseFrom(opts.gtimeOptions()...)
}

func resolveTo(expr string, opts ResolveOptions) (time.Time, error) {
	tr := gtime.TimeRange{To: expr, Now: opts.now()}
	return tr.ParseTo(opts.gtimeOptions()...)
}

// parseAbsolute reports whether a raw side is an absolute timestamp and
// returns the parsed instant. Pure digit strings are epoch
// milliseconds.
func parseAbsolute(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms).In(loc), true
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatInstant(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(instantLayout)
}
