// Package timerange translates between machine time ranges and the
// human-readable labels and shorthand used by dashboards.
//
// It covers four concerns:
//   - parsing interval strings like "5m" or "1.5h" (DescribeInterval)
//   - rounding raw durations to "nice" chart bucket sizes (RoundInterval,
//     CalculateInterval)
//   - describing range expressions like "now-6h to now" against a preset
//     catalog (DescribeTextRange, DescribeTimeRange)
//   - converting absolute ranges to and from relative-offset form
//     (TimeRangeToRelative, RelativeToTimeRange)
//
// All catalogs are built once at package load and never mutated; every
// function is safe for concurrent use.
package timerange

import "time"

// TimeOption is a named (from, to) pair with a display label. Catalog
// presets are process-wide constants; derived options are created per
// call and discarded.
type TimeOption struct {
	From    string
	To      string
	Display string
	Section int
	Invalid bool
}

// RawTimeRange holds a range as the user expressed it; each side is
// either an absolute timestamp, an epoch-milliseconds string, or a
// relative expression such as "now-6h".
type RawTimeRange struct {
	From string
	To   string
}

// TimeRange is a RawTimeRange resolved to absolute instants. The
// original raw strings are retained so the range can be re-resolved
// against a later "now".
type TimeRange struct {
	From time.Time
	To   time.Time
	Raw  RawTimeRange
}

// RelativeTimeRange expresses a range as seconds before now, the form
// used by alerting-style rules. To == 0 means "now" itself.
type RelativeTimeRange struct {
	From int64
	To   int64
}

// IntervalValues is a chosen bucket size and its human label.
type IntervalValues struct {
	IntervalMs int64
	Interval   string
}

// IntervalInfo is the parsed form of an interval string: seconds per
// unit, the unit symbol, and the count in front of it.
type IntervalInfo struct {
	Sec   float64
	Type  string
	Count int
}
