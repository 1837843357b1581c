package timerange

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidInterval is returned when an interval string is neither
// unit-less numeric nor of the form <number><unit>.
var ErrInvalidInterval = errors.New("invalid interval string")

// intervalRegex accepts <number><unit> where unit comes from the unit
// table; built from intervalUnits so the two can never disagree.
var intervalRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)(` + strings.Join(intervalUnits, "|") + `)$`)

// DescribeInterval parses an interval string. A purely numeric string,
// "0" included, is a count of seconds; otherwise the string must match
// <number><unit> with a unit from the table. Fractional counts
// truncate toward zero.
func DescribeInterval(str string) (IntervalInfo, error) {
	if v, err := strconv.ParseFloat(str, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return IntervalInfo{Sec: intervalsInSeconds["s"], Type: "s", Count: int(v)}, nil
	}

	matches := intervalRegex.FindStringSubmatch(str)
	if matches == nil {
		return IntervalInfo{}, fmt.Errorf(
			"%w %q: has to be either unit-less or end with one of: %s",
			ErrInvalidInterval, str, strings.Join(intervalUnits, ", "))
	}

	sec, ok := intervalsInSeconds[matches[2]]
	if !ok {
		// Unreachable while the regexp is built from the unit table.
		return IntervalInfo{}, fmt.Errorf("%w %q: unknown unit %q", ErrInvalidInterval, str, matches[2])
	}

	count, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return IntervalInfo{}, fmt.Errorf("%w %q: %w", ErrInvalidInterval, str, err)
	}

	return IntervalInfo{Sec: sec, Type: matches[2], Count: int(count)}, nil
}

// IntervalToMs converts an interval string to milliseconds.
func IntervalToMs(str string) (int64, error) {
	info, err := DescribeInterval(str)
	if err != nil {
		return 0, err
	}
	return int64(info.Sec * float64(info.Count) * 1000), nil
}

// IntervalToSeconds converts an interval string to seconds.
func IntervalToSeconds(str string) (float64, error) {
	info, err := DescribeInterval(str)
	if err != nil {
		return 0, err
	}
	return info.Sec * float64(info.Count), nil
}

// RoundInterval maps a raw duration in milliseconds to the nearest
// bucket from a fixed ladder of chart-friendly sizes. Upper bounds are
// exclusive and sit roughly midway between adjacent buckets; anything
// past the last threshold rounds to one year.
func RoundInterval(intervalMs int64) int64 {
	switch {
	case intervalMs < 10:
		return 1 // 1ms
	case intervalMs < 15:
		return 10 // 10ms
	case intervalMs < 35:
		return 20 // 20ms
	case intervalMs < 75:
		return 50 // 50ms
	case intervalMs < 150:
		return 100 // 100ms
	case intervalMs < 350:
		return 200 // 200ms
	case intervalMs < 750:
		return 500 // 500ms
	case intervalMs < 1500:
		return 1000 // 1s
	case intervalMs < 3500:
		return 2000 // 2s
	case intervalMs < 7500:
		return 5000 // 5s
	case intervalMs < 12500:
		return 10000 // 10s
	case intervalMs < 17500:
		return 15000 // 15s
	case intervalMs < 25000:
		return 20000 // 20s
	case intervalMs < 45000:
		return 30000 // 30s
	case intervalMs < 90000:
		return 60000 // 1m
	case intervalMs < 210000:
		return 120000 // 2m
	case intervalMs < 450000:
		return 300000 // 5m
	case intervalMs < 750000:
		return 600000 // 10m
	case intervalMs < 1050000:
		return 900000 // 15m
	case intervalMs < 1500000:
		return 1200000 // 20m
	case intervalMs < 2700000:
		return 1800000 // 30m
	case intervalMs < 5400000:
		return 3600000 // 1h
	case intervalMs < 9000000:
		return 7200000 // 2h
	case intervalMs < 12600000:
		return 10800000 // 3h
	case intervalMs < 32400000:
		return 21600000 // 6h
	case intervalMs < 86400000:
		return 43200000 // 12h
	case intervalMs < 604800000:
		return 86400000 // 1d
	case intervalMs < 1814400000:
		return 604800000 // 1w
	case intervalMs < 3628800000:
		return 2592000000 // 30d
	default:
		return 31536000000 // 1y
	}
}

// CalculateInterval picks a display bucket for a range shown at the
// given resolution (number of buckets). A resolution below 1 is
// treated as 1: the whole range becomes a single bucket rather than a
// panic. The rounded bucket is clamped below by minInterval when one
// is configured; an empty minInterval means no clamp. The only
// possible error is an unparseable minInterval.
func CalculateInterval(tr TimeRange, resolution int64, minInterval string) (IntervalValues, error) {
	lowLimitMs := int64(1)
	if minInterval != "" {
		ms, err := IntervalToMs(minInterval)
		if err != nil {
			return IntervalValues{}, fmt.Errorf("parse min interval: %w", err)
		}
		lowLimitMs = ms
	}

	if resolution < 1 {
		resolution = 1
	}
	intervalMs := RoundInterval(tr.To.Sub(tr.From).Milliseconds() / resolution)
	if lowLimitMs > intervalMs {
		intervalMs = lowLimitMs
	}

	return IntervalValues{
		IntervalMs: intervalMs,
		Interval:   SecondsToHms(float64(intervalMs) / 1000),
	}, nil
}
