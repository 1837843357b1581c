package timerange_test

import (
	"testing"
	"time"

	"github.com/sgaunet/timerange/pkg/timerange"
	"github.com/sgaunet/timerange/testing/fixtures"
)

func TestSecondsToHms(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "only the largest unit shows", seconds: 3661, expected: "1h"},
		{name: "two years", seconds: 63072000, expected: "2y"},
		{name: "five days", seconds: 432000, expected: "5d"},
		{name: "ninety seconds shows minutes", seconds: 90, expected: "1m"},
		{name: "seconds", seconds: 45, expected: "45s"},
		{name: "sub-second shows milliseconds", seconds: 0.25, expected: "250ms"},
		{name: "sub-millisecond falls through", seconds: 0.0001, expected: "less than a millisecond"},
		{name: "zero falls through", seconds: 0, expected: "less than a millisecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timerange.SecondsToHms(tt.seconds)
			if got != tt.expected {
				t.Errorf("SecondsToHms(%v) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestMsRangeToTimeString(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{name: "composite hours and minutes", ms: 5400000, expected: "1h 30min"},
		{name: "all three units", ms: 3723000, expected: "1h 2min 3sec"},
		{name: "minutes only", ms: 300000, expected: "5min"},
		{name: "seconds only", ms: 45000, expected: "45sec"},
		{name: "zero units fall through", ms: 200, expected: "less than 1 second"},
		{name: "rounds to nearest second", ms: 1500, expected: "2sec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timerange.MsRangeToTimeString(tt.ms)
			if got != tt.expected {
				t.Errorf("MsRangeToTimeString(%d) = %q, want %q", tt.ms, got, tt.expected)
			}
		})
	}
}

func TestRelativeAge(t *testing.T) {
	now := fixtures.ReferenceNow()

	tests := []struct {
		name     string
		instant  time.Time
		expected string
	}{
		{name: "hours ago", instant: now.Add(-6 * time.Hour), expected: "6 hours ago"},
		{name: "single unit only", instant: now.Add(-90 * time.Minute), expected: "1 hour ago"},
		{name: "days ago", instant: now.Add(-48 * time.Hour), expected: "2 days ago"},
		{name: "future instant", instant: now.Add(30 * time.Minute), expected: "in 30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timerange.RelativeAge(tt.instant, now)
			if got != tt.expected {
				t.Errorf("RelativeAge() = %q, want %q", got, tt.expected)
			}
		})
	}
}
