package timerange_test

import (
	"testing"

	"github.com/sgaunet/timerange/pkg/timerange"
	"github.com/sgaunet/timerange/testing/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestDescribeTextRange(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		wantDisplay string
		wantFrom    string
		wantTo      string
		wantKind    timerange.MatchKind
		wantInvalid bool
	}{
		{
			name:        "bare offset hits the catalog",
			expr:        "6h",
			wantDisplay: "Últimas 6 horas",
			wantFrom:    "now-6h",
			wantTo:      "now",
			wantKind:    timerange.MatchPreset,
		},
		{
			name:        "full expression hits the catalog",
			expr:        "now-30m",
			wantDisplay: "Últimos 30 minutos",
			wantFrom:    "now-30m",
			wantTo:      "now",
			wantKind:    timerange.MatchPreset,
		},
		{
			name:        "fresh expression derives a label",
			expr:        "13h",
			wantDisplay: "Last 13 hours",
			wantFrom:    "now-13h",
			wantTo:      "now",
			wantKind:    timerange.MatchPattern,
		},
		{
			name:        "singular amount is not pluralized",
			expr:        "now-1m",
			wantDisplay: "Last 1 minute",
			wantFrom:    "now-1m",
			wantTo:      "now",
			wantKind:    timerange.MatchPattern,
		},
		{
			name:        "leading plus is future-relative",
			expr:        "+45m",
			wantDisplay: "Next 45 minutes",
			wantFrom:    "now",
			wantTo:      "now+45m",
			wantKind:    timerange.MatchPattern,
		},
		{
			name:        "boundary suffix falls through to literal",
			expr:        "now-3d/d",
			wantDisplay: "now-3d/d to now",
			wantFrom:    "now-3d/d",
			wantTo:      "now",
			wantKind:    timerange.MatchNone,
			wantInvalid: true,
		},
		{
			name:        "garbage falls through to literal",
			expr:        "tomorrow-ish",
			wantDisplay: "now-tomorrow-ish to now",
			wantFrom:    "now-tomorrow-ish",
			wantTo:      "now",
			wantKind:    timerange.MatchNone,
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, kind := timerange.DescribeTextRange(tt.expr)
			assert.Equal(t, tt.wantDisplay, opt.Display)
			assert.Equal(t, tt.wantFrom, opt.From)
			assert.Equal(t, tt.wantTo, opt.To)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantInvalid, opt.Invalid)
		})
	}
}

func TestDescribeTimeRange(t *testing.T) {
	opts := timerange.ResolveOptions{Now: fixtures.ReferenceNow()}

	t.Run("catalog pair wins", func(t *testing.T) {
		got := timerange.DescribeTimeRange(timerange.RawTimeRange{From: "now-6h", To: "now"}, opts)
		assert.Equal(t, "Últimas 6 horas", got)
	})

	t.Run("hidden future pair resolves to its label", func(t *testing.T) {
		got := timerange.DescribeTimeRange(timerange.RawTimeRange{From: "now", To: "now+5m"}, opts)
		assert.Equal(t, "Próximos 5 minutos", got)
	})

	t.Run("both sides absolute", func(t *testing.T) {
		got := timerange.DescribeTimeRange(fixtures.AbsoluteRawRange(), opts)
		assert.Equal(t, "2024-06-14 10:00:00 to 2024-06-14 16:30:00", got)
	})

	t.Run("absolute from with relative to", func(t *testing.T) {
		raw := timerange.RawTimeRange{From: "2024-06-14 10:00:00", To: "now-6h"}
		got := timerange.DescribeTimeRange(raw, opts)
		assert.Equal(t, "2024-06-14 10:00:00 to 6 hours ago", got)
	})

	t.Run("relative from with absolute to", func(t *testing.T) {
		raw := timerange.RawTimeRange{From: "now-6h", To: "2024-06-15 12:00:00"}
		got := timerange.DescribeTimeRange(raw, opts)
		assert.Equal(t, "6 hours ago to 2024-06-15 12:00:00", got)
	})

	t.Run("epoch milliseconds are absolute", func(t *testing.T) {
		raw := timerange.RawTimeRange{From: "1718445600000", To: "1718452800000"}
		got := timerange.DescribeTimeRange(raw, opts)
		assert.Equal(t, "2024-06-15 10:00:00 to 2024-06-15 12:00:00", got)
	})

	t.Run("fresh expression to now defers to text description", func(t *testing.T) {
		got := timerange.DescribeTimeRange(timerange.RawTimeRange{From: "now-13h", To: "now"}, opts)
		assert.Equal(t, "Last 13 hours", got)
	})

	t.Run("unrecognized pair degrades to literal", func(t *testing.T) {
		got := timerange.DescribeTimeRange(timerange.RawTimeRange{From: "now-3d/d", To: "now-1d/d"}, opts)
		assert.Equal(t, "now-3d/d to now-1d/d", got)
	})
}

func TestIsValidTimeSpan(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "$__from", expected: true},
		{value: "+$offset", expected: true},
		{value: "6h", expected: true},
		{value: "now-7d", expected: true},
		{value: "+30m", expected: true},
		{value: "now-3d/d", expected: false},
		{value: "bogus", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := timerange.IsValidTimeSpan(tt.value)
			if got != tt.expected {
				t.Errorf("IsValidTimeSpan(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}
