package timerange

import (
	"regexp"
	"strconv"
	"strings"
)

// MatchKind reports how DescribeTextRange arrived at its result. The
// three outcomes are deliberately distinct: a catalog preset, a fresh
// now±N<unit> expression, or a genuinely unrecognized string.
type MatchKind int

const (
	// MatchNone means the expression was unrecognized; the option is
	// flagged invalid and its display is the literal "{from} to {to}".
	MatchNone MatchKind = iota
	// MatchPreset means an exact hit in the preset catalog.
	MatchPreset
	// MatchPattern means the expression matched now±N<unit> and the
	// label was derived from the unit table.
	MatchPattern
)

// textRangeRegex is the canonical derived-label pattern. It is
// anchored: boundary suffixes like "now-3d/d" do not match and fall
// through to the invalid literal.
var textRangeRegex = regexp.MustCompile(`^now([-+])(\d+)(\w)$`)

// DescribeTextRange describes a shorthand expression such as "6h",
// "now-7d" or "+30m". Expressions without a leading "+" are treated as
// past-relative. The catalog is consulted first; otherwise a label is
// derived from the now±N<unit> pattern; otherwise the result is marked
// invalid with a literal display.
func DescribeTextRange(expr string) (TimeOption, MatchKind) {
	isLast := !strings.HasPrefix(expr, "+")
	if !strings.Contains(expr, "now") {
		if isLast {
			expr = "now-" + expr
		} else {
			expr = "now" + expr
		}
	}

	if opt, ok := rangeIndex[expr+" to now"]; ok {
		return *opt, MatchPreset
	}

	var opt TimeOption
	if isLast {
		opt = TimeOption{From: expr, To: "now"}
	} else {
		opt = TimeOption{From: "now", To: expr}
	}

	if matches := textRangeRegex.FindStringSubmatch(expr); matches != nil {
		if unit, ok := spans[matches[3]]; ok {
			amount, _ := strconv.Atoi(matches[2])
			var b strings.Builder
			if isLast {
				b.WriteString("Last ")
			} else {
				b.WriteString("Next ")
			}
			b.WriteString(strconv.Itoa(amount))
			b.WriteString(" ")
			b.WriteString(unit.Display)
			if amount > 1 {
				b.WriteString("s")
			}
			opt.Display = b.String()
			opt.Section = SectionQuick
			return opt, MatchPattern
		}
	}

	opt.Display = opt.From + " to " + opt.To
	opt.Invalid = true
	return opt, MatchNone
}

// DescribeTimeRange produces a label for a raw range. Exact catalog
// pairs win; otherwise absolute sides are formatted as timestamps and
// relative sides as ages; a plain "<expr> to now" pair defers to
// DescribeTextRange. Total: unrecognized input degrades to the literal
// "{from} to {to}".
func DescribeTimeRange(raw RawTimeRange, opts ResolveOptions) string {
	if opt, ok := rangeIndex[raw.From+" to "+raw.To]; ok {
		return opt.Display
	}

	fromAbs, fromIsAbs := parseAbsolute(raw.From, opts.location())
	toAbs, toIsAbs := parseAbsolute(raw.To, opts.location())

	switch {
	case fromIsAbs && toIsAbs:
		return formatInstant(fromAbs, opts.location()) + " to " + formatInstant(toAbs, opts.location())
	case fromIsAbs:
		if to, err := resolveTo(raw.To, opts); err == nil {
			return formatInstant(fromAbs, opts.location()) + " to " + RelativeAge(to, opts.now())
		}
	case toIsAbs:
		if from, err := resolveFrom(raw.From, opts); err == nil {
			return RelativeAge(from, opts.now()) + " to " + formatInstant(toAbs, opts.location())
		}
	case raw.To == "now":
		opt, _ := DescribeTextRange(raw.From)
		return opt.Display
	}

	return raw.From + " to " + raw.To
}

// IsValidTimeSpan reports whether a span expression can be displayed.
// Variable interpolations ("$__from", "+$offset") are always considered
// valid; everything else must describe to a non-invalid option.
func IsValidTimeSpan(value string) bool {
	if strings.HasPrefix(value, "$") || strings.HasPrefix(value, "+$") {
		return true
	}
	opt, _ := DescribeTextRange(value)
	return !opt.Invalid
}
