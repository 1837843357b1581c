package timerange

// span describes one shorthand unit symbol.
type span struct {
	Display string
}

// spans maps a unit symbol to its English display name, used when a
// label is derived from a now±N<unit> pattern rather than the catalog.
var spans = map[string]span{
	"s": {Display: "second"},
	"m": {Display: "minute"},
	"h": {Display: "hour"},
	"d": {Display: "day"},
	"w": {Display: "week"},
	"M": {Display: "month"},
	"y": {Display: "year"},
}

// intervalsInSeconds maps a unit symbol to seconds per unit. A month is
// a fixed 30 days and a year a fixed 365, matching chart bucket math
// rather than calendar arithmetic.
var intervalsInSeconds = map[string]float64{
	"y":  31536000,
	"M":  2592000,
	"w":  604800,
	"d":  86400,
	"h":  3600,
	"m":  60,
	"s":  1,
	"ms": 0.001,
}

// intervalUnits lists the unit symbols in the order they appear in
// error messages and in the parser's alternation. "ms" must precede
// "m" so the regexp built from this slice prefers the longer symbol.
var intervalUnits = []string{"ms", "y", "M", "w", "d", "h", "m", "s"}
