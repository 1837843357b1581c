package timerange

// Catalog sections, lowest listed first in pickers.
const (
	SectionPrevious = 1
	SectionCurrent  = 2
	SectionQuick    = 3
)

// rangeOptions is the visible preset catalog. Display strings are the
// shipped Spanish labels; derived labels (see DescribeTextRange) stay
// English.
var rangeOptions = []TimeOption{
	{From: "now/d", To: "now/d", Display: "Hoy", Section: SectionCurrent},
	{From: "now/d", To: "now", Display: "Hoy hasta ahora", Section: SectionCurrent},
	{From: "now/w", To: "now/w", Display: "Esta semana", Section: SectionCurrent},
	{From: "now/w", To: "now", Display: "Esta semana hasta ahora", Section: SectionCurrent},
	{From: "now/M", To: "now/M", Display: "Este mes", Section: SectionCurrent},
	{From: "now/M", To: "now", Display: "Este mes hasta ahora", Section: SectionCurrent},
	{From: "now/y", To: "now/y", Display: "Este año", Section: SectionCurrent},
	{From: "now/y", To: "now", Display: "Este año hasta ahora", Section: SectionCurrent},
	{From: "now/fQ", To: "now/fQ", Display: "Este trimestre fiscal", Section: SectionCurrent},
	{From: "now/fy", To: "now/fy", Display: "Este año fiscal", Section: SectionCurrent},

	{From: "now-1d/d", To: "now-1d/d", Display: "Ayer", Section: SectionPrevious},
	{From: "now-2d/d", To: "now-2d/d", Display: "Anteayer", Section: SectionPrevious},
	{From: "now-7d/d", To: "now-7d/d", Display: "Este día la semana pasada", Section: SectionPrevious},
	{From: "now-1w/w", To: "now-1w/w", Display: "Semana anterior", Section: SectionPrevious},
	{From: "now-1M/M", To: "now-1M/M", Display: "Mes anterior", Section: SectionPrevious},
	{From: "now-1Q/fQ", To: "now-1Q/fQ", Display: "Trimestre fiscal anterior", Section: SectionPrevious},
	{From: "now-1y/y", To: "now-1y/y", Display: "Año anterior", Section: SectionPrevious},
	{From: "now-1y/fy", To: "now-1y/fy", Display: "Año fiscal anterior", Section: SectionPrevious},

	{From: "now-5m", To: "now", Display: "Últimos 5 minutos", Section: SectionQuick},
	{From: "now-15m", To: "now", Display: "Últimos 15 minutos", Section: SectionQuick},
	{From: "now-30m", To: "now", Display: "Últimos 30 minutos", Section: SectionQuick},
	{From: "now-1h", To: "now", Display: "Última hora", Section: SectionQuick},
	{From: "now-3h", To: "now", Display: "Últimas 3 horas", Section: SectionQuick},
	{From: "now-6h", To: "now", Display: "Últimas 6 horas", Section: SectionQuick},
	{From: "now-12h", To: "now", Display: "Últimas 12 horas", Section: SectionQuick},
	{From: "now-24h", To: "now", Display: "Últimas 24 horas", Section: SectionQuick},
	{From: "now-2d", To: "now", Display: "Últimos 2 días", Section: SectionQuick},
	{From: "now-7d", To: "now", Display: "Últimos 7 días", Section: SectionQuick},
	{From: "now-30d", To: "now", Display: "Últimos 30 días", Section: SectionQuick},
	{From: "now-90d", To: "now", Display: "Últimos 90 días", Section: SectionQuick},
	{From: "now-6M", To: "now", Display: "Últimos 6 meses", Section: SectionQuick},
	{From: "now-1y", To: "now", Display: "Último año", Section: SectionQuick},
	{From: "now-2y", To: "now", Display: "Últimos 2 años", Section: SectionQuick},
	{From: "now-5y", To: "now", Display: "Últimos 5 años", Section: SectionQuick},
}

// hiddenRangeOptions are future-relative presets. They never show up in
// pickers but are indexed so exact raw pairs resolve to a label.
var hiddenRangeOptions = []TimeOption{
	{From: "now", To: "now+1m", Display: "Próximo minuto", Section: SectionQuick},
	{From: "now", To: "now+5m", Display: "Próximos 5 minutos", Section: SectionQuick},
	{From: "now", To: "now+15m", Display: "Próximos 15 minutos", Section: SectionQuick},
	{From: "now", To: "now+30m", Display: "Próximos 30 minutos", Section: SectionQuick},
	{From: "now", To: "now+1h", Display: "Próxima hora", Section: SectionQuick},
	{From: "now", To: "now+3h", Display: "Próximas 3 horas", Section: SectionQuick},
	{From: "now", To: "now+6h", Display: "Próximas 6 horas", Section: SectionQuick},
	{From: "now", To: "now+12h", Display: "Próximas 12 horas", Section: SectionQuick},
	{From: "now", To: "now+24h", Display: "Próximas 24 horas", Section: SectionQuick},
}

// rangeIndex maps "{from} to {to}" to its preset. Built once from both
// catalogs so a key can never drift from its option.
var rangeIndex = make(map[string]*TimeOption, len(rangeOptions)+len(hiddenRangeOptions))

func init() {
	for i := range rangeOptions {
		opt := &rangeOptions[i]
		rangeIndex[opt.From+" to "+opt.To] = opt
	}
	for i := range hiddenRangeOptions {
		opt := &hiddenRangeOptions[i]
		rangeIndex[opt.From+" to "+opt.To] = opt
	}
}

// RangeOptions returns a copy of the visible preset catalog in picker
// order.
func RangeOptions() []TimeOption {
	out := make([]TimeOption, len(rangeOptions))
	copy(out, rangeOptions)
	return out
}
