package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/shopspring/decimal"
)

// Line renders a decimal series as a terminal chart. Values are converted
// to float64 for display only; the exact results live in the run store.
func Line(series []decimal.Decimal, height, width int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	data := make([]float64, len(series))
	for i, v := range series {
		data[i] = v.InexactFloat64()
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
