package chart

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Number formatting is pinned to English conventions ("." decimal point,
// "," grouping) regardless of the process locale.
var groupingTag = language.English

// FormatThousands truncates v toward zero and formats it with comma digit
// grouping: 1234567.9 -> "1,234,567", -9876.5 -> "-9,876".
func FormatThousands(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	t := math.Trunc(v)
	if t == 0 {
		return "0"
	}
	p := message.NewPrinter(groupingTag)
	if math.Abs(t) < 1<<62 {
		return p.Sprintf("%d", int64(t))
	}
	return p.Sprintf("%.0f", t)
}

// FormatPercent formats a percentage with one decimal: 33.333 -> "33.3%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// Percentages returns each value's share of the total in percent. A zero
// total yields all zeros.
func Percentages(values []float64) []float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	out := make([]float64, len(values))
	if sum == 0 {
		return out
	}
	for i, v := range values {
		out[i] = 100 * v / sum
	}
	return out
}

// formatTick formats an axis tick value with just enough decimals to
// distinguish ticks spaced step apart.
func formatTick(v, step float64) string {
	s := strconv.FormatFloat(v, 'f', tickDecimals(step), 64)
	if s == "-0" || s == "-0.0" || s == "-0.00" {
		return s[1:]
	}
	return s
}

func tickDecimals(step float64) int {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	d := 0
	for ; d < 8; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*scaled {
			break
		}
	}
	return d
}
