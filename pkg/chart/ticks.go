package chart

import "math"

// axisRange is a closed data interval mapped onto one plot dimension.
type axisRange struct {
	min, max float64
}

func (r axisRange) span() float64 { return r.max - r.min }

// plottable reports whether r and its span are finite.
func (r axisRange) plottable() bool {
	return finite(r.min) && finite(r.max) && finite(r.span())
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// tick is a labeled position along an axis.
type tick struct {
	value float64
	label string
}

const (
	targetTicks = 6
	maxTicks    = 64
	dataMargin  = 0.05 // fraction of the data span added on each side
)

var niceSteps = []float64{1, 2, 2.5, 5, 10}

// niceStep returns a round step that divides span into roughly target parts.
func niceStep(span float64, target int) float64 {
	if span <= 0 || target <= 0 {
		return 1
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	for _, s := range niceSteps {
		if norm <= s {
			return s * mag
		}
	}
	return 10 * mag
}

// valueTicks returns evenly spaced, labeled ticks inside r. A range that
// cannot be subdivided gets no ticks.
func valueTicks(r axisRange) []tick {
	step := niceStep(r.span(), targetTicks)
	first := math.Ceil(r.min/step) * step
	if !finite(step) || step <= 0 || !finite(first) {
		return nil
	}
	var out []tick
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*step
		if v > r.max+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, tick{value: v, label: formatTick(v, step)})
	}
	return out
}

// categoryTicks places one tick per label at positions 0..n-1.
func categoryTicks(labels []string) []tick {
	out := make([]tick, len(labels))
	for i, l := range labels {
		out[i] = tick{value: float64(i), label: l}
	}
	return out
}

// valueRange returns the padded y range for values. With anchorZero the
// range always includes zero and is not padded past it, as for bars and
// filled areas.
func valueRange(values []float64, anchorZero bool) axisRange {
	if len(values) == 0 {
		return axisRange{0, 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if anchorZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
		if lo == hi {
			return axisRange{0, 1}
		}
		pad := (hi - lo) * dataMargin
		if lo < 0 {
			lo -= pad
		}
		if hi > 0 {
			hi += pad
		}
		return axisRange{lo, hi}
	}
	if lo == hi {
		d := math.Max(math.Abs(lo)*dataMargin, 0.5)
		return axisRange{lo - d, hi + d}
	}
	pad := (hi - lo) * dataMargin
	return axisRange{lo - pad, hi + pad}
}

// indexRange returns the padded x range for n points at 0..n-1, widened by
// halfWidth on each side for bars.
func indexRange(n int, halfWidth float64) axisRange {
	if n == 0 {
		return axisRange{0, 1}
	}
	lo, hi := -halfWidth, float64(n-1)+halfWidth
	if lo == hi {
		return axisRange{lo - 0.5, hi + 0.5}
	}
	pad := (hi - lo) * dataMargin
	return axisRange{lo - pad, hi + pad}
}
