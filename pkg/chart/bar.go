package chart

import "math"

const (
	barWidth     = 0.8 // in category units
	barEdgeWidth = 1.2 // points
)

// drawBar renders one palette-colored bar per value, each annotated with its
// integer value above the bar.
func (c *canvas) drawBar(req Request) {
	values := req.Data.Values
	xlabel, ylabel := Bar.AxisLabels(req.XLabel, req.YLabel)
	yr := valueRange(values, specFor(Bar).zeroBased)
	a := axes{
		x:         indexRange(len(values), barWidth/2),
		y:         yr,
		xTicks:    categoryTicks(req.Data.Labels),
		yTicks:    valueTicks(yr),
		xLabel:    xlabel,
		yLabel:    ylabel,
		gridAlpha: specFor(Bar).gridAlpha,
	}

	c.cartesian(a, req.Title, func() {
		colors := Sample(c.theme.palette, len(values))
		c.dc.SetLineWidth(c.pt(barEdgeWidth))
		for i, v := range values {
			x0, x1 := c.px(float64(i)-barWidth/2), c.px(float64(i)+barWidth/2)
			y0, y1 := c.py(0), c.py(v)
			c.dc.DrawRectangle(x0, math.Min(y0, y1), x1-x0, math.Abs(y1-y0))
			c.dc.SetColor(colors[i])
			c.dc.FillPreserve()
			c.dc.SetColor(c.theme.barEdge)
			c.dc.Stroke()
		}
		for i, v := range values {
			c.annotate(FormatThousands(v), c.px(float64(i)), c.py(v))
		}
	})
}
