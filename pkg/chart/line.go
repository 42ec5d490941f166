package chart

const (
	lineWidth       = 2.5 // points
	lineMarkerSize  = 8.0 // marker diameter in points
	areaLineWidth   = 2.0
	areaMarkerSize  = 6.0
	areaFillOpacity = 0.4
)

// lineAxes builds the axes shared by line and area charts.
func lineAxes(k Kind, req Request) axes {
	values := req.Data.Values
	xlabel, ylabel := k.AxisLabels(req.XLabel, req.YLabel)
	yr := valueRange(values, specFor(k).zeroBased)
	return axes{
		x:         indexRange(len(values), 0),
		y:         yr,
		xTicks:    categoryTicks(req.Data.Labels),
		yTicks:    valueTicks(yr),
		xLabel:    xlabel,
		yLabel:    ylabel,
		gridAlpha: specFor(k).gridAlpha,
	}
}

// drawLine renders a polyline with circular markers; every point is
// annotated with its integer value.
func (c *canvas) drawLine(req Request) {
	values := req.Data.Values
	c.cartesian(lineAxes(Line, req), req.Title, func() {
		c.polyline(values, lineWidth, lineMarkerSize)
		for i, v := range values {
			c.annotate(FormatThousands(v), c.px(float64(i)), c.py(v)-c.pt(lineMarkerSize/2))
		}
	})
}

// drawArea renders a translucent region between the values and zero with a
// marked polyline on top.
func (c *canvas) drawArea(req Request) {
	values := req.Data.Values
	c.cartesian(lineAxes(Area, req), req.Title, func() {
		if len(values) > 0 {
			c.dc.MoveTo(c.px(0), c.py(0))
			for i, v := range values {
				c.dc.LineTo(c.px(float64(i)), c.py(v))
			}
			c.dc.LineTo(c.px(float64(len(values)-1)), c.py(0))
			c.dc.ClosePath()
			c.dc.SetColor(withAlpha(c.theme.series, areaFillOpacity))
			c.dc.Fill()
		}
		c.polyline(values, areaLineWidth, areaMarkerSize)
	})
}

// polyline strokes values in the series color and marks each point.
func (c *canvas) polyline(values []float64, width, markerSize float64) {
	if len(values) == 0 {
		return
	}
	c.dc.SetColor(c.theme.series)
	c.dc.SetLineWidth(c.pt(width))
	c.dc.NewSubPath()
	for i, v := range values {
		c.dc.LineTo(c.px(float64(i)), c.py(v))
	}
	c.dc.Stroke()
	for i, v := range values {
		c.dc.DrawCircle(c.px(float64(i)), c.py(v), c.pt(markerSize/2))
	}
	c.dc.Fill()
}
