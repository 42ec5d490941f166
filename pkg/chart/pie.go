package chart

import (
	"math"
)

const (
	pieStartAngle  = 90.0 // degrees, counter-clockwise from the positive x axis
	pieRadius      = 0.4  // fraction of the smaller plot dimension
	pieLabelRadius = 1.1  // label distance in radii
	piePctRadius   = 0.6  // percentage distance in radii
	pieEdgeWidth   = 1.0  // points
)

// drawPie renders one wedge per value, counter-clockwise from twelve o'clock,
// labeled outside with its label and inside with its percentage.
func (c *canvas) drawPie(req Request) {
	values := req.Data.Values
	labels := req.Data.Labels

	top := c.pt(outerPad)
	if req.Title != "" {
		top += lineHeight(c.titleFace) + c.pt(c.style.TitlePad)
	}
	bottom := c.pt(outerPad)
	c.plot = rect{x: 0, y: top, w: c.width(), h: math.Max(c.height()-top-bottom, 1)}

	cx := c.plot.x + c.plot.w/2
	cy := c.plot.y + c.plot.h/2
	r := pieRadius * math.Min(c.plot.w, c.plot.h)

	pcts := Percentages(values)
	colors := Sample(c.theme.palette, len(values))

	// screen y grows downward, so a counter-clockwise angle is negated
	angle := pieStartAngle
	mids := make([]float64, len(values))
	for i := range values {
		sweep := 3.6 * pcts[i]
		mids[i] = angle + sweep/2
		if sweep > 0 {
			c.dc.MoveTo(cx, cy)
			c.dc.DrawArc(cx, cy, r, -radians(angle), -radians(angle+sweep))
			c.dc.ClosePath()
			c.dc.SetColor(colors[i])
			c.dc.FillPreserve()
			c.dc.SetColor(c.theme.wedgeEdge)
			c.dc.SetLineWidth(c.pt(pieEdgeWidth))
			c.dc.Stroke()
		}
		angle += sweep
	}

	for i := range values {
		cos, sin := math.Cos(radians(mids[i])), math.Sin(radians(mids[i]))
		ax := 1.0
		if cos >= 0 {
			ax = 0
		}
		if i < len(labels) {
			c.text(c.pieFace, c.theme.text, labels[i],
				cx+pieLabelRadius*r*cos, cy-pieLabelRadius*r*sin, ax, midTextRef)
		}
		c.text(c.pieFace, c.theme.text, FormatPercent(pcts[i]),
			cx+piePctRadius*r*cos, cy-piePctRadius*r*sin, 0.5, midTextRef)
	}

	c.drawTitle(req.Title)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
