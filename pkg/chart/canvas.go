package chart

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartkit/pkg/fonts"
)

// Spacing in points.
const (
	outerPad   = 8.0 // figure edge to outermost text before cropping
	tickPad    = 3.5 // tick label to plot edge
	labelPad   = 4.0 // axis label to tick labels
	annotPad   = 2.0 // annotation to the point it labels
	gridWidth  = 1.0
	midTextRef = 0.3 // vertical anchor that centers digits and capitals on y
)

// newFace creates the font faces of a canvas.
var newFace = fonts.Face

// rect is a pixel rectangle with its origin at the top-left corner.
type rect struct {
	x, y, w, h float64
}

// canvas is the rendering context of a single call. It owns the drawing
// surface and font faces; nothing in it outlives the call.
type canvas struct {
	dc    *gg.Context
	style Style
	theme theme
	scale float64

	titleFace, labelFace, tickFace, annotFace, pieFace font.Face

	plot rect
	x, y axisRange
}

func newCanvas(s Style, t theme) (*canvas, error) {
	c := &canvas{
		dc:    gg.NewContext(s.pixels(s.Width), s.pixels(s.Height)),
		style: s,
		theme: t,
		scale: s.scale(),
	}
	faces := []struct {
		dst    *font.Face
		weight fonts.Weight
		size   float64
	}{
		{&c.titleFace, fonts.Bold, s.TitleSize},
		{&c.labelFace, fonts.Regular, s.LabelSize},
		{&c.tickFace, fonts.Regular, s.TickSize},
		{&c.annotFace, fonts.Bold, s.AnnotationSize},
		{&c.pieFace, fonts.Bold, s.PieLabelSize},
	}
	for _, f := range faces {
		face, err := newFace(f.weight, f.size, s.DPI)
		if err != nil {
			c.close()
			return nil, err
		}
		*f.dst = face
	}
	c.dc.SetColor(t.figure)
	c.dc.Clear()
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()
	return c, nil
}

// close releases the font faces.
func (c *canvas) close() {
	for _, f := range []font.Face{c.titleFace, c.labelFace, c.tickFace, c.annotFace, c.pieFace} {
		if f != nil {
			f.Close()
		}
	}
}

func (c *canvas) width() float64  { return float64(c.dc.Width()) }
func (c *canvas) height() float64 { return float64(c.dc.Height()) }

// pt converts points to pixels.
func (c *canvas) pt(v float64) float64 { return v * c.scale }

// px maps a data x coordinate to a pixel column.
func (c *canvas) px(x float64) float64 {
	return c.plot.x + (x-c.x.min)/c.x.span()*c.plot.w
}

// py maps a data y coordinate to a pixel row.
func (c *canvas) py(y float64) float64 {
	return c.plot.y + c.plot.h - (y-c.y.min)/c.y.span()*c.plot.h
}

// textWidth returns the advance width of s in face, in pixels.
func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// lineHeight returns the line height of face, in pixels.
func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}

// maxTickWidth returns the widest tick label in face.
func maxTickWidth(face font.Face, ticks []tick) float64 {
	var w float64
	for _, t := range ticks {
		w = math.Max(w, textWidth(face, t.label))
	}
	return w
}

// text draws s anchored at (x, y). ax and ay follow gg.DrawStringAnchored:
// (0, 0) puts the baseline start at the point, (0.5, midTextRef) centers it.
func (c *canvas) text(face font.Face, col color.Color, s string, x, y, ax, ay float64) {
	if s == "" {
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// axes describes a cartesian plot before layout.
type axes struct {
	x, y           axisRange
	xTicks, yTicks []tick
	xLabel, yLabel string
	gridAlpha      float64
}

// layout sizes the plot rectangle so that title, tick labels and axis labels
// fit inside the canvas.
func (c *canvas) layout(a axes, title string) {
	tickH := lineHeight(c.tickFace)
	labelH := lineHeight(c.labelFace)

	top := c.pt(outerPad)
	if title != "" {
		top += lineHeight(c.titleFace) + c.pt(c.style.TitlePad)
	} else {
		top += lineHeight(c.annotFace)
	}

	left := c.pt(outerPad) + maxTickWidth(c.tickFace, a.yTicks) + c.pt(tickPad)
	if a.yLabel != "" {
		left += labelH + c.pt(labelPad)
	}

	bottom := c.pt(outerPad) + tickH + c.pt(tickPad)
	if a.xLabel != "" {
		bottom += labelH + c.pt(labelPad)
	}

	right := c.pt(outerPad)
	if n := len(a.xTicks); n > 0 {
		right += textWidth(c.tickFace, a.xTicks[n-1].label) / 2
	}

	c.x, c.y = a.x, a.y
	c.plot = rect{
		x: left,
		y: top,
		w: math.Max(c.width()-left-right, 1),
		h: math.Max(c.height()-top-bottom, 1),
	}
}

// drawFrame fills the plot background and draws the grid behind the data.
func (c *canvas) drawFrame(a axes) {
	c.dc.SetColor(c.theme.background)
	c.dc.DrawRectangle(c.plot.x, c.plot.y, c.plot.w, c.plot.h)
	c.dc.Fill()

	c.dc.SetColor(withAlpha(c.theme.grid, a.gridAlpha))
	c.dc.SetLineWidth(c.pt(gridWidth))
	for _, t := range a.yTicks {
		y := c.py(t.value)
		c.dc.DrawLine(c.plot.x, y, c.plot.x+c.plot.w, y)
	}
	for _, t := range a.xTicks {
		x := c.px(t.value)
		c.dc.DrawLine(x, c.plot.y, x, c.plot.y+c.plot.h)
	}
	c.dc.Stroke()
}

// drawAxisText draws tick labels and axis labels around the plot.
func (c *canvas) drawAxisText(a axes) {
	for _, t := range a.yTicks {
		c.text(c.tickFace, c.theme.text, t.label, c.plot.x-c.pt(tickPad), c.py(t.value), 1, midTextRef)
	}
	bottom := c.plot.y + c.plot.h + c.pt(tickPad)
	for _, t := range a.xTicks {
		c.text(c.tickFace, c.theme.text, t.label, c.px(t.value), bottom, 0.5, 1)
	}

	if a.xLabel != "" {
		y := bottom + lineHeight(c.tickFace) + c.pt(labelPad)
		c.text(c.labelFace, c.theme.text, a.xLabel, c.plot.x+c.plot.w/2, y, 0.5, 1)
	}
	if a.yLabel != "" {
		yTickW := maxTickWidth(c.tickFace, a.yTicks)
		x := c.plot.x - c.pt(tickPad) - yTickW - c.pt(labelPad) - lineHeight(c.labelFace)/2
		y := c.plot.y + c.plot.h/2
		c.dc.Push()
		c.dc.RotateAbout(-math.Pi/2, x, y)
		c.text(c.labelFace, c.theme.text, a.yLabel, x, y, 0.5, midTextRef)
		c.dc.Pop()
	}
}

// drawTitle centers the bold title above the plot rectangle.
func (c *canvas) drawTitle(title string) {
	c.text(c.titleFace, c.theme.text, title, c.plot.x+c.plot.w/2, c.plot.y-c.pt(c.style.TitlePad), 0.5, 0)
}

// annotate writes s centered just above (x, y) in pixel space.
func (c *canvas) annotate(s string, x, y float64) {
	c.text(c.annotFace, c.theme.text, s, x, y-c.pt(annotPad), 0.5, 0)
}

// cartesian draws the frame, calls plot for the data, then overlays text.
func (c *canvas) cartesian(a axes, title string, plot func()) {
	c.layout(a, title)
	c.drawFrame(a)
	plot()
	c.drawAxisText(a)
	c.drawTitle(title)
}
