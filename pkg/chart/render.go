package chart

import (
	"context"
	"encoding/base64"
	"image"
	"time"

	"github.com/matzehuels/chartkit/pkg/observability"
)

// Renderer draws chart requests. It holds only immutable configuration and
// is safe for concurrent use.
type Renderer struct {
	style   Style
	theme   theme
	lenient bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(r *Renderer) { r.style = s }
}

// WithLenient renders unknown kinds as an empty styled canvas instead of
// failing with UNSUPPORTED_CHART_KIND.
func WithLenient() Option {
	return func(r *Renderer) { r.lenient = true }
}

// NewRenderer returns a renderer using [DefaultStyle] unless overridden.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.style.Validate(); err != nil {
		return nil, err
	}
	t, err := r.style.theme()
	if err != nil {
		return nil, err
	}
	r.theme = t
	return r, nil
}

// Render draws req and returns the PNG as standard base64 text.
func (r *Renderer) Render(ctx context.Context, req Request) (string, error) {
	data, err := r.RenderPNG(ctx, req)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// RenderPNG draws req and returns the encoded PNG.
func (r *Renderer) RenderPNG(ctx context.Context, req Request) (data []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := req.KindName()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, kind, req.Data.Len())
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, kind, len(data), time.Since(start), err)
	}()

	img, err := r.Image(req)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// Image draws req and returns the cropped raster.
func (r *Renderer) Image(req Request) (image.Image, error) {
	c, err := r.paint(req)
	if err != nil {
		return nil, err
	}
	defer c.close()

	f := r.theme.figure
	pad := r.style.pixels(r.style.Pad)
	return cropToContent(c.dc.Image().(*image.RGBA), [4]uint8{f.R, f.G, f.B, f.A}, pad), nil
}

// paint validates req and draws it onto a fresh canvas. The caller must
// close the canvas.
func (r *Renderer) paint(req Request) (*canvas, error) {
	kind, err := ParseKind(req.KindName())
	if err != nil && !r.lenient {
		return nil, err
	}
	if err == nil {
		if err := req.Data.validate(kind); err != nil {
			return nil, err
		}
	}

	c, err := newCanvas(r.style, r.theme)
	if err != nil {
		return nil, err
	}

	switch kind {
	case Bar:
		c.drawBar(req)
	case Line:
		c.drawLine(req)
	case Pie:
		c.drawPie(req)
	case Area:
		c.drawArea(req)
	default:
		c.drawEmpty(req)
	}
	return c, nil
}

// drawEmpty renders the bare styled axes with the title, which is what an
// unknown kind produces in lenient mode. Axis labels are never applied.
func (c *canvas) drawEmpty(req Request) {
	unit := axisRange{0, 1}
	a := axes{
		x:         unit,
		y:         unit,
		xTicks:    valueTicks(unit),
		yTicks:    valueTicks(unit),
		gridAlpha: emptySpec.gridAlpha,
	}
	c.cartesian(a, req.Title, func() {})
}

// Render draws req with a default renderer and returns base64 PNG text.
func Render(ctx context.Context, req Request) (string, error) {
	r, err := NewRenderer()
	if err != nil {
		return "", err
	}
	return r.Render(ctx, req)
}
