package chart

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Style controls canvas geometry, colors and font sizes. Sizes are in inches
// (canvas, padding) or points (fonts, title padding); colors are hex strings.
//
// A TOML style file may set any subset of fields; the rest keep their
// defaults:
//
//	dpi = 300
//	series_color = "#C0392B"
//	palette = ["#1B9E77", "#D95F02", "#7570B3"]
type Style struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	DPI    float64 `toml:"dpi"`
	Pad    float64 `toml:"pad"`

	FigureColor     string   `toml:"figure_color"`
	BackgroundColor string   `toml:"background_color"`
	GridColor       string   `toml:"grid_color"`
	TextColor       string   `toml:"text_color"`
	BarEdgeColor    string   `toml:"bar_edge_color"`
	WedgeEdgeColor  string   `toml:"wedge_edge_color"`
	SeriesColor     string   `toml:"series_color"`
	Palette         []string `toml:"palette"`

	TitleSize      float64 `toml:"title_size"`
	TitlePad       float64 `toml:"title_pad"`
	LabelSize      float64 `toml:"label_size"`
	TickSize       float64 `toml:"tick_size"`
	AnnotationSize float64 `toml:"annotation_size"`
	PieLabelSize   float64 `toml:"pie_label_size"`
}

// DefaultStyle returns the darkgrid style: 12x6 inches at 150 DPI.
func DefaultStyle() Style {
	return Style{
		Width:  12,
		Height: 6,
		DPI:    150,
		Pad:    0.1,

		FigureColor:     "#FFFFFF",
		BackgroundColor: "#EAEAF2",
		GridColor:       "#FFFFFF",
		TextColor:       "#262626",
		BarEdgeColor:    "#000000",
		WedgeEdgeColor:  "#FFFFFF",
		SeriesColor:     "#2E86AB",
		Palette:         append([]string(nil), Set3...),

		TitleSize:      16,
		TitlePad:       20,
		LabelSize:      11,
		TickSize:       10,
		AnnotationSize: 10,
		PieLabelSize:   11,
	}
}

// LoadStyle reads a TOML style file on top of [DefaultStyle].
func LoadStyle(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open style %s", path)
	}
	defer f.Close()
	return DecodeStyle(f)
}

// DecodeStyle decodes TOML from r on top of [DefaultStyle] and validates the
// result. Unknown keys are rejected.
func DecodeStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode style")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Style{}, errors.New(errors.ErrCodeInvalidConfig, "unknown style keys: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate checks sizes and colors.
func (s Style) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"width", s.Width}, {"height", s.Height}, {"dpi", s.DPI},
		{"title_size", s.TitleSize}, {"label_size", s.LabelSize}, {"tick_size", s.TickSize},
		{"annotation_size", s.AnnotationSize}, {"pie_label_size", s.PieLabelSize},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", p.name, p.v)
		}
	}
	if s.Pad < 0 || s.TitlePad < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "pad and title_pad must not be negative")
	}
	const maxPixels = 1 << 26
	if s.Width*s.DPI*s.Height*s.DPI > maxPixels {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas of %gx%g inches at %g DPI is too large", s.Width, s.Height, s.DPI)
	}
	if len(s.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "palette must not be empty")
	}
	_, err := s.theme()
	return err
}

// theme holds a style's colors, resolved once per renderer.
type theme struct {
	figure, background, grid, text color.RGBA
	barEdge, wedgeEdge, series     color.RGBA
	palette                        []color.RGBA
}

func (s Style) theme() (theme, error) {
	var t theme
	named := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"figure_color", s.FigureColor, &t.figure},
		{"background_color", s.BackgroundColor, &t.background},
		{"grid_color", s.GridColor, &t.grid},
		{"text_color", s.TextColor, &t.text},
		{"bar_edge_color", s.BarEdgeColor, &t.barEdge},
		{"wedge_edge_color", s.WedgeEdgeColor, &t.wedgeEdge},
		{"series_color", s.SeriesColor, &t.series},
	}
	for _, n := range named {
		c, err := parseColor(n.hex)
		if err != nil {
			return theme{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", n.name)
		}
		*n.dst = c
	}
	t.palette = make([]color.RGBA, len(s.Palette))
	for i, hex := range s.Palette {
		c, err := parseColor(hex)
		if err != nil {
			return theme{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette[%d]", i)
		}
		t.palette[i] = c
	}
	return t, nil
}

// parseColor parses "#RRGGBB" or "#RGB" into an opaque color.
func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// pixels converts inches to whole pixels at the style's resolution.
func (s Style) pixels(inches float64) int {
	return int(inches*s.DPI + 0.5)
}

// scale is the number of pixels per typographic point.
func (s Style) scale() float64 {
	return s.DPI / 72
}
