package chart

import (
	"image/color"
)

// Set3 is the 12-color qualitative palette used for bars and wedges.
var Set3 = []string{
	"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072",
	"#80B1D3", "#FDB462", "#B3DE69", "#FCCDE5",
	"#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F",
}

// Sample picks n colors spread evenly across palette, the way a listed
// colormap is sampled at n evenly spaced points in [0, 1]. The result depends
// only on n and the palette, so identical requests get identical colors.
func Sample(palette []color.RGBA, n int) []color.RGBA {
	if n <= 0 || len(palette) == 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	size := len(palette)
	for i := range out {
		var x float64
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		idx := int(x * float64(size))
		if idx >= size {
			idx = size - 1
		}
		out[i] = palette[idx]
	}
	return out
}

// withAlpha returns c with opacity a in [0, 1] as a non-premultiplied color.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
