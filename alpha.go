package eriplots

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Alpha returns the opaque color that c at the given opacity produces over
// a white background. It is the way to get a lighter tint of a palette
// color without relying on transparency support in the output format.
func Alpha(c color.Color, alpha float64) color.NRGBA {
	return AlphaOver(c, alpha, color.White)
}

// AlphaOver composites c at the given opacity over bg:
// out = alpha*c + (1-alpha)*bg, per channel. Alpha is clamped to [0, 1]
// and the opacity of c and bg themselves is ignored.
func AlphaOver(c color.Color, alpha float64, bg color.Color) color.NRGBA {
	fg := opaque(c)
	back := opaque(bg)
	r, g, b := back.BlendRgb(fg, clamp01(alpha)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// opaque drops the alpha channel of c.
func opaque(c color.Color) colorful.Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return colorful.Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
