package overlay

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Overlay colours.
var (
	Red    = colorful.Color{R: 1, G: 0, B: 0}
	Yellow = colorful.Color{R: 1, G: 1, B: 0}
	Blue   = colorful.Color{R: 0, G: 0, B: 1}
)

// WithAlpha returns c at the given opacity, clamped to [0,1].
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

// Opaque is WithAlpha(c, 1).
func Opaque(c colorful.Color) color.NRGBA { return WithAlpha(c, 1) }
