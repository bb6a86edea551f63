package detect

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/pkg/errors"

	"github.com/soocke/circle-shot-go/domain/vision"
)

// Fixed Hough-gradient parameters. They are not runtime configurable.
const (
	DP                   = 1.0   // inverse ratio of accumulator resolution to image resolution
	MinDist              = 20.0  // minimum distance between detected centers (px)
	EdgeThreshold        = 100.0 // upper Canny threshold; the lower one is half of it
	AccumulatorThreshold = 50.0  // votes required for a center
	MinRadius            = 10
	MaxRadius            = 50
)

// ErrNilRaster is returned when a detector is handed no image.
var ErrNilRaster = errors.New("detect: nil raster")

// Params configures a circle detector.
type Params struct {
	DP                   float64
	MinDist              float64
	EdgeThreshold        float64
	AccumulatorThreshold float64
	MinRadius            int
	MaxRadius            int
}

// DefaultParams returns the fixed detection parameters.
func DefaultParams() Params {
	return Params{
		DP:                   DP,
		MinDist:              MinDist,
		EdgeThreshold:        EdgeThreshold,
		AccumulatorThreshold: AccumulatorThreshold,
		MinRadius:            MinRadius,
		MaxRadius:            MaxRadius,
	}
}

// Detector finds circles in a grayscale raster. Result order carries no meaning.
type Detector interface {
	Detect(gray *image.Gray) ([]vision.Circle, error)
}

// Grayscale converts a colour frame to a freshly allocated grayscale raster.
func Grayscale(img image.Image) *image.Gray {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	if b.Empty() {
		return gray
	}
	// bild returns RGBA with equal channels; keep R.
	rgba := effect.Grayscale(img)
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return gray
}
