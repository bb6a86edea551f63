package images

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ExtractROI copies a square of side size centred at (cx, cy) out of frame.
// The rectangle is clamped to the frame bounds and is at least 1x1. The
// returned image is independent of frame and starts at the origin.
func ExtractROI(frame image.Image, cx, cy, size int) (*image.NRGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	if b.Empty() {
		return nil, image.Rectangle{}, errors.New("empty frame")
	}
	if size < 1 {
		size = 1
	}
	half := size / 2
	x0 := max(cx-half, b.Min.X)
	y0 := max(cy-half, b.Min.Y)
	x0 = min(x0, b.Max.X-1)
	y0 = min(y0, b.Max.Y-1)
	x1 := min(x0+size, b.Max.X)
	y1 := min(y0+size, b.Max.Y)
	roi := image.Rect(x0, y0, x1, y1)
	return imaging.Crop(frame, roi), roi, nil
}

// CircleROI extracts the square enclosing a circle of radius r at (cx, cy)
// with pad pixels of margin on each side.
func CircleROI(frame image.Image, cx, cy, r float64, pad int) (*image.NRGBA, image.Rectangle, error) {
	size := int(2*r+0.5) + 2*pad
	return ExtractROI(frame, int(cx+0.5), int(cy+0.5), size)
}
