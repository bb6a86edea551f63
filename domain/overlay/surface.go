// Package overlay composes the annotated frame: source image, selected
// circle with crosshair, fading trail and frame-rate label.
package overlay

import (
	"image"
	"image/color"
)

// Surface is the 2D drawing target the renderer paints on. Angles are in
// radians, coordinates in frame pixels, text is placed on its baseline.
type Surface interface {
	Clear(r image.Rectangle)
	DrawImage(img image.Image, r image.Rectangle)
	StrokeArc(cx, cy, radius, start, end float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillArc(cx, cy, radius, start, end float64)
	FillText(text string, x, y float64)
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	SetFontSize(px float64)
}
