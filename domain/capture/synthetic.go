package capture

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// SyntheticDevice renders a dark disc orbiting the frame center on a light
// background. It needs no hardware and is used for demos and tests.
type SyntheticDevice struct {
	Radius    float64 // disc radius in pixels
	Orbit     float64 // orbit radius in pixels
	Step      float64 // radians advanced per frame
	MaxFrames int     // 0 = unlimited; afterwards Read returns io.EOF

	frame      int
	rasterizer *vector.Rasterizer
	background *image.Uniform
	foreground *image.Uniform
}

// NewSyntheticDevice returns a device with a 30px disc on a 60px orbit.
func NewSyntheticDevice() *SyntheticDevice {
	return &SyntheticDevice{Radius: 30, Orbit: 60, Step: 0.08}
}

// Open prepares the rasterizer.
func (d *SyntheticDevice) Open() error {
	d.frame = 0
	d.rasterizer = vector.NewRasterizer(FrameWidth, FrameHeight)
	d.background = image.NewUniform(color.RGBA{R: 220, G: 220, B: 210, A: 255})
	d.foreground = image.NewUniform(color.RGBA{R: 30, G: 30, B: 40, A: 255})
	return nil
}

// Position returns the disc center for frame index i.
func (d *SyntheticDevice) Position(i int, bounds image.Rectangle) (x, y float64) {
	cx := float64(bounds.Min.X) + float64(bounds.Dx())/2
	cy := float64(bounds.Min.Y) + float64(bounds.Dy())/2
	a := float64(i) * d.Step
	return cx + d.Orbit*math.Cos(a), cy + d.Orbit*math.Sin(a)
}

// Read draws the next frame into dst.
func (d *SyntheticDevice) Read(dst *image.RGBA) error {
	if d.rasterizer == nil {
		if err := d.Open(); err != nil {
			return err
		}
	}
	if d.MaxFrames > 0 && d.frame >= d.MaxFrames {
		return io.EOF
	}
	b := dst.Bounds()
	draw.Draw(dst, b, d.background, image.Point{}, draw.Src)

	x, y := d.Position(d.frame, b)
	d.frame++

	z := d.rasterizer
	z.Reset(b.Dx(), b.Dy())
	const segments = 64
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		px := float32(x - float64(b.Min.X) + d.Radius*math.Cos(a))
		py := float32(y - float64(b.Min.Y) + d.Radius*math.Sin(a))
		if i == 0 {
			z.MoveTo(px, py)
			continue
		}
		z.LineTo(px, py)
	}
	z.ClosePath()
	z.Draw(dst, b, d.foreground, image.Point{})
	return nil
}

// Close releases nothing.
func (d *SyntheticDevice) Close() error { return nil }
