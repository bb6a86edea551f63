package capture

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/vova616/screenshot"
)

// ScreenDevice captures a screen region and scales it to the working
// resolution. An empty region captures the whole primary screen.
type ScreenDevice struct {
	region image.Rectangle
}

// NewScreenDevice returns a device capturing region (empty = full screen).
func NewScreenDevice(region image.Rectangle) *ScreenDevice {
	return &ScreenDevice{region: region}
}

// Open resolves the capture region against the screen bounds.
func (d *ScreenDevice) Open() error {
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return errors.Wrap(err, "screen bounds")
	}
	if d.region.Empty() {
		d.region = screen
		return nil
	}
	r := d.region.Intersect(screen)
	if r.Empty() {
		return errors.Errorf("capture region %v outside screen %v", d.region, screen)
	}
	d.region = r
	return nil
}

// Read grabs the region and writes it into dst, resized to dst's bounds.
func (d *ScreenDevice) Read(dst *image.RGBA) error {
	img, err := screenshot.CaptureRect(d.region)
	if err != nil {
		return errors.Wrap(err, "capture rect")
	}
	b := dst.Bounds()
	if img.Bounds().Dx() == b.Dx() && img.Bounds().Dy() == b.Dy() {
		draw.Draw(dst, b, img, img.Bounds().Min, draw.Src)
		return nil
	}
	scaled := imaging.Resize(img, b.Dx(), b.Dy(), imaging.Linear)
	draw.Draw(dst, b, scaled, scaled.Bounds().Min, draw.Src)
	return nil
}

// Close is a no-op; screen capture holds no resources between reads.
func (d *ScreenDevice) Close() error { return nil }
