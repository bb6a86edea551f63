package capture

import (
	"image"
	"sync"
)

// Frames handed to a loop iteration come from this pool and go back to it when
// the iteration ends, so a steady-state loop reuses a handful of backing slices
// instead of allocating a fresh raster every refresh.

var framePool sync.Pool // stores *image.RGBA

// AcquireFrame returns a reusable RGBA image sized to rect. Pix length matches
// rect area * 4 and Stride is width*4. Contents are unspecified.
func AcquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// RecycleFrame returns the frame to the pool. The caller must not touch the
// frame afterwards. Nil or empty frames are ignored.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
