package detect

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"github.com/soocke/circle-shot-go/domain/vision"
)

// createDiscImage creates a white gray raster with filled black discs. A pixel
// is black when its center lies inside a disc.
func createDiscImage(w, h int, discs ...vision.Circle) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255)
			for _, d := range discs {
				dx, dy := float64(x)+0.5-d.X, float64(y)+0.5-d.Y
				if dx*dx+dy*dy <= d.Radius*d.Radius {
					v = 0
				}
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// createSmoothDisc rasterises an anti-aliased dark disc on white. Coordinates
// are continuous: pixel (i, j) covers [i, i+1) x [j, j+1).
func createSmoothDisc(w, h int, d vision.Circle) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	z := vector.NewRasterizer(w, h)
	const segments = 256
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := float32(d.X + d.Radius*math.Cos(a))
		y := float32(d.Y + d.Radius*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.DrawOp = draw.Over
	z.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img
}

func near(c, want vision.Circle, tol float64) bool {
	return math.Abs(c.X-want.X) <= tol && math.Abs(c.Y-want.Y) <= tol && math.Abs(c.Radius-want.Radius) <= tol
}

func TestHoughDetector_SingleDisc(t *testing.T) {
	want := vision.Circle{X: 160, Y: 120, Radius: 30}
	img := createDiscImage(320, 240, want)

	got, err := NewHoughDetector(DefaultParams()).Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	best, ok := vision.SelectLargest(got)
	if !ok {
		t.Fatalf("expected a circle, got none")
	}
	if !near(best, want, 3) {
		t.Fatalf("largest circle %+v not near %+v (all: %+v)", best, want, got)
	}
}

func TestHoughDetector_LargestOfTwo(t *testing.T) {
	small := vision.Circle{X: 80, Y: 120, Radius: 15}
	large := vision.Circle{X: 220, Y: 120, Radius: 40}
	img := createDiscImage(320, 240, small, large)

	got, err := NewHoughDetector(DefaultParams()).Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	best, ok := vision.SelectLargest(got)
	if !ok || !near(best, large, 3) {
		t.Fatalf("expected large disc near %+v, got %+v from %+v", large, best, got)
	}
}

func TestHoughDetector_SubpixelCenter(t *testing.T) {
	tests := []vision.Circle{
		{X: 160, Y: 120, Radius: 12},
		{X: 160, Y: 120, Radius: 30},
		{X: 100.5, Y: 140, Radius: 20},
	}
	for _, want := range tests {
		got, err := NewHoughDetector(DefaultParams()).Detect(createSmoothDisc(320, 240, want))
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		best, ok := vision.SelectLargest(got)
		if !ok {
			t.Fatalf("no circle found for %+v", want)
		}
		if math.Abs(best.X-want.X) > 0.75 || math.Abs(best.Y-want.Y) > 0.75 {
			t.Errorf("center (%.2f,%.2f) too far from (%.2f,%.2f)", best.X, best.Y, want.X, want.Y)
		}
		if math.Abs(best.Radius-want.Radius) > 1 {
			t.Errorf("radius %.2f, want %.2f", best.Radius, want.Radius)
		}
	}
}

func TestSubpixelEdge_TiedStep(t *testing.T) {
	// A hard step between columns 4 and 5 gives equal magnitude at both.
	w, h := 10, 3
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 5; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	dx, dy := sobel(img, w, h)
	e := subpixelEdge(magnitude(dx, dy), dx, dy, w, 4, 1)
	if e.x != 4.5 || e.y != 1 {
		t.Fatalf("edge at (%v,%v), want (4.5,1)", e.x, e.y)
	}
}

func TestVoteCentroid(t *testing.T) {
	w := 4
	v := votes{
		count: make([]int, 16),
		sumX:  make([]float64, 16),
		sumY:  make([]float64, 16),
	}
	// Two votes near (1,1) and two near (2,1).
	v.count[5], v.sumX[5], v.sumY[5] = 2, 2*1.25, 2*1.0
	v.count[6], v.sumX[6], v.sumY[6] = 2, 2*1.75, 2*1.0
	x, y := voteCentroid(v, w, 1, 1)
	if x != 1.5 || y != 1 {
		t.Fatalf("centroid (%v,%v), want (1.5,1)", x, y)
	}
	empty := votes{count: make([]int, 16), sumX: make([]float64, 16), sumY: make([]float64, 16)}
	if x, y := voteCentroid(empty, w, 2, 2); x != 2 || y != 2 {
		t.Fatalf("empty neighbourhood should keep the cell, got (%v,%v)", x, y)
	}
}

func TestHoughDetector_BlankImage(t *testing.T) {
	img := createDiscImage(320, 240)
	got, err := NewHoughDetector(DefaultParams()).Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no circles on blank image, got %+v", got)
	}
}

func TestHoughDetector_Nil(t *testing.T) {
	if _, err := NewHoughDetector(DefaultParams()).Detect(nil); err != ErrNilRaster {
		t.Fatalf("expected ErrNilRaster, got %v", err)
	}
}

func TestHoughDetector_TinyImage(t *testing.T) {
	got, err := NewHoughDetector(DefaultParams()).Detect(image.NewGray(image.Rect(0, 0, 2, 2)))
	if err != nil || got != nil {
		t.Fatalf("expected nil result, got %+v err=%v", got, err)
	}
}

func TestCanny_FindsStepEdge(t *testing.T) {
	w, h := 20, 10
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 10; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	dx, dy := sobel(img, w, h)
	edges := canny(dx, dy, w, h, EdgeThreshold/2, EdgeThreshold)
	for y := 1; y < h-1; y++ {
		count := 0
		for x := 0; x < w; x++ {
			if edges[y*w+x] {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("row %d: expected a single thin edge pixel, got %d", y, count)
		}
	}
}

func TestGrayscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 255, 255, 255, 255
	}
	g := Grayscale(src)
	if g == nil || g.Bounds() != src.Bounds() {
		t.Fatalf("unexpected gray %v", g)
	}
	if v := g.GrayAt(1, 1).Y; v < 250 {
		t.Fatalf("white pixel converted to %d", v)
	}

	// Green weighs most, blue least.
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	src.SetRGBA(2, 0, color.RGBA{B: 255, A: 255})
	src.SetRGBA(3, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	g = Grayscale(src)
	ranges := []struct {
		x      int
		lo, hi uint8
	}{
		{0, 75, 78},
		{1, 149, 154},
		{2, 25, 30},
		{3, 99, 101},
	}
	for _, r := range ranges {
		if v := g.GrayAt(r.x, 0).Y; v < r.lo || v > r.hi {
			t.Errorf("pixel %d gray %d, want %d..%d", r.x, v, r.lo, r.hi)
		}
	}

	off := image.NewRGBA(image.Rect(10, 20, 13, 22))
	off.SetRGBA(12, 21, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	g = Grayscale(off)
	if g.Bounds() != off.Bounds() || g.GrayAt(12, 21).Y < 250 || g.GrayAt(10, 20).Y != 0 {
		t.Fatalf("offset bounds not preserved: %v", g.Bounds())
	}
	if Grayscale(nil) != nil {
		t.Fatalf("nil input should return nil")
	}
}
