package images

import (
	"image"
	"image/color"
	"testing"
)

func TestExtractROI_CentersAndClamps(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	roi, rect, err := ExtractROI(frame, 50, 50, 40)
	if err != nil || roi == nil {
		t.Fatalf("expected ROI, got err=%v", err)
	}
	if rect.Dx() != 40 || rect.Dy() != 40 {
		t.Fatalf("expected 40x40, got %dx%d", rect.Dx(), rect.Dy())
	}
	if rect.Min.X != 30 || rect.Min.Y != 30 {
		t.Fatalf("unexpected rect origin %v", rect.Min)
	}
	if roi.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Fatalf("roi image not rebased: %v", roi.Bounds())
	}
}

func TestExtractROI_ClampsNearEdge(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 20, 20))
	roi, rect, err := ExtractROI(frame, 2, 2, 10)
	if err != nil || roi == nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect.Min.X != 0 || rect.Min.Y != 0 {
		t.Fatalf("expected clamp to 0,0 got %v", rect.Min)
	}
	if rect.Max.X > 20 || rect.Max.Y > 20 {
		t.Fatalf("rect exceeds frame bounds: %v", rect)
	}
}

func TestExtractROI_OutsideFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 30, 30))
	_, rect, err := ExtractROI(frame, 100, 100, 10)
	if err != nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect.Empty() || !rect.In(frame.Bounds()) {
		t.Fatalf("rect not clamped inside frame: %v", rect)
	}
}

func TestExtractROI_MinSize(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	roi, rect, _ := ExtractROI(frame, 0, 0, 0)
	if roi == nil {
		t.Fatalf("nil roi")
	}
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1 got %dx%d", rect.Dx(), rect.Dy())
	}
}

func TestExtractROI_CopiesPixels(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	frame.SetRGBA(5, 5, color.RGBA{R: 200, A: 255})
	roi, _, _ := ExtractROI(frame, 5, 5, 3)
	frame.SetRGBA(5, 5, color.RGBA{})
	if got := roi.NRGBAAt(1, 1); got.R != 200 {
		t.Fatalf("roi should hold a copy, got %+v", got)
	}
}

func TestCircleROI(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	_, rect, err := CircleROI(frame, 160, 120, 20, 4)
	if err != nil {
		t.Fatalf("roi error: %v", err)
	}
	if rect != image.Rect(136, 96, 184, 144) {
		t.Fatalf("unexpected rect %v", rect)
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 320, 240))
	if got := ScaleToFit(src, 400, 300); got != image.Image(src) {
		t.Fatalf("fitting image should be returned as is")
	}
	got := ScaleToFit(src, 160, 160)
	if got.Bounds().Dx() != 160 || got.Bounds().Dy() != 120 {
		t.Fatalf("unexpected scaled size %v", got.Bounds())
	}
	if ScaleToFit(nil, 1, 1) != nil {
		t.Fatalf("nil in, nil out")
	}
}

func TestZoom(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	if got := Zoom(src, 3).Bounds(); got.Dx() != 12 || got.Dy() != 9 {
		t.Fatalf("unexpected zoom size %v", got)
	}
	if Zoom(src, 1) != image.Image(src) {
		t.Fatalf("factor 1 should return the source")
	}
}

func TestEncodePNG(t *testing.T) {
	if b := EncodePNG(image.NewRGBA(image.Rect(0, 0, 2, 2))); len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Fatalf("not a png: %v", b)
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
}
