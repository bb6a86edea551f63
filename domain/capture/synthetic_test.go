package capture

import (
	"image"
	"io"
	"testing"
)

func TestSyntheticDevice_DrawsDisc(t *testing.T) {
	d := NewSyntheticDevice()
	if err := d.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	dst := image.NewRGBA(FrameBounds)
	if err := d.Read(dst); err != nil {
		t.Fatalf("read: %v", err)
	}
	x, y := d.Position(0, FrameBounds)
	c := dst.RGBAAt(int(x), int(y))
	if c.R > 100 {
		t.Fatalf("disc center should be dark, got %+v", c)
	}
	if bg := dst.RGBAAt(2, 2); bg.R < 200 {
		t.Fatalf("background should be light, got %+v", bg)
	}
}

func TestSyntheticDevice_Moves(t *testing.T) {
	d := NewSyntheticDevice()
	x0, y0 := d.Position(0, FrameBounds)
	x1, y1 := d.Position(10, FrameBounds)
	if x0 == x1 && y0 == y1 {
		t.Fatalf("disc did not move")
	}
}

func TestSyntheticDevice_MaxFrames(t *testing.T) {
	d := NewSyntheticDevice()
	d.MaxFrames = 2
	_ = d.Open()
	dst := image.NewRGBA(FrameBounds)
	for i := 0; i < 2; i++ {
		if err := d.Read(dst); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	if err := d.Read(dst); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
