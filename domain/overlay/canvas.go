package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a Surface backed by an RGBA raster. Shapes are anti-aliased and
// composited with draw.Over. Not safe for concurrent use.
type Canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer

	stroke    color.Color
	fill      color.Color
	lineWidth float64
	fontSize  float64

	font    *opentype.Font
	faces   map[float64]font.Face
	newFace func(size float64) (font.Face, error)
}

var _ Surface = (*Canvas)(nil)

// NewCanvas allocates a w×h canvas using the bundled Go Regular font. The
// LabelFontSize face is built here; it is also the fallback when another size
// cannot be built later.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("overlay: invalid canvas size %dx%d", w, h)
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "overlay: parse font")
	}
	c := &Canvas{
		dst:       image.NewRGBA(image.Rect(0, 0, w, h)),
		z:         vector.NewRasterizer(w, h),
		stroke:    color.Black,
		fill:      color.Black,
		lineWidth: 1,
		fontSize:  LabelFontSize,
		font:      f,
		faces:     make(map[float64]font.Face),
	}
	c.newFace = func(size float64) (font.Face, error) {
		return opentype.NewFace(c.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
	if _, err := c.face(LabelFontSize); err != nil {
		return nil, err
	}
	return c, nil
}

// Image returns the backing raster. It is overwritten by subsequent draws.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.dst.Rect }

func (c *Canvas) SetStrokeColor(col color.Color) { c.stroke = col }
func (c *Canvas) SetFillColor(col color.Color)   { c.fill = col }

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) SetFontSize(px float64) {
	if px > 0 {
		c.fontSize = px
	}
}

// Clear resets r to transparent.
func (c *Canvas) Clear(r image.Rectangle) {
	draw.Draw(c.dst, r.Intersect(c.dst.Rect), image.Transparent, image.Point{}, draw.Src)
}

// DrawImage paints img into r, scaling bilinearly when the sizes differ.
func (c *Canvas) DrawImage(img image.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	sb := img.Bounds()
	if sb.Size() == r.Size() {
		draw.Draw(c.dst, r, img, sb.Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(c.dst, r, img, sb, xdraw.Over, nil)
}

// StrokeArc outlines the arc with the current line width, centred on radius.
func (c *Canvas) StrokeArc(cx, cy, radius, start, end float64) {
	if radius <= 0 {
		return
	}
	half := c.lineWidth / 2
	outer := radius + half
	inner := math.Max(radius-half, 0)
	n := arcSegments(outer, end-start)

	c.z.Reset(c.dst.Rect.Dx(), c.dst.Rect.Dy())
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		x, y := cx+outer*math.Cos(a), cy+outer*math.Sin(a)
		if i == 0 {
			c.z.MoveTo(float32(x), float32(y))
			continue
		}
		c.z.LineTo(float32(x), float32(y))
	}
	for i := n; i >= 0; i-- {
		a := start + (end-start)*float64(i)/float64(n)
		c.z.LineTo(float32(cx+inner*math.Cos(a)), float32(cy+inner*math.Sin(a)))
	}
	c.z.ClosePath()
	c.paint(c.stroke)
}

// StrokeLine draws a segment with butt caps.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	half := c.lineWidth / 2
	nx, ny := -dy/l*half, dx/l*half

	c.z.Reset(c.dst.Rect.Dx(), c.dst.Rect.Dy())
	c.z.MoveTo(float32(x0+nx), float32(y0+ny))
	c.z.LineTo(float32(x1+nx), float32(y1+ny))
	c.z.LineTo(float32(x1-nx), float32(y1-ny))
	c.z.LineTo(float32(x0-nx), float32(y0-ny))
	c.z.ClosePath()
	c.paint(c.stroke)
}

// FillArc fills the sector between start and end; a full turn is a disc.
func (c *Canvas) FillArc(cx, cy, radius, start, end float64) {
	if radius <= 0 {
		return
	}
	sweep := end - start
	n := arcSegments(radius, sweep)
	full := math.Abs(sweep) >= 2*math.Pi

	c.z.Reset(c.dst.Rect.Dx(), c.dst.Rect.Dy())
	if !full {
		c.z.MoveTo(float32(cx), float32(cy))
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		x, y := float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a))
		if full && i == 0 {
			c.z.MoveTo(x, y)
			continue
		}
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.paint(c.fill)
}

// FillText draws text with its baseline starting at (x, y).
func (c *Canvas) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	face, err := c.face(c.fontSize)
	if err != nil {
		face = c.faces[LabelFontSize]
	}
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(c.fill),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

func (c *Canvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := c.newFace(size)
	if err != nil {
		return nil, errors.Wrap(err, "overlay: new face")
	}
	c.faces[size] = f
	return f, nil
}

func (c *Canvas) paint(col color.Color) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.dst, c.dst.Rect, image.NewUniform(col), image.Point{})
}

func arcSegments(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * radius / 2))
	if n < 16 {
		n = 16
	}
	if n > 256 {
		n = 256
	}
	return n
}
