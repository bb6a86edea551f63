package overlay

import (
	"image"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/soocke/circle-shot-go/domain/vision"
)

// Layout of the annotations.
const (
	CircleLineWidth = 2.0
	CrosshairHalf   = 10.0
	LabelFontSize   = 16.0
	LabelX          = 10.0
	LabelY          = 30.0
)

// Renderer paints one annotated frame. Construct with NewRenderer; a nil
// Renderer paints with the default colours.
type Renderer struct {
	circle colorful.Color
	trail  colorful.Color
	label  colorful.Color
}

// NewRenderer returns a renderer with red circles, a yellow trail and a blue
// label.
func NewRenderer() *Renderer {
	return &Renderer{circle: Red, trail: Yellow, label: Blue}
}

func (r *Renderer) colors() (circle, trail, label colorful.Color) {
	if r == nil {
		return Red, Yellow, Blue
	}
	return r.circle, r.trail, r.label
}

// RenderFrame draws, back to front: the frame, the selected circle and its
// crosshair, the trail (newest first, faded by age) and the rate label.
// trail may be nil. The surface is cleared to frame's bounds first.
func (r *Renderer) RenderFrame(s Surface, frame image.Image, sel *vision.Circle, trail *vision.Trail, rate vision.RateSample, now time.Time) {
	if s == nil {
		return
	}
	circleColor, trailColor, labelColor := r.colors()

	var bounds image.Rectangle
	if frame != nil {
		bounds = frame.Bounds()
	}
	s.Clear(bounds)
	if frame != nil {
		s.DrawImage(frame, bounds)
	}

	if sel != nil {
		s.SetStrokeColor(Opaque(circleColor))
		s.SetLineWidth(CircleLineWidth)
		s.StrokeArc(sel.X, sel.Y, sel.Radius, 0, 2*math.Pi)
		s.StrokeLine(sel.X-CrosshairHalf, sel.Y, sel.X+CrosshairHalf, sel.Y)
		s.StrokeLine(sel.X, sel.Y-CrosshairHalf, sel.X, sel.Y+CrosshairHalf)
	}

	if trail != nil {
		trail.Visit(now, func(p vision.TrailPoint, alpha float64) {
			s.SetFillColor(WithAlpha(trailColor, alpha))
			s.FillArc(p.X, p.Y, vision.TrailDotRadius, 0, 2*math.Pi)
		})
	}

	s.SetFontSize(LabelFontSize)
	s.SetFillColor(Opaque(labelColor))
	s.FillText(rate.Label(), LabelX, LabelY)
}
