package vision

import "time"

const (
	// TrailWindow is how long a recorded center stays visible.
	TrailWindow = 500 * time.Millisecond
	// TrailDotRadius is the radius of each rendered trail dot in pixels.
	TrailDotRadius = 3.0
)

// TrailPoint is a recorded circle center.
type TrailPoint struct {
	X, Y float64
	At   time.Time
}

// Trail keeps recent circle centers in chronological (insertion) order. The
// zero value is ready to use. Not safe for concurrent use; the loop owns it.
type Trail struct {
	points []TrailPoint
}

// Record appends the center of sel stamped with now. A nil sel is a no-op.
func (t *Trail) Record(sel *Circle, now time.Time) {
	if t == nil || sel == nil {
		return
	}
	t.points = append(t.points, TrailPoint{X: sel.X, Y: sel.Y, At: now})
}

// Prune drops every point older than TrailWindow relative to now. Order of the
// surviving points is preserved.
func (t *Trail) Prune(now time.Time) {
	if t == nil {
		return
	}
	kept := t.points[:0]
	for _, p := range t.points {
		if now.Sub(p.At) <= TrailWindow {
			kept = append(kept, p)
		}
	}
	// release references held past the new length
	for i := len(kept); i < len(t.points); i++ {
		t.points[i] = TrailPoint{}
	}
	t.points = kept
}

// Visit calls fn for each point with a positive opacity, newest first.
func (t *Trail) Visit(now time.Time, fn func(p TrailPoint, alpha float64)) {
	if t == nil || fn == nil {
		return
	}
	for i := len(t.points) - 1; i >= 0; i-- {
		p := t.points[i]
		age := now.Sub(p.At)
		if age > TrailWindow {
			continue
		}
		alpha := TrailAlpha(age)
		if alpha <= 0 {
			continue
		}
		fn(p, alpha)
	}
}

// Points returns a copy of the recorded points, oldest first.
func (t *Trail) Points() []TrailPoint {
	if t == nil {
		return nil
	}
	out := make([]TrailPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Len reports the number of recorded points.
func (t *Trail) Len() int {
	if t == nil {
		return 0
	}
	return len(t.points)
}

// Reset clears the trail.
func (t *Trail) Reset() {
	if t == nil {
		return
	}
	t.points = t.points[:0]
}

// TrailAlpha maps a point age to its opacity: 1 at age 0, falling linearly to
// 0 at TrailWindow. The result is clamped to [0, 1].
func TrailAlpha(age time.Duration) float64 {
	a := 1 - float64(age)/float64(TrailWindow)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
