package model

import (
	"image"
	"time"

	"github.com/soocke/circle-shot-go/domain/vision"
)

// DetectionModel accumulates per-frame detection outcomes for display. The
// zero value is usable. Updates occur on the UI thread.
type DetectionModel struct {
	frames   uint64
	hits     uint64
	last     vision.Circle
	lastAt   time.Time
	hasLast  bool
	roi      image.Rectangle
	rateText string
}

func NewDetectionModel() *DetectionModel { return &DetectionModel{} }

// Observe records one processed frame and its selection (nil when no circle
// was found).
func (m *DetectionModel) Observe(sel *vision.Circle, now time.Time) {
	if m == nil {
		return
	}
	m.frames++
	if sel == nil {
		return
	}
	m.hits++
	m.last = *sel
	m.lastAt = now
	m.hasLast = true
}

// SetROI stores the zoom rectangle around the last selection. Use an empty
// rect to clear.
func (m *DetectionModel) SetROI(r image.Rectangle) {
	if m == nil {
		return
	}
	if r.Empty() {
		m.roi = image.Rectangle{}
		return
	}
	m.roi = r
}

// ROI returns the current rectangle (may be empty).
func (m *DetectionModel) ROI() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.roi
}

// SetRate stores the latest frame-rate label.
func (m *DetectionModel) SetRate(label string) {
	if m != nil {
		m.rateText = label
	}
}

// Rate returns the latest frame-rate label.
func (m *DetectionModel) Rate() string {
	if m == nil {
		return ""
	}
	return m.rateText
}

// Counts returns processed frames and frames with a selection.
func (m *DetectionModel) Counts() (frames, hits uint64) {
	if m == nil {
		return 0, 0
	}
	return m.frames, m.hits
}

// HitRatio is hits/frames, 0 before the first frame.
func (m *DetectionModel) HitRatio() float64 {
	if m == nil || m.frames == 0 {
		return 0
	}
	return float64(m.hits) / float64(m.frames)
}

// Last returns the most recent selection and when it was seen.
func (m *DetectionModel) Last() (vision.Circle, time.Time, bool) {
	if m == nil {
		return vision.Circle{}, time.Time{}, false
	}
	return m.last, m.lastAt, m.hasLast
}
