package presenter

import (
	"fmt"

	"github.com/soocke/circle-shot-go/ui/model"
)

// DetectionStatsView shows a one-line detection summary.
type DetectionStatsView interface {
	SetDetectionStats(text string)
}

// DetectionPresenter formats the detection model for the stats label. The
// view is only touched when the text changes.
type DetectionPresenter struct {
	model *model.DetectionModel
	view  DetectionStatsView
	last  string
}

func NewDetectionPresenter(m *model.DetectionModel, view DetectionStatsView) *DetectionPresenter {
	return &DetectionPresenter{model: m, view: view}
}

// Tick pushes the current summary to the view.
func (p *DetectionPresenter) Tick() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	text := FormatDetection(p.model)
	if text == p.last {
		return
	}
	p.last = text
	p.view.SetDetectionStats(text)
}

// FormatDetection renders the summary line, e.g.
// "Frames: 120  Hits: 90 (75%)  Last: (160,120) r=40".
func FormatDetection(m *model.DetectionModel) string {
	frames, hits := m.Counts()
	text := fmt.Sprintf("Frames: %d  Hits: %d (%.0f%%)", frames, hits, m.HitRatio()*100)
	if c, _, ok := m.Last(); ok {
		text += fmt.Sprintf("  Last: (%.0f,%.0f) r=%.0f", c.X, c.Y, c.Radius)
	} else {
		text += "  Last: none"
	}
	return text
}
