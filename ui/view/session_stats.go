package view

import (
	"fmt"
	"time"

	"github.com/soocke/circle-shot-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows playback durations and the detection summary.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration)
	SetDetection(text string)
}

type sessionStats struct {
	sessionLbl   *TLabelWidget
	totalLbl     *TLabelWidget
	detectionLbl *TLabelWidget
}

// NewSessionStats grids session and total labels at (row, startCol) and
// (row, startCol+1) inside parent, and the detection summary on the row below.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{
		sessionLbl:   TLabel(Width(14), Style(theme.StyleStatsLabel)),
		totalLbl:     TLabel(Width(14), Style(theme.StyleStatsLabel)),
		detectionLbl: TLabel(Width(52), Style(theme.StyleStatsLabel)),
	}
	Grid(s.sessionLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.detectionLbl, In(parent), Row(row+1), Column(startCol), Columnspan(2), Sticky("w"), Padx("0.2m"))
	s.SetSession(0)
	s.SetTotal(0)
	s.SetDetection("Frames: 0")
	return s
}

func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + formatClock(d)))
}

func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt("Total: " + formatClock(d)))
}

func (s *sessionStats) SetDetection(text string) {
	if s == nil || s.detectionLbl == nil {
		return
	}
	s.detectionLbl.Configure(Txt(text))
}

// formatClock renders mm:ss, or h:mm:ss from one hour on.
func formatClock(d time.Duration) string {
	seconds := int(d.Seconds())
	h, m, sec := seconds/3600, (seconds/60)%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
