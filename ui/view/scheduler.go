package view

import (
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TkScheduler runs callbacks on the Tk event loop after a fixed interval.
// It tracks the most recent callback so shutdown can cancel it.
type TkScheduler struct {
	interval time.Duration
	afterID  string
}

// NewTkScheduler returns a scheduler firing every interval (at least 1ms).
func NewTkScheduler(interval time.Duration) *TkScheduler {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return &TkScheduler{interval: interval}
}

// ScheduleNext arranges fn to run once after the interval.
func (s *TkScheduler) ScheduleNext(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.afterID = TclAfter(s.interval, func() {
		s.afterID = ""
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (s *TkScheduler) Cancel() {
	if s == nil || s.afterID == "" {
		return
	}
	TclAfterCancel(s.afterID)
	s.afterID = ""
}
