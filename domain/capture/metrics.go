package capture

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// IntervalWindow keeps the most recent frame intervals for periodic reporting.
// The zero value is not usable; construct with NewIntervalWindow.
type IntervalWindow struct {
	samples []float64 // milliseconds, ring buffer
	next    int
	full    bool
}

// NewIntervalWindow returns a window retaining up to size samples.
func NewIntervalWindow(size int) *IntervalWindow {
	if size < 1 {
		size = 1
	}
	return &IntervalWindow{samples: make([]float64, size)}
}

// Add records one interval. Non-positive intervals are ignored.
func (w *IntervalWindow) Add(d time.Duration) {
	if w == nil || d <= 0 {
		return
	}
	w.samples[w.next] = float64(d) / float64(time.Millisecond)
	w.next++
	if w.next == len(w.samples) {
		w.next = 0
		w.full = true
	}
}

// Len reports how many samples are retained.
func (w *IntervalWindow) Len() int {
	if w == nil {
		return 0
	}
	if w.full {
		return len(w.samples)
	}
	return w.next
}

// IntervalSummary describes the retained intervals in milliseconds.
type IntervalSummary struct {
	Samples int
	MeanMs  float64
	StdMs   float64
	MeanFPS float64
}

// Summary computes mean and standard deviation of the retained intervals.
func (w *IntervalWindow) Summary() IntervalSummary {
	n := w.Len()
	if n == 0 {
		return IntervalSummary{}
	}
	data := w.samples[:n]
	mean, std := stat.MeanStdDev(data, nil)
	if n == 1 {
		std = 0
	}
	s := IntervalSummary{Samples: n, MeanMs: mean, StdMs: std}
	if mean > 0 {
		s.MeanFPS = 1000 / mean
	}
	return s
}
