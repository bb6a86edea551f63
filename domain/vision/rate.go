package vision

import (
	"fmt"
	"math"
	"time"
)

// MaxDisplayFPS caps the reported rate when two frames land very close together.
const MaxDisplayFPS = 9999

// RateSample is the result of one RateMeter tick.
type RateSample struct {
	Elapsed time.Duration
	FPS     int
	// Valid is false when Elapsed was zero or negative and no rate could be derived.
	Valid bool
}

// Label formats the sample for the on-screen counter.
func (s RateSample) Label() string {
	if !s.Valid {
		return "FPS: --"
	}
	return fmt.Sprintf("FPS: %d", s.FPS)
}

// RateMeter derives an instantaneous frame rate from consecutive timestamps.
type RateMeter struct {
	last time.Time
}

// Reset sets the baseline the next Tick is measured against.
func (m *RateMeter) Reset(baseline time.Time) { m.last = baseline }

// Last returns the timestamp of the previous tick (or the baseline).
func (m *RateMeter) Last() time.Time { return m.last }

// Tick measures the time since the previous tick and advances the baseline to now.
func (m *RateMeter) Tick(now time.Time) RateSample {
	elapsed := now.Sub(m.last)
	m.last = now
	if elapsed <= 0 {
		return RateSample{Elapsed: elapsed}
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	fps := math.Round(1000 / ms)
	if fps > MaxDisplayFPS {
		fps = MaxDisplayFPS
	}
	return RateSample{Elapsed: elapsed, FPS: int(fps), Valid: true}
}
