package capture

import (
	"image"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Player wraps a Device with a playback state machine and notifies listeners of
// loaded/playing/paused/ended transitions. Signals are delivered synchronously
// on the goroutine that caused the transition. State changes are expected on a
// single (UI) goroutine; the counters are atomic so diagnostics may read Stats
// from elsewhere.
type Player struct {
	dev       Device
	logger    *slog.Logger
	bounds    image.Rectangle
	state     PlaybackState
	listeners []func(Signal)

	captures     atomic.Uint64
	failed       atomic.Uint64
	captureNanos atomic.Uint64
	lastCapture  atomic.Int64 // unix nanos
}

// NewPlayer returns an idle player for dev delivering FrameBounds frames.
func NewPlayer(dev Device, logger *slog.Logger) *Player {
	return &Player{dev: dev, logger: logger, bounds: FrameBounds}
}

// Subscribe registers fn for every subsequent signal.
func (p *Player) Subscribe(fn func(Signal)) {
	if p == nil || fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// Bounds is the rectangle of every frame this player delivers.
func (p *Player) Bounds() image.Rectangle { return p.bounds }

// State returns the current playback state.
func (p *Player) State() PlaybackState { return p.state }

// Playing reports whether frames can be requested.
func (p *Player) Playing() bool { return p != nil && p.state == StatePlaying }

// Open opens the device. A failure leaves the player idle and is wrapped in
// ErrSourceUnavailable. Opening twice is a no-op.
func (p *Player) Open() error {
	if p.state != StateIdle {
		return nil
	}
	if p.dev == nil {
		return errors.Wrap(ErrSourceUnavailable, "no device configured")
	}
	if err := p.dev.Open(); err != nil {
		return errors.Wrapf(ErrSourceUnavailable, "open device: %v", err)
	}
	p.setState(StateLoaded, SignalLoaded)
	return nil
}

// Play starts or resumes playback. It is a no-op unless loaded or paused.
func (p *Player) Play() {
	if p.state != StateLoaded && p.state != StatePaused {
		return
	}
	p.setState(StatePlaying, SignalPlaying)
}

// Pause suspends playback. It is a no-op unless playing.
func (p *Player) Pause() {
	if p.state != StatePlaying {
		return
	}
	p.setState(StatePaused, SignalPaused)
}

// End stops playback permanently and closes the device.
func (p *Player) End() {
	if p.state == StateEnded || p.state == StateIdle {
		return
	}
	if p.dev != nil {
		if err := p.dev.Close(); err != nil && p.logger != nil {
			p.logger.Warn("capture close", "error", err)
		}
	}
	p.setState(StateEnded, SignalEnded)
}

// CurrentFrame reads the next frame into dst. io.EOF from the device ends
// playback and is returned to the caller.
func (p *Player) CurrentFrame(dst *image.RGBA) error {
	if !p.Playing() {
		return ErrNotPlaying
	}
	if dst == nil || dst.Bounds() != p.bounds {
		return errors.Errorf("capture: destination bounds %v, want %v", rectOf(dst), p.bounds)
	}
	start := time.Now()
	if err := p.dev.Read(dst); err != nil {
		p.failed.Add(1)
		if errors.Cause(err) == io.EOF {
			p.End()
		}
		return errors.Wrap(err, "capture: read frame")
	}
	p.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
	p.captures.Add(1)
	p.lastCapture.Store(time.Now().UnixNano())
	return nil
}

// Stats returns acquisition counters.
func (p *Player) Stats() CaptureStats {
	captures := p.captures.Load()
	total := p.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	var last time.Time
	if ns := p.lastCapture.Load(); ns > 0 {
		last = time.Unix(0, ns)
	}
	return CaptureStats{
		Captures:         captures,
		Failed:           p.failed.Load(),
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      last,
	}
}

// LogStats emits the acquisition counters at debug level.
func (p *Player) LogStats() {
	if p == nil || p.logger == nil {
		return
	}
	stats := p.Stats()
	p.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"failed", stats.Failed,
		"avg_capture", stats.AvgCapture,
		"state", p.state.String(),
	)
}

func (p *Player) setState(next PlaybackState, sig Signal) {
	prev := p.state
	p.state = next
	if p.logger != nil {
		p.logger.Info("capture.state", "from", prev.String(), "to", next.String())
	}
	for _, fn := range p.listeners {
		fn(sig)
	}
}

func rectOf(img *image.RGBA) image.Rectangle {
	if img == nil {
		return image.Rectangle{}
	}
	return img.Bounds()
}
