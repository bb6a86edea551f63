package capture

import (
	"image"
	"time"

	"github.com/pkg/errors"
)

// Working resolution of every frame source.
const (
	FrameWidth  = 320
	FrameHeight = 240
)

// FrameBounds is the rectangle every source delivers.
var FrameBounds = image.Rect(0, 0, FrameWidth, FrameHeight)

var (
	// ErrSourceUnavailable wraps failures to open the underlying device.
	ErrSourceUnavailable = errors.New("capture: source unavailable")
	// ErrNotPlaying is returned when a frame is requested while paused or ended.
	ErrNotPlaying = errors.New("capture: source not playing")
)

// Device is a raw frame producer (camera, screen, synthetic pattern).
// Read fills dst, which always has FrameBounds; io.EOF means no more frames.
type Device interface {
	Open() error
	Read(dst *image.RGBA) error
	Close() error
}

// Signal is a playback notification emitted by a Player.
type Signal int

const (
	SignalLoaded Signal = iota + 1
	SignalPlaying
	SignalPaused
	SignalEnded
)

func (s Signal) String() string {
	switch s {
	case SignalLoaded:
		return "loaded"
	case SignalPlaying:
		return "playing"
	case SignalPaused:
		return "paused"
	case SignalEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// PlaybackState is the player's current state.
type PlaybackState int

const (
	StateIdle PlaybackState = iota
	StateLoaded
	StatePlaying
	StatePaused
	StateEnded
)

func (s PlaybackState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoaded:
		return "loaded"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// CaptureStats summarises frame acquisition for instrumentation.
type CaptureStats struct {
	Captures         uint64
	Failed           uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
}
