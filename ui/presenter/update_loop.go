package presenter

import (
	"image"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/circle-shot-go/domain/capture"
	"github.com/soocke/circle-shot-go/domain/detect"
	"github.com/soocke/circle-shot-go/domain/overlay"
	"github.com/soocke/circle-shot-go/domain/vision"
	"github.com/soocke/circle-shot-go/ui/images"
	"github.com/soocke/circle-shot-go/ui/model"
)

// FrameSource is the part of capture.Player the loop needs.
type FrameSource interface {
	Playing() bool
	Bounds() image.Rectangle
	CurrentFrame(dst *image.RGBA) error
}

// Scheduler runs fn once on the UI thread after the next refresh interval.
type Scheduler interface {
	ScheduleNext(fn func())
}

// OverlaySurface is a drawing surface whose result can be shown.
type OverlaySurface interface {
	overlay.Surface
	Image() *image.RGBA
}

// FrameView shows the annotated frame and the zoomed selection. Images are
// only valid for the duration of the call.
type FrameView interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
}

// StatsLogger emits source-side counters alongside loop.stats.
type StatsLogger interface{ LogStats() }

// LoopState is everything the loop carries between iterations.
type LoopState struct {
	Started    bool
	Running    bool
	RunID      string
	FrameCount uint64
	Skipped    uint64
	Trail      vision.Trail
	Rate       vision.RateMeter
}

// LoopDeps are the collaborators of a Loop. Source, Detector, Surface and
// Scheduler are required; the rest may be nil.
type LoopDeps struct {
	Source    FrameSource
	Detector  detect.Detector
	Surface   OverlaySurface
	Renderer  *overlay.Renderer
	Scheduler Scheduler
	View      FrameView
	Logger    *slog.Logger
}

const (
	zoomPad    = 6
	zoomFactor = 2

	// intervals retained for loop.stats
	intervalSamples = 240
)

// Loop drives detection and rendering one frame per scheduled refresh while
// the source is playing. It is not safe for concurrent use; every method runs
// on the UI thread.
type Loop struct {
	source   FrameSource
	detector detect.Detector
	surface  OverlaySurface
	renderer *overlay.Renderer
	sched    Scheduler
	view     FrameView
	logger   *slog.Logger

	// Optional presenters and models refreshed after each frame.
	Session   *SessionPresenter
	Status    *StatusPresenter
	Detect    *DetectionPresenter
	Detection *model.DetectionModel

	// StatsInterval enables periodic loop.stats logging when positive.
	StatsInterval time.Duration
	SourceStats   StatsLogger

	// Clock returns the current time; time.Now when nil.
	Clock func() time.Time

	state     LoopState
	intervals *capture.IntervalWindow
	lastStats time.Time
}

// NewLoop returns a loop that has not started.
func NewLoop(d LoopDeps) *Loop {
	r := d.Renderer
	if r == nil {
		r = overlay.NewRenderer()
	}
	return &Loop{
		source:    d.Source,
		detector:  d.Detector,
		surface:   d.Surface,
		renderer:  r,
		sched:     d.Scheduler,
		view:      d.View,
		logger:    d.Logger,
		intervals: capture.NewIntervalWindow(intervalSamples),
	}
}

// State returns a snapshot of the loop state. The trail is shared with the
// loop and must not be modified.
func (l *Loop) State() LoopState {
	if l == nil {
		return LoopState{}
	}
	return l.state
}

// OnSignal reacts to a playback signal. Playing starts or resumes the loop;
// the others are logged and take effect at the next iteration.
func (l *Loop) OnSignal(sig capture.Signal) {
	if l == nil {
		return
	}
	if sig == capture.SignalPlaying {
		l.Start()
		return
	}
	l.log().Debug("loop.signal", "signal", sig.String(), "running", l.state.Running)
}

// Start begins the iteration chain unless one is already running. The rate
// baseline is reset to now on every start while the trail is kept.
func (l *Loop) Start() {
	if l == nil || l.state.Running {
		return
	}
	if l.source == nil || l.detector == nil || l.surface == nil || l.sched == nil {
		l.log().Error("loop.start", "error", "loop is missing a collaborator")
		return
	}
	now := l.now()
	if !l.state.Started {
		l.state.Started = true
		l.state.RunID = uuid.NewString()
		l.lastStats = now
	}
	l.state.Running = true
	l.state.Rate.Reset(now)
	l.log().Info("loop.start", "run_id", l.state.RunID, "frame_count", l.state.FrameCount)
	l.iterate()
}

func (l *Loop) iterate() {
	if !l.source.Playing() {
		l.state.Running = false
		now := l.now()
		l.Session.Tick(now)
		l.Status.Tick(now)
		l.log().Info("loop.halt", "run_id", l.state.RunID, "frame_count", l.state.FrameCount, "skipped", l.state.Skipped)
		return
	}
	l.step()
	l.sched.ScheduleNext(l.iterate)
}

// step processes a single frame. Failures are logged and never stop the loop.
func (l *Loop) step() {
	frame := capture.AcquireFrame(l.source.Bounds())
	defer capture.RecycleFrame(frame)
	defer func() {
		if r := recover(); r != nil {
			l.state.Skipped++
			l.log().Error("loop.panic", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	l.state.FrameCount++
	if err := l.source.CurrentFrame(frame); err != nil {
		l.state.Skipped++
		l.log().Warn("loop.frame", "error", err, "frame_count", l.state.FrameCount)
		return
	}

	gray := detect.Grayscale(frame)
	cands, err := l.detector.Detect(gray)
	if err != nil {
		l.log().Debug("loop.detect", "error", err)
		cands = nil
	}
	var sel *vision.Circle
	if c, ok := vision.SelectLargest(cands); ok {
		sel = &c
	}

	now := l.now()
	rate := l.state.Rate.Tick(now)
	l.state.Trail.Record(sel, now)
	l.state.Trail.Prune(now)

	l.renderer.RenderFrame(l.surface, frame, sel, &l.state.Trail, rate, now)
	l.publish(frame, sel, rate, now)
}

func (l *Loop) publish(frame *image.RGBA, sel *vision.Circle, rate vision.RateSample, now time.Time) {
	l.Detection.Observe(sel, now)
	l.Detection.SetRate(rate.Label())

	if l.view != nil {
		l.view.UpdateCapture(l.surface.Image())
	}
	if sel != nil {
		if roi, rect, err := images.CircleROI(frame, sel.X, sel.Y, sel.Radius, zoomPad); err == nil {
			l.Detection.SetROI(rect)
			if l.view != nil {
				l.view.UpdateDetection(images.Zoom(roi, zoomFactor))
			}
		}
	} else {
		l.Detection.SetROI(image.Rectangle{})
	}

	l.Session.Tick(now)
	l.Status.Tick(now)
	l.Detect.Tick()

	if rate.Valid {
		l.intervals.Add(rate.Elapsed)
	}
	if l.StatsInterval > 0 && now.Sub(l.lastStats) >= l.StatsInterval {
		l.lastStats = now
		s := l.intervals.Summary()
		l.log().Info("loop.stats",
			"run_id", l.state.RunID,
			"frames", l.state.FrameCount,
			"skipped", l.state.Skipped,
			"trail_len", l.state.Trail.Len(),
			"interval_mean_ms", s.MeanMs,
			"interval_std_ms", s.StdMs,
			"mean_fps", s.MeanFPS,
		)
		if l.SourceStats != nil {
			l.SourceStats.LogStats()
		}
	}
}

func (l *Loop) now() time.Time {
	if l.Clock != nil {
		return l.Clock()
	}
	return time.Now()
}

var discard = slog.New(slog.DiscardHandler)

func (l *Loop) log() *slog.Logger {
	if l.logger == nil {
		return discard
	}
	return l.logger
}
