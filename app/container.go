package app

import (
	"image"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/soocke/circle-shot-go/config"
	"github.com/soocke/circle-shot-go/domain/capture"
	"github.com/soocke/circle-shot-go/domain/detect"
	"github.com/soocke/circle-shot-go/domain/opencv"
	"github.com/soocke/circle-shot-go/domain/overlay"
	"github.com/soocke/circle-shot-go/ui/model"
	"github.com/soocke/circle-shot-go/ui/presenter"
	"github.com/soocke/circle-shot-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Session   *model.SessionModel
	Detection *model.DetectionModel
	Player    *capture.Player
	Detector  detect.Detector
	Canvas    *overlay.Canvas
	Scheduler *view.TkScheduler
	RootView  *view.RootView

	// Presenters
	SessionPresenter   *presenter.SessionPresenter
	StatusPresenter    *presenter.StatusPresenter
	DetectionPresenter *presenter.DetectionPresenter
	PlaybackPresenter  *presenter.PlaybackPresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all non-UI components. Nothing is opened yet.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Session = model.NewSessionModel()
	c.Detection = model.NewDetectionModel()

	dev, err := NewDevice(cfg)
	if err != nil {
		return nil, err
	}
	c.Player = capture.NewPlayer(dev, logger)
	if c.Detector, err = NewDetector(cfg); err != nil {
		return nil, err
	}
	b := c.Player.Bounds()
	if c.Canvas, err = overlay.NewCanvas(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	c.Scheduler = view.NewTkScheduler(cfg.RefreshInterval())
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	return c, nil
}

// WirePresenters connects presenters to the built UI and subscribes them to
// playback signals. Call after the root view is built.
func (c *AppContainer) WirePresenters(ui view.UI) {
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Player, ui)
	c.StatusPresenter = presenter.NewStatusPresenter(ui)
	c.DetectionPresenter = presenter.NewDetectionPresenter(c.Detection, ui)
	c.PlaybackPresenter = presenter.NewPlaybackPresenter(c.Player, ui)

	c.Loop = presenter.NewLoop(presenter.LoopDeps{
		Source:    c.Player,
		Detector:  c.Detector,
		Surface:   c.Canvas,
		Renderer:  overlay.NewRenderer(),
		Scheduler: c.Scheduler,
		View:      ui,
		Logger:    c.Logger,
	})
	c.Loop.Session = c.SessionPresenter
	c.Loop.Status = c.StatusPresenter
	c.Loop.Detect = c.DetectionPresenter
	c.Loop.Detection = c.Detection
	c.Loop.StatsInterval = c.Config.StatsInterval()
	c.Loop.SourceStats = c.Player

	// Status first so the label is queued before the loop flushes it.
	c.Player.Subscribe(c.StatusPresenter.OnSignal)
	c.Player.Subscribe(c.PlaybackPresenter.OnSignal)
	c.Player.Subscribe(c.Loop.OnSignal)
}

// NewDevice returns the frame device selected by cfg.Source.
func NewDevice(cfg *config.Config) (capture.Device, error) {
	switch cfg.Source {
	case config.SourceCamera, "":
		return opencv.NewCamera(cfg.CameraDevice), nil
	case config.SourceScreen:
		region := image.Rect(cfg.ScreenX, cfg.ScreenY, cfg.ScreenX+cfg.ScreenW, cfg.ScreenY+cfg.ScreenH)
		return capture.NewScreenDevice(region), nil
	case config.SourceSynthetic:
		return capture.NewSyntheticDevice(), nil
	default:
		return nil, errors.Errorf("unknown source %q", cfg.Source)
	}
}

// NewDetector returns the circle detector selected by cfg.Detector, using
// the fixed detection parameters.
func NewDetector(cfg *config.Config) (detect.Detector, error) {
	switch cfg.Detector {
	case config.DetectorOpenCV, "":
		return opencv.NewHoughDetector(detect.DefaultParams()), nil
	case config.DetectorNative:
		return detect.NewHoughDetector(detect.DefaultParams()), nil
	default:
		return nil, errors.Errorf("unknown detector %q", cfg.Detector)
	}
}
