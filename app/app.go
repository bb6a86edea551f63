package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/circle-shot-go/config"
	"github.com/soocke/circle-shot-go/debug"

	. "modernc.org/tk9.0"
)

const (
	previewW = 640
	previewH = 480

	goroutineLogInterval = 5 * time.Second
	memLogInterval       = 10 * time.Second
)

// Application is the Tk shell around the container.
type Application struct {
	c         *AppContainer
	logger    *slog.Logger
	stopDebug func()
}

// NewApp builds the container and sizes the main window. Nothing is shown
// until Start.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) (*Application, error) {
	c, err := BuildContainer(cfg, logger, cfgPath)
	if err != nil {
		return nil, err
	}
	a := &Application{c: c, logger: logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a, nil
}

// Start builds the UI, opens the source, starts playback and blocks in the
// Tk event loop.
func (a *Application) Start() {
	c := a.c
	c.RootView.Build(previewW, previewH, func() { c.PlaybackPresenter.Toggle() }, a.exitHandler)
	c.WirePresenters(c.RootView)

	if c.Config.Debug {
		a.stopDebug = debug.Start(goroutineLogInterval, memLogInterval, a.logger)
	}

	if err := c.Player.Open(); err != nil {
		a.logger.Error("source unavailable", "source", c.Config.Source, "error", err)
		c.StatusPresenter.SetUnavailable()
		c.RootView.ConfigEditable(true)
		c.RootView.SetToggleLabel("Unavailable")
	} else {
		a.logger.Info("source opened", "source", c.Config.Source, "detector", c.Config.Detector, "refresh_hz", c.Config.RefreshHz)
		c.PlaybackPresenter.Play()
	}

	App.Wait()
}

func (a *Application) exitHandler() {
	if a.stopDebug != nil {
		a.stopDebug()
	}
	a.c.Scheduler.Cancel()
	a.c.Player.End()
	Destroy(App)
}
