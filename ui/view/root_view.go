package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/circle-shot-go/config"
	"github.com/soocke/circle-shot-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	CapturePrev CapturePreview

	// Widgets
	StateLabel *TLabelWidget
	ToggleBtn  *TButtonWidget
	captureRow int
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	ConfigEditable(enabled bool)
	SetToggleLabel(text string)
	PreviewReset()
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	SetSession(session, total time.Duration)
	SetDetectionStats(text string)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. previewW/previewH bound the frame preview.
// Handlers are invoked on user actions.
func (rv *RootView) Build(previewW, previewH int, onTogglePlayback func(), onExit func()) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: stats, state label, buttons
	statsFrame := Frame()
	Grid(statsFrame, Row(0), Column(0), Columnspan(2), Sticky("nw"), Padx("0.3m"), Pady("0.3m"))
	rv.Session = NewSessionStats(statsFrame, 0, 0)

	rv.StateLabel = TLabel(Txt("State: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.ToggleBtn = TButton(Txt("Play"), Style(theme.StylePrimaryButton), Command(onTogglePlayback))
	Grid(rv.ToggleBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	rv.captureRow = rv.ConfigPanel.Build(1)

	// Capture preview placement
	rv.CapturePrev = NewCapturePreview(rv.captureRow, previewW, previewH)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// ConfigEditable toggles config panel editability.
func (rv *RootView) ConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// SetToggleLabel sets the play/pause button caption.
func (rv *RootView) SetToggleLabel(text string) {
	if rv != nil && rv.ToggleBtn != nil {
		rv.ToggleBtn.Configure(Txt(text))
	}
}

// PreviewReset clears the capture preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

// UpdateCapture proxies to underlying capture preview view.
func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

// UpdateDetection proxies to underlying capture preview view.
func (rv *RootView) UpdateDetection(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateDetection(img)
	}
}

// SetSession updates both session and total playback durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// SetDetectionStats updates the detection summary line.
func (rv *RootView) SetDetectionStats(text string) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetDetection(text)
	}
}
