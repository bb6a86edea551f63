package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/circle-shot-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the configuration form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
// Source and detector changes take effect on the next program start.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
	order    []string
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		v.order = append(v.order, id)
		row++
	}
	makeRow(config.FieldSource, "Source (camera/screen/synthetic)", c.Source)
	makeRow(config.FieldCameraDevice, "Camera Device", strconv.Itoa(c.CameraDevice))
	makeRow(config.FieldDetector, "Detector (opencv/native)", c.Detector)
	makeRow(config.FieldRefreshHz, fmt.Sprintf("Refresh Hz (%d-%d)", config.MinRefreshHz, config.MaxRefreshHz), strconv.Itoa(c.RefreshHz))
	makeRow(config.FieldStatsLogSeconds, "Stats Log Seconds (0 = off)", strconv.Itoa(c.StatsLogSeconds))
	makeRow(config.FieldScreen, "Screen Region x,y,w,h", fmt.Sprintf("%d,%d,%d,%d", c.ScreenX, c.ScreenY, c.ScreenW, c.ScreenH))
	makeRow(config.FieldDebug, "Debug (true/false)", strconv.FormatBool(c.Debug))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, id := range v.order {
		if w := v.widgets[id]; w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	fields := make(map[string]string, len(v.order))
	for _, id := range v.order {
		if s, ok := v.text(id); ok {
			fields[id] = s
		}
	}
	if err := config.ApplyForm(&cfg, fields); err != nil {
		if v.logger != nil {
			v.logger.Warn("config rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}
