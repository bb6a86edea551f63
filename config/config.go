package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Frame sources.
const (
	SourceCamera    = "camera"
	SourceScreen    = "screen"
	SourceSynthetic = "synthetic"
)

// Circle detectors.
const (
	DetectorOpenCV = "opencv"
	DetectorNative = "native"
)

// Refresh rate bounds in Hz.
const (
	MinRefreshHz     = 1
	MaxRefreshHz     = 240
	DefaultRefreshHz = 60
)

// Config holds runtime configuration for capture and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
// The working resolution and the detector parameters are fixed and not part
// of the configuration.
type Config struct {
	Debug bool `json:"debug"`

	Source       string `json:"source"`
	CameraDevice int    `json:"camera_device"`
	Detector     string `json:"detector"`

	RefreshHz       int `json:"refresh_hz"`
	StatsLogSeconds int `json:"stats_log_seconds"`

	// Screen region captured by the screen source; zero size means the whole
	// primary display.
	ScreenX int `json:"screen_x"`
	ScreenY int `json:"screen_y"`
	ScreenW int `json:"screen_w"`
	ScreenH int `json:"screen_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Source:          SourceCamera,
		CameraDevice:    0,
		Detector:        DetectorOpenCV,
		RefreshHz:       DefaultRefreshHz,
		StatsLogSeconds: 5,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceCamera, SourceScreen, SourceSynthetic:
	case "":
		c.Source = SourceCamera
	default:
		return errors.Errorf("config: unknown source %q", c.Source)
	}
	switch c.Detector {
	case DetectorOpenCV, DetectorNative:
	case "":
		c.Detector = DetectorOpenCV
	default:
		return errors.Errorf("config: unknown detector %q", c.Detector)
	}
	if c.CameraDevice < 0 {
		c.CameraDevice = 0
	}
	if c.RefreshHz <= 0 {
		c.RefreshHz = DefaultRefreshHz
	}
	c.RefreshHz = max(MinRefreshHz, min(c.RefreshHz, MaxRefreshHz))
	if c.StatsLogSeconds < 0 {
		c.StatsLogSeconds = 0
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		c.ScreenW, c.ScreenH = 0, 0
	}
	return nil
}

// RefreshInterval is the delay between two loop iterations.
func (c *Config) RefreshInterval() time.Duration {
	hz := c.RefreshHz
	if hz <= 0 {
		hz = DefaultRefreshHz
	}
	return time.Second / time.Duration(hz)
}

// StatsInterval is the period of loop.stats records, 0 when disabled.
func (c *Config) StatsInterval() time.Duration {
	return time.Duration(c.StatsLogSeconds) * time.Second
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON or validation error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "config: open")
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "config: decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "config: create")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(c), "config: encode")
}
