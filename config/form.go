package config

import (
	"strconv"
	"strings"
)

// Form field ids used by the config panel.
const (
	FieldSource          = "source"
	FieldCameraDevice    = "camera_device"
	FieldDetector        = "detector"
	FieldRefreshHz       = "refresh_hz"
	FieldStatsLogSeconds = "stats_log_seconds"
	FieldScreen          = "screen"
	FieldDebug           = "debug"
)

// ApplyForm parses text form values keyed by field id into c. Unparseable or
// missing values keep the previous setting; the result is validated.
func ApplyForm(c *Config, fields map[string]string) error {
	if s := strings.TrimSpace(fields[FieldSource]); s != "" {
		c.Source = strings.ToLower(s)
	}
	if s := strings.TrimSpace(fields[FieldDetector]); s != "" {
		c.Detector = strings.ToLower(s)
	}
	assignInt := func(id string, dst *int) {
		if i, ok := parseInt(fields[id]); ok {
			*dst = i
		}
	}
	assignInt(FieldCameraDevice, &c.CameraDevice)
	assignInt(FieldRefreshHz, &c.RefreshHz)
	assignInt(FieldStatsLogSeconds, &c.StatsLogSeconds)
	if r, ok := parseRegion(fields[FieldScreen]); ok {
		c.ScreenX, c.ScreenY, c.ScreenW, c.ScreenH = r[0], r[1], r[2], r[3]
	}
	if b, ok := parseBoolLoose(fields[FieldDebug]); ok {
		c.Debug = b
	}
	return c.Validate()
}

func parseInt(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}

// parseRegion reads "x,y,w,h".
func parseRegion(s string) ([4]int, bool) {
	var r [4]int
	parts := strings.Split(s, ",")
	if len(parts) != len(r) {
		return r, false
	}
	for i, p := range parts {
		v, ok := parseInt(p)
		if !ok {
			return r, false
		}
		r[i] = v
	}
	return r, true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
