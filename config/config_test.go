package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.Source = SourceSynthetic
	cfg.Detector = DetectorNative
	cfg.RefreshHz = 30
	cfg.ScreenW, cfg.ScreenH = 640, 480
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, cfg)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Config
		wantHz  int
		wantErr bool
	}{
		{"zero refresh uses default", Config{RefreshHz: 0}, DefaultRefreshHz, false},
		{"negative refresh uses default", Config{RefreshHz: -5}, DefaultRefreshHz, false},
		{"refresh clamped high", Config{RefreshHz: 1000}, MaxRefreshHz, false},
		{"refresh kept", Config{RefreshHz: 1}, 1, false},
		{"unknown source", Config{Source: "usb"}, 0, true},
		{"unknown detector", Config{Detector: "dnn"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && c.RefreshHz != tt.wantHz {
				t.Fatalf("refresh=%d want %d", c.RefreshHz, tt.wantHz)
			}
			if !tt.wantErr && (c.Source != SourceCamera || c.Detector != DetectorOpenCV) {
				t.Fatalf("empty source/detector not defaulted: %+v", c)
			}
		})
	}
}

func TestIntervals(t *testing.T) {
	c := DefaultConfig()
	if got := c.RefreshInterval(); got != time.Second/60 {
		t.Fatalf("refresh interval %v", got)
	}
	c.StatsLogSeconds = 0
	if c.StatsInterval() != 0 {
		t.Fatalf("stats disabled should be 0")
	}
}
