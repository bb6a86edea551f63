package config

import "testing"

func TestApplyForm(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyForm(cfg, map[string]string{
		FieldSource:          "Synthetic",
		FieldDetector:        "native",
		FieldCameraDevice:    "2",
		FieldRefreshHz:       "500",
		FieldStatsLogSeconds: "abc",
		FieldScreen:          "10, 20, 640, 480",
		FieldDebug:           "yes",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := Config{
		Debug:           true,
		Source:          SourceSynthetic,
		CameraDevice:    2,
		Detector:        DetectorNative,
		RefreshHz:       MaxRefreshHz,
		StatsLogSeconds: 5,
		ScreenX:         10,
		ScreenY:         20,
		ScreenW:         640,
		ScreenH:         480,
	}
	if *cfg != want {
		t.Fatalf("got %+v\nwant %+v", *cfg, want)
	}
}

func TestApplyForm_RejectsUnknownSource(t *testing.T) {
	if err := ApplyForm(DefaultConfig(), map[string]string{FieldSource: "webcam"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestApplyForm_EmptyKeepsValues(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyForm(cfg, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("empty form changed config: %+v", cfg)
	}
}

func TestParseRegion(t *testing.T) {
	if _, ok := parseRegion("1,2,3"); ok {
		t.Fatalf("three values must be rejected")
	}
	if r, ok := parseRegion("1,2,3,4"); !ok || r != [4]int{1, 2, 3, 4} {
		t.Fatalf("got %v ok=%v", r, ok)
	}
}
