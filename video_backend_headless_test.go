package main

import (
	"bytes"
	"testing"
)

func TestHeadlessOutput_SetDisplayConfig_StoresFullscreen(t *testing.T) {
	out := NewHeadlessVideoOutput()
	cfg := DisplayConfig{
		Width:      TTXT_FRAME_WIDTH,
		Height:     TTXT_FRAME_HEIGHT,
		Scale:      2,
		Fullscreen: true,
	}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if !got.Fullscreen {
		t.Fatal("expected Fullscreen=true")
	}
	if got.Scale != 2 {
		t.Fatalf("expected Scale=2, got %d", got.Scale)
	}
}

func TestHeadlessOutput_DisplayConfig_ClampsScale(t *testing.T) {
	out := NewHeadlessVideoOutput()
	if err := out.SetDisplayConfig(DisplayConfig{Scale: 9}); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	if got := out.GetDisplayConfig().Scale; got != MAX_DISPLAY_SCALE {
		t.Fatalf("expected scale clamped to %d, got %d", MAX_DISPLAY_SCALE, got)
	}
	if err := out.SetDisplayConfig(DisplayConfig{Scale: 0}); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	if got := out.GetDisplayConfig().Scale; got != MIN_DISPLAY_SCALE {
		t.Fatalf("expected scale clamped to %d, got %d", MIN_DISPLAY_SCALE, got)
	}
}

func TestHeadlessOutput_UpdateFrame_KeepsCopy(t *testing.T) {
	out := NewHeadlessVideoOutput()
	frame := []byte{1, 2, 3, 4}
	if err := out.UpdateFrame(frame); err != nil {
		t.Fatalf("UpdateFrame returned error: %v", err)
	}
	frame[0] = 9
	if got := out.LastFrame(); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("expected stored copy, got %v", got)
	}
	if out.GetFrameCount() != 1 {
		t.Fatalf("expected frame count 1, got %d", out.GetFrameCount())
	}
}

func TestNewVideoOutput_UnknownBackend(t *testing.T) {
	if _, err := NewVideoOutput(99); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	out, err := NewVideoOutput(VIDEO_BACKEND_HEADLESS)
	if err != nil {
		t.Fatalf("headless backend: %v", err)
	}
	if out.IsStarted() {
		t.Fatal("expected new output to be stopped")
	}
}
