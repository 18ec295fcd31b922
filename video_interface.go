// video_interface.go - Video output interface for Teletext Engine

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"
)

type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

type DisplayConfig struct {
	Width       int
	Height      int
	Scale       int // Integer scaling factor for output
	RefreshRate int // Target refresh rate in Hz
	Fullscreen  bool
}

// Display scale bounds
const (
	MIN_DISPLAY_SCALE = 1
	MAX_DISPLAY_SCALE = 4
)

// ClampScale bounds a window scale factor to the supported range.
func ClampScale(scale int) int {
	return max(MIN_DISPLAY_SCALE, min(scale, MAX_DISPLAY_SCALE))
}

// DefaultDisplayConfig is the teletext frame at 50Hz.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:       TTXT_FRAME_WIDTH,
		Height:      TTXT_FRAME_HEIGHT,
		Scale:       1,
		RefreshRate: int(time.Second / TTXT_REFRESH_INTERVAL),
	}
}

type VideoOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	SetDisplayConfig(config DisplayConfig) error
	GetDisplayConfig() DisplayConfig
	UpdateFrame(buffer []byte) error // Takes raw RGBA pixels only

	GetFrameCount() uint64
}

// InputCapable outputs deliver typed keys as teletext stream bytes.
type InputCapable interface {
	SetKeyHandler(fn func(byte))
}

// ClipboardCapable outputs can paste into and copy from the page.
type ClipboardCapable interface {
	SetPasteHandler(fn func(string))
	SetCopySource(fn func() string)
}

// Doner outputs report when their window has closed.
type Doner interface {
	Done() <-chan struct{}
}

// StatusInfo is the state shown in a backend status bar.
type StatusInfo struct {
	Flash      bool
	CursorCol  int
	CursorRow  int
	Window     Window
	FrameCount uint64
	Source     string
}

// StatusCapable outputs can show a status bar fed from the device.
type StatusCapable interface {
	SetStatusSource(fn func() StatusInfo)
}

const (
	VIDEO_BACKEND_EBITEN   = iota // Pure Go Ebiten backend
	VIDEO_BACKEND_HEADLESS        // No window, frames are counted and dropped
)

func NewVideoOutput(backend int) (VideoOutput, error) {
	switch backend {
	case VIDEO_BACKEND_EBITEN:
		return NewEbitenOutput()
	case VIDEO_BACKEND_HEADLESS:
		return NewHeadlessVideoOutput(), nil
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
