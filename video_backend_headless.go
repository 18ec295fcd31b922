// video_backend_headless.go - Windowless video output

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
	"sync"
	"sync/atomic"
)

// HeadlessVideoOutput accepts frames without a window. The last frame is
// kept for inspection.
type HeadlessVideoOutput struct {
	mu          sync.Mutex
	started     atomic.Bool
	config      DisplayConfig
	lastFrame   []byte
	frameCount  atomic.Uint64
}

func NewHeadlessVideoOutput() *HeadlessVideoOutput {
	return &HeadlessVideoOutput{config: DefaultDisplayConfig()}
}

func (h *HeadlessVideoOutput) Start() error {
	h.started.Store(true)
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.started.Store(false)
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	return h.started.Load()
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	config.Scale = ClampScale(config.Scale)
	h.config = config
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

func (h *HeadlessVideoOutput) UpdateFrame(buffer []byte) error {
	h.mu.Lock()
	h.lastFrame = append(h.lastFrame[:0], buffer...)
	h.mu.Unlock()
	h.frameCount.Add(1)
	return nil
}

// LastFrame returns a copy of the most recent frame.
func (h *HeadlessVideoOutput) LastFrame() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]byte(nil), h.lastFrame...)
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return h.frameCount.Load()
}
