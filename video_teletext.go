// video_teletext.go - Teletext display device for Teletext Engine

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

/*
video_teletext.go - Teletext Display Device

TeletextCanvas is the RGBA framebuffer surface the decoder draws into: a
640x475 frame made of 40x25 cells of 16x19 pixels, 4 bytes per pixel.

TeletextVideo wraps a decoder and its canvas for the host:
  - every decoder call is serialized behind one mutex
  - SignalVSync counts frames and toggles the flash phase every
    flashFrames frames (25 by default, 1Hz at 50Hz)
  - an optional 50Hz render goroutine pushes frames to a VideoOutput
  - extra surfaces (the tcell terminal view) receive the same draw calls
*/

package main

import (
	"context"
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// RGBA canvas surface
// =============================================================================

// TeletextCanvas renders glyphs into an RGBA frame.
type TeletextCanvas struct {
	img    *image.RGBA
	table  *GlyphTable
	fg, bg Colour
}

func NewTeletextCanvas() *TeletextCanvas {
	c := &TeletextCanvas{
		img: image.NewRGBA(image.Rect(0, 0, TTXT_FRAME_WIDTH, TTXT_FRAME_HEIGHT)),
		fg:  ColourWhite,
		bg:  ColourBlack,
	}
	c.ClearSurface()
	return c
}

func (c *TeletextCanvas) SelectGlyphSource(table *GlyphTable) { c.table = table }
func (c *TeletextCanvas) SetForeground(col Colour)            { c.fg = col }
func (c *TeletextCanvas) SetBackground(col Colour)            { c.bg = col }

func writeColour(dst []byte, col Colour) {
	r, g, b := col.RGB()
	dst[0] = r
	dst[1] = g
	dst[2] = b
	dst[3] = 0xFF
}

func (c *TeletextCanvas) DrawGlyph(cellX, cellY int, code byte) {
	if !inGrid(cellX, cellY) || c.table == nil {
		return
	}
	g := c.table.Glyph(code)
	x0 := cellX * TTXT_GLYPH_WIDTH
	y0 := cellY * TTXT_GLYPH_HEIGHT
	for y := range TTXT_GLYPH_HEIGHT {
		off := (y0+y)*TTXT_FRAME_STRIDE + x0*4
		for x := range TTXT_GLYPH_WIDTH {
			col := c.bg
			if g.Pixel(x, y) {
				col = c.fg
			}
			writeColour(c.img.Pix[off+x*4:], col)
		}
	}
}

func (c *TeletextCanvas) ClearSurface() {
	for i := 0; i < len(c.img.Pix); i += 4 {
		writeColour(c.img.Pix[i:], ColourBlack)
	}
}

func (c *TeletextCanvas) ScrollSurface(rows int) {
	if rows <= 0 {
		return
	}
	shift := min(rows*TTXT_GLYPH_HEIGHT, TTXT_FRAME_HEIGHT) * TTXT_FRAME_STRIDE
	copy(c.img.Pix, c.img.Pix[shift:])
	for i := len(c.img.Pix) - shift; i < len(c.img.Pix); i += 4 {
		writeColour(c.img.Pix[i:], ColourBlack)
	}
}

// Pixels returns the live frame buffer.
func (c *TeletextCanvas) Pixels() []byte {
	return c.img.Pix
}

// At returns the colour index under pixel (x, y), matching against the
// palette.
func (c *TeletextCanvas) At(x, y int) Colour {
	off := y*TTXT_FRAME_STRIDE + x*4
	px := c.img.Pix[off : off+3]
	for i, p := range TTXTPalette {
		if p[0] == px[0] && p[1] == px[1] && p[2] == px[2] {
			return Colour(i)
		}
	}
	return ColourBlack
}

// =============================================================================
// Surface fan-out
// =============================================================================

type teeSurface []TeletextSurface

func (t teeSurface) SelectGlyphSource(table *GlyphTable) {
	for _, s := range t {
		s.SelectGlyphSource(table)
	}
}

func (t teeSurface) SetForeground(c Colour) {
	for _, s := range t {
		s.SetForeground(c)
	}
}

func (t teeSurface) SetBackground(c Colour) {
	for _, s := range t {
		s.SetBackground(c)
	}
}

func (t teeSurface) DrawGlyph(cellX, cellY int, code byte) {
	for _, s := range t {
		s.DrawGlyph(cellX, cellY, code)
	}
}

func (t teeSurface) ClearSurface() {
	for _, s := range t {
		s.ClearSurface()
	}
}

func (t teeSurface) ScrollSurface(rows int) {
	for _, s := range t {
		s.ScrollSurface(rows)
	}
}

// =============================================================================
// Device
// =============================================================================

// TeletextVideo is a decoder, its canvas and the host timing around them.
type TeletextVideo struct {
	mu     sync.Mutex
	canvas *TeletextCanvas
	tt     *Teletext
	writer *PageWriter

	flashFrames  int
	flashCounter int
	frameCount   atomic.Uint64

	// Render goroutine lifecycle
	renderMu      sync.Mutex
	renderCancel  context.CancelFunc
	renderDone    chan struct{}
	renderRunning atomic.Bool

	// Optional per-frame callback (script tick hook), called without mu held
	onFrame func(frame uint64)
}

// NewTeletextVideo builds the glyph set from font and returns a device with
// a blank page. Extra surfaces receive every draw call after the canvas.
func NewTeletextVideo(font BaseFont, extra ...TeletextSurface) (*TeletextVideo, error) {
	canvas := NewTeletextCanvas()
	var surface TeletextSurface = canvas
	if len(extra) > 0 {
		surface = append(teeSurface{canvas}, extra...)
	}
	tt, err := NewTeletext(surface, font)
	if err != nil {
		return nil, err
	}
	return &TeletextVideo{
		canvas:      canvas,
		tt:          tt,
		writer:      NewPageWriter(tt),
		flashFrames: TTXT_FLASH_FRAMES,
	}, nil
}

// SetFlashFrames sets how many frames pass between flash toggles.
func (v *TeletextVideo) SetFlashFrames(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n > 0 {
		v.flashFrames = n
	}
}

// SetFrameHook installs a function called once per frame by SignalVSync.
func (v *TeletextVideo) SetFrameHook(fn func(frame uint64)) {
	v.mu.Lock()
	v.onFrame = fn
	v.mu.Unlock()
}

func (v *TeletextVideo) WriteCell(x, y int, c byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.WriteCell(x, y, c)
}

func (v *TeletextVideo) GetCell(x, y int) byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tt.GetCell(x, y)
}

func (v *TeletextVideo) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.Clear()
}

func (v *TeletextVideo) Scroll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.Scroll()
}

func (v *TeletextVideo) SetWindow(left, bottom, right, top int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.SetWindow(left, bottom, right, top)
}

func (v *TeletextVideo) Window() Window {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tt.Window()
}

func (v *TeletextVideo) SetFlashPhase(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.SetFlashPhase(on)
}

// FlashPhase reports whether flashing cells are currently shown.
func (v *TeletextVideo) FlashPhase() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tt.FlashPhase()
}

func (v *TeletextVideo) Page() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tt.Page()
}

func (v *TeletextVideo) LoadPage(data []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.LoadPage(data)
	v.writer.Home()
}

func (v *TeletextVideo) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tt.Refresh()
}

// Write streams bytes through the device's text cursor.
func (v *TeletextVideo) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.writer.Write(p)
}

// HandleKey feeds one key byte from an input backend.
func (v *TeletextVideo) HandleKey(b byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	_ = v.writer.WriteByte(b)
}

// PasteText streams pasted text, turning line breaks into CR LF.
func (v *TeletextVideo) PasteText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b []byte
	for _, r := range s {
		switch {
		case r == '\n':
			b = append(b, STREAM_CR, STREAM_LF)
		case r >= 0x20 && r < 0x7F:
			b = append(b, byte(r))
		case r == '£':
			b = append(b, '`')
		}
	}
	_, _ = v.Write(b)
}

// Cursor returns the text cursor cell.
func (v *TeletextVideo) Cursor() (col, row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.writer.Cursor()
}

// PageText returns the page as plain text.
func (v *TeletextVideo) PageText() string {
	return ExportPageText(v.Page())
}

// GetDimensions returns the frame dimensions.
func (v *TeletextVideo) GetDimensions() (w, h int) {
	return TTXT_FRAME_WIDTH, TTXT_FRAME_HEIGHT
}

// GetFrame returns a copy of the current frame.
func (v *TeletextVideo) GetFrame() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]byte(nil), v.canvas.Pixels()...)
}

// Snapshot writes the current frame as PNG.
func (v *TeletextVideo) Snapshot(w io.Writer) error {
	v.mu.Lock()
	img := &image.RGBA{
		Pix:    append([]byte(nil), v.canvas.img.Pix...),
		Stride: v.canvas.img.Stride,
		Rect:   v.canvas.img.Rect,
	}
	v.mu.Unlock()
	if err := png.Encode(w, img); err != nil {
		return &VideoError{Operation: "snapshot", Details: "png encode", Err: err}
	}
	return nil
}

// FrameCount returns the number of frames signalled so far.
func (v *TeletextVideo) FrameCount() uint64 {
	return v.frameCount.Load()
}

// SignalVSync advances the frame counter and handles flash timing.
func (v *TeletextVideo) SignalVSync() {
	frame := v.frameCount.Add(1)

	v.mu.Lock()
	v.flashCounter++
	if v.flashCounter >= v.flashFrames {
		v.flashCounter = 0
		v.tt.SetFlashPhase(!v.tt.FlashPhase())
	}
	hook := v.onFrame
	v.mu.Unlock()

	if hook != nil {
		hook(frame)
	}
}

// =============================================================================
// Render goroutine
// =============================================================================

// StartRenderLoop spawns a 50Hz goroutine that signals vsync and pushes each
// frame to out. out may be nil when only flash timing is wanted.
func (v *TeletextVideo) StartRenderLoop(out VideoOutput) {
	v.renderMu.Lock()
	defer v.renderMu.Unlock()
	if v.renderRunning.Load() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.renderCancel = cancel
	done := make(chan struct{})
	v.renderDone = done
	v.renderRunning.Store(true)
	go v.renderLoop(ctx, done, out)
}

// StopRenderLoop stops the render goroutine and waits for it to exit.
func (v *TeletextVideo) StopRenderLoop() {
	v.renderMu.Lock()
	if !v.renderRunning.Swap(false) {
		v.renderMu.Unlock()
		return
	}
	cancel := v.renderCancel
	done := v.renderDone
	v.renderMu.Unlock()
	cancel()
	<-done
}

func (v *TeletextVideo) renderLoop(ctx context.Context, done chan struct{}, out VideoOutput) {
	defer close(done)
	ticker := time.NewTicker(TTXT_REFRESH_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.SignalVSync()
			if out != nil && out.IsStarted() {
				_ = out.UpdateFrame(v.GetFrame())
			}
		}
	}
}
