//go:build !headless

// video_backend_ebiten.go - Ebiten video backend for Teletext Engine

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
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten", "clipboard")
}

const PASTE_LIMIT = 4096

type EbitenOutput struct {
	running     atomic.Bool
	window      *ebiten.Image
	width       int
	height      int
	fullscreen  bool
	scale       int
	windowedW   int
	windowedH   int
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64
	refreshRate int
	vsyncChan   chan struct{}
	done        chan struct{}

	keyHandler    func(byte)
	pasteHandler  func(string)
	copySource    func() string
	statusSource  func() StatusInfo
	reloadHandler func()

	clipboardOnce sync.Once
	clipboardOK   bool
	showStatusBar bool

	reloadInProgress atomic.Bool
}

func NewEbitenOutput() (VideoOutput, error) {
	return &EbitenOutput{
		width:         TTXT_FRAME_WIDTH,
		height:        TTXT_FRAME_HEIGHT,
		scale:         1,
		windowedW:     TTXT_FRAME_WIDTH,
		windowedH:     TTXT_FRAME_HEIGHT,
		frameBuffer:   make([]byte, TTXT_FRAME_WIDTH*TTXT_FRAME_HEIGHT*4),
		refreshRate:   50,
		vsyncChan:     make(chan struct{}, 1),
		done:          make(chan struct{}),
		showStatusBar: false,
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running.Load() {
		return nil
	}
	eo.bufferMutex.Lock()
	eo.done = make(chan struct{})
	eo.bufferMutex.Unlock()
	eo.running.Store(true)
	ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	ebiten.SetWindowTitle("Teletext Engine")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if eo.fullscreen {
		ebiten.SetFullscreen(true)
	}

	go func() {
		defer func() {
			eo.running.Store(false)
			eo.bufferMutex.RLock()
			done := eo.done
			eo.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running.Store(false)
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	eo.bufferMutex.RLock()
	done := eo.done
	eo.bufferMutex.RUnlock()
	return done
}

func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	copy(eo.frameBuffer, data)
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	width := config.Width
	height := config.Height
	if width <= 0 {
		width = TTXT_FRAME_WIDTH
	}
	if height <= 0 {
		height = TTXT_FRAME_HEIGHT
	}
	eo.width = width
	eo.height = height
	eo.scale = ClampScale(config.Scale)
	if config.RefreshRate > 0 {
		eo.refreshRate = config.RefreshRate
	}
	newSize := eo.width * eo.height * 4

	if len(eo.frameBuffer) != newSize {
		eo.frameBuffer = make([]byte, newSize)
	}

	eo.windowedW = eo.width * eo.scale
	eo.windowedH = eo.height * eo.scale
	eo.fullscreen = config.Fullscreen
	ebiten.SetFullscreen(eo.fullscreen)
	if !eo.fullscreen {
		ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
	}
	if eo.window != nil {
		eo.window.Dispose()
		eo.window = nil
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return DisplayConfig{
		Width:       eo.width,
		Height:      eo.height,
		Scale:       eo.scale,
		RefreshRate: eo.refreshRate,
		Fullscreen:  eo.fullscreen,
	}
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&eo.frameCount)
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running.Load()
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		eo.bufferMutex.Lock()
		eo.fullscreen = !eo.fullscreen
		ebiten.SetFullscreen(eo.fullscreen)
		if !eo.fullscreen {
			ebiten.SetWindowSize(eo.windowedW, eo.windowedH)
		}
		eo.bufferMutex.Unlock()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		eo.bufferMutex.Lock()
		eo.showStatusBar = !eo.showStatusBar
		eo.bufferMutex.Unlock()
	}
	eo.handleKeyboardInput()
	return nil
}

// SetReloadHandler sets the action for Ctrl+R (reload the page source).
func (eo *EbitenOutput) SetReloadHandler(fn func()) {
	eo.bufferMutex.Lock()
	eo.reloadHandler = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) SetKeyHandler(fn func(byte)) {
	eo.bufferMutex.Lock()
	eo.keyHandler = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) SetPasteHandler(fn func(string)) {
	eo.bufferMutex.Lock()
	eo.pasteHandler = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) SetCopySource(fn func() string) {
	eo.bufferMutex.Lock()
	eo.copySource = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) SetStatusSource(fn func() StatusInfo) {
	eo.bufferMutex.Lock()
	eo.statusSource = fn
	eo.bufferMutex.Unlock()
}

func (eo *EbitenOutput) emitByte(b byte) {
	eo.bufferMutex.RLock()
	handler := eo.keyHandler
	eo.bufferMutex.RUnlock()
	if handler != nil {
		handler(b)
	}
}

func (eo *EbitenOutput) emitSeq(seq []byte) {
	for _, b := range seq {
		eo.emitByte(b)
	}
}

var specialKeys = []ebiten.Key{
	ebiten.KeyEnter,
	ebiten.KeyNumpadEnter,
	ebiten.KeyBackspace,
	ebiten.KeyTab,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowLeft,
	ebiten.KeyHome,
	ebiten.KeyDelete,
	ebiten.KeyF1,
	ebiten.KeyF2,
	ebiten.KeyF3,
	ebiten.KeyF4,
	ebiten.KeyF5,
	ebiten.KeyF6,
	ebiten.KeyF7,
	ebiten.KeyF8,
	ebiten.KeyF9,
	ebiten.KeyF10,
}

func (eo *EbitenOutput) handleKeyboardInput() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		eo.handleClipboardPaste()
	}
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.handleClipboardCopy()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		eo.handleReload()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyL) {
		eo.emitByte(STREAM_FF)
	}

	eo.bufferMutex.RLock()
	hasHandler := eo.keyHandler != nil
	eo.bufferMutex.RUnlock()
	if !hasHandler || ctrl {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if b, ok := runeToInputByte(r); ok {
			eo.emitByte(b)
		}
	}

	for _, key := range specialKeys {
		if inpututil.IsKeyJustPressed(key) {
			if seq, ok := translateSpecialKey(key, shift); ok {
				eo.emitSeq(seq)
			}
		}
	}
}

// runeToInputByte maps a typed character to the code that displays it.
func runeToInputByte(r rune) (byte, bool) {
	switch r {
	case '£':
		return '`', true
	case '÷':
		return '~', true
	case '½':
		return '\\', true
	}
	if r < 0x20 || r >= 0x7F {
		return 0, false
	}
	return byte(r), true
}

// translateSpecialKey maps editing and function keys to stream bytes. F1-F7
// enter alphanumeric colours (mosaic colours with Shift); F8-F10 enter the
// flash, height and background codes.
func translateSpecialKey(key ebiten.Key, shift bool) ([]byte, bool) {
	if key >= ebiten.KeyF1 && key <= ebiten.KeyF7 {
		code := byte(TTXT_ALPHA_RED + int(key-ebiten.KeyF1))
		if shift {
			code += TTXT_MOSAIC_BLACK
		}
		return []byte{0x80 | code}, true
	}
	pick := func(plain, shifted byte) []byte {
		if shift {
			return []byte{0x80 | shifted}
		}
		return []byte{0x80 | plain}
	}
	switch key {
	case ebiten.KeyF8:
		return pick(TTXT_FLASH, TTXT_STEADY), true
	case ebiten.KeyF9:
		return pick(TTXT_DOUBLE_HEIGHT, TTXT_NORMAL_HEIGHT), true
	case ebiten.KeyF10:
		return pick(TTXT_NEW_BACKGROUND, TTXT_BLACK_BACKGROUND), true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return []byte{STREAM_CR, STREAM_LF}, true
	case ebiten.KeyBackspace:
		return []byte{STREAM_DEL}, true
	case ebiten.KeyTab, ebiten.KeyArrowRight:
		return []byte{STREAM_TAB}, true
	case ebiten.KeyArrowUp:
		return []byte{STREAM_VT}, true
	case ebiten.KeyArrowDown:
		return []byte{STREAM_LF}, true
	case ebiten.KeyArrowLeft:
		return []byte{STREAM_BS}, true
	case ebiten.KeyHome:
		return []byte{STREAM_HOME}, true
	case ebiten.KeyDelete:
		return []byte{TTXT_SPACE, STREAM_BS}, true
	default:
		return nil, false
	}
}

func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	return raw[:max]
}

func (eo *EbitenOutput) initClipboard() bool {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	return eo.clipboardOK
}

func (eo *EbitenOutput) handleClipboardPaste() {
	eo.bufferMutex.RLock()
	handler := eo.pasteHandler
	eo.bufferMutex.RUnlock()
	if handler == nil || !eo.initClipboard() {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	data = normalizePasteText(data)
	data = capPasteText(data, PASTE_LIMIT)
	handler(string(data))
}

func (eo *EbitenOutput) handleClipboardCopy() {
	eo.bufferMutex.RLock()
	source := eo.copySource
	eo.bufferMutex.RUnlock()
	if source == nil || !eo.initClipboard() {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(source()))
}

func (eo *EbitenOutput) handleReload() {
	if !eo.reloadInProgress.CompareAndSwap(false, true) {
		return
	}
	eo.bufferMutex.RLock()
	handler := eo.reloadHandler
	eo.bufferMutex.RUnlock()
	if handler == nil {
		eo.reloadInProgress.Store(false)
		return
	}
	go func() {
		defer eo.reloadInProgress.Store(false)
		handler()
	}()
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}

	eo.bufferMutex.RLock()
	eo.window.WritePixels(eo.frameBuffer)
	showStatusBar := eo.showStatusBar
	status := eo.statusSource
	eo.bufferMutex.RUnlock()
	screen.DrawImage(eo.window, nil)
	if showStatusBar && status != nil {
		eo.drawStatusBar(screen, status())
	}

	atomic.AddUint64(&eo.frameCount, 1)
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.width, eo.height
}

type statusToken struct {
	name    string
	enabled bool
}

func drawStatusLine(screen *ebiten.Image, x, baselineY int, label string, tokens []statusToken) {
	face := basicfont.Face7x13
	labelColor := color.RGBA{190, 190, 190, 255}
	offColor := color.RGBA{120, 120, 120, 255}
	onColor := color.RGBA{0, 220, 90, 255}

	text.Draw(screen, label, face, x, baselineY, labelColor)
	cursorX := x + text.BoundString(face, label).Dx() + 6

	for _, token := range tokens {
		c := offColor
		if token.enabled {
			c = onColor
		}
		text.Draw(screen, token.name, face, cursorX, baselineY, c)
		cursorX += text.BoundString(face, token.name).Dx() + 8
	}
}

// statusTokens formats the page state for the status bar.
func statusTokens(s StatusInfo) []statusToken {
	w := s.Window
	return []statusToken{
		{name: "FLASH", enabled: s.Flash},
		{name: "|", enabled: false},
		{name: fmt.Sprintf("CUR %02d,%02d", s.CursorCol, s.CursorRow), enabled: true},
		{name: "|", enabled: false},
		{name: fmt.Sprintf("WIN %d,%d-%d,%d", w.Left, w.Top, w.Right, w.Bottom), enabled: !w.IsFull()},
	}
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image, s StatusInfo) {
	barHeight := 31
	if barHeight >= eo.height {
		return
	}
	y := eo.height - barHeight
	ebitenutil.DrawRect(screen, 0, float64(y), float64(eo.width), float64(barHeight), color.RGBA{0, 0, 0, 180})

	source := s.Source
	if source == "" {
		source = "(blank)"
	}
	drawStatusLine(screen, 6, y+13, "PAGE ", append([]statusToken{{name: source, enabled: true}}, statusTokens(s)...))

	legendColor := color.RGBA{160, 160, 160, 255}
	legend := "F1-F7 Colour  F8 Flash  F9 Height  F10 Bg  F11 Fullscreen  F12 Status"
	legendX := max(eo.width-text.BoundString(basicfont.Face7x13, legend).Dx()-6, 6)
	text.Draw(screen, legend, basicfont.Face7x13, legendX, y+26, legendColor)
}
