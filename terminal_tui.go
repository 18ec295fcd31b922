// terminal_tui.go - Full screen terminal view of the teletext page

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
	"time"

	"github.com/gdamore/tcell/v2"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:tcell")
}

// tcellKeyBytes maps a terminal key event to stream bytes. The function key
// layout matches the window backend.
func tcellKeyBytes(ev *tcell.EventKey) []byte {
	shift := ev.Modifiers()&tcell.ModShift != 0
	key := ev.Key()
	if key >= tcell.KeyF1 && key <= tcell.KeyF7 {
		code := byte(TTXT_ALPHA_RED + int(key-tcell.KeyF1))
		if shift {
			code += TTXT_MOSAIC_BLACK
		}
		return []byte{0x80 | code}
	}
	// Terminals report Shift+F1-F7 as F13-F19.
	if key >= tcell.KeyF13 && key <= tcell.KeyF19 {
		return []byte{0x80 | byte(TTXT_MOSAIC_RED+int(key-tcell.KeyF13))}
	}
	switch key {
	case tcell.KeyF8:
		if shift {
			return []byte{0x80 | TTXT_STEADY}
		}
		return []byte{0x80 | TTXT_FLASH}
	case tcell.KeyF9:
		if shift {
			return []byte{0x80 | TTXT_NORMAL_HEIGHT}
		}
		return []byte{0x80 | TTXT_DOUBLE_HEIGHT}
	case tcell.KeyF10:
		if shift {
			return []byte{0x80 | TTXT_BLACK_BACKGROUND}
		}
		return []byte{0x80 | TTXT_NEW_BACKGROUND}
	case tcell.KeyEnter:
		return []byte{STREAM_CR, STREAM_LF}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{STREAM_DEL}
	case tcell.KeyTab, tcell.KeyRight:
		return []byte{STREAM_TAB}
	case tcell.KeyLeft:
		return []byte{STREAM_BS}
	case tcell.KeyUp:
		return []byte{STREAM_VT}
	case tcell.KeyDown:
		return []byte{STREAM_LF}
	case tcell.KeyHome:
		return []byte{STREAM_HOME}
	case tcell.KeyDelete:
		return []byte{TTXT_SPACE, STREAM_BS}
	case tcell.KeyCtrlL:
		return []byte{STREAM_FF}
	case tcell.KeyRune:
		if b, ok := tuiRuneByte(ev.Rune()); ok {
			return []byte{b}
		}
	}
	return nil
}

func tuiRuneByte(r rune) (byte, bool) {
	if r == '£' {
		return '`', true
	}
	if r < 0x20 || r >= 0x7F {
		return 0, false
	}
	return byte(r), true
}

// TeletextTUI drives a TeletextVideo from a tcell screen.
type TeletextTUI struct {
	screen  tcell.Screen
	surface *TcellSurface
	video   *TeletextVideo
}

func NewTeletextTUI(screen tcell.Screen, surface *TcellSurface, video *TeletextVideo) *TeletextTUI {
	return &TeletextTUI{screen: screen, surface: surface, video: video}
}

// HandleEvent applies one screen event and reports whether the view should
// close.
func (t *TeletextTUI) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return true
		}
		if b := tcellKeyBytes(e); len(b) > 0 {
			_, _ = t.video.Write(b)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// Run polls events until Escape, Ctrl+C or stop is closed, flushing the
// screen at the frame rate.
func (t *TeletextTUI) Run(stop <-chan struct{}) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(TTXT_REFRESH_INTERVAL)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case ev := <-events:
			if t.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.surface.Show()
		}
	}
}
