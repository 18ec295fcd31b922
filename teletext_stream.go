// teletext_stream.go - Cursor-driven byte stream into a teletext page

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

// Stream control bytes understood by PageWriter
const (
	STREAM_BS   = 0x08
	STREAM_TAB  = 0x09
	STREAM_LF   = 0x0A
	STREAM_VT   = 0x0B
	STREAM_FF   = 0x0C
	STREAM_CR   = 0x0D
	STREAM_HOME = 0x1E
	STREAM_DEL  = 0x7F
)

// PageTarget is the part of the decoder a PageWriter drives.
type PageTarget interface {
	WriteCell(x, y int, c byte)
	Clear()
	Scroll()
	Window() Window
}

// PageWriter turns a byte stream into cell writes at a text cursor that
// stays inside the target's window. Bytes 0x20-0x7E are written as they are;
// 0x80-0xFF are written as their 7-bit value, which is how teletext control
// codes (0x80-0x9F) enter the page. Writing past the window's last row
// scrolls the window.
type PageWriter struct {
	target   PageTarget
	col, row int
}

func NewPageWriter(target PageTarget) *PageWriter {
	w := &PageWriter{target: target}
	w.Home()
	return w
}

// Cursor returns the cursor cell.
func (w *PageWriter) Cursor() (col, row int) {
	w.clamp()
	return w.col, w.row
}

// MoveTo places the cursor, clamped to the window.
func (w *PageWriter) MoveTo(col, row int) {
	w.col, w.row = col, row
	w.clamp()
}

// Home moves the cursor to the window's top left cell.
func (w *PageWriter) Home() {
	win := w.target.Window()
	w.col, w.row = win.Left, win.Top
}

func (w *PageWriter) clamp() {
	win := w.target.Window()
	w.col = max(win.Left, min(w.col, win.Right))
	w.row = max(win.Top, min(w.row, win.Bottom))
}

func (w *PageWriter) put(c byte) {
	w.target.WriteCell(w.col*TTXT_GLYPH_WIDTH, w.row*TTXT_GLYPH_HEIGHT, c)
}

func (w *PageWriter) advance() {
	win := w.target.Window()
	w.col++
	if w.col > win.Right {
		w.col = win.Left
		w.lineFeed()
	}
}

func (w *PageWriter) lineFeed() {
	win := w.target.Window()
	w.row++
	if w.row > win.Bottom {
		w.target.Scroll()
		w.row = win.Bottom
	}
}

func (w *PageWriter) backspace() {
	win := w.target.Window()
	w.col--
	if w.col < win.Left {
		w.col = win.Right
		if w.row > win.Top {
			w.row--
		}
	}
}

// WriteByte feeds one byte.
func (w *PageWriter) WriteByte(b byte) error {
	w.clamp()
	switch {
	case b >= 0x20 && b < STREAM_DEL, b >= 0x80:
		w.put(b & 0x7F)
		w.advance()
	case b == STREAM_DEL:
		w.backspace()
		w.put(TTXT_SPACE)
	case b == STREAM_BS:
		w.backspace()
	case b == STREAM_TAB:
		w.advance()
	case b == STREAM_LF:
		w.lineFeed()
	case b == STREAM_VT:
		if w.row > w.target.Window().Top {
			w.row--
		}
	case b == STREAM_FF:
		w.target.Clear()
		w.Home()
	case b == STREAM_CR:
		w.col = w.target.Window().Left
	case b == STREAM_HOME:
		w.Home()
	}
	return nil
}

// Write implements io.Writer.
func (w *PageWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = w.WriteByte(b)
	}
	return len(p), nil
}

// WriteString feeds the bytes of s.
func (w *PageWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}
