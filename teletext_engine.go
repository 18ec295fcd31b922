// teletext_engine.go - Teletext Level-1 page decoder

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
teletext_engine.go - Teletext Page Decoder

The decoder keeps a 40x25 page of 7-bit codes and renders it through a
TeletextSurface. Every row is interpreted left to right from a default state
(white on black, normal height), so the appearance of a cell depends on the
control codes before it in the same row and, for double height, on the row
above.

Redraw policy for single cell writes:
  - control code written or overwritten: the whole row is redrawn
  - displayable code continuing the last write: the cell is drawn directly
  - any other displayable write: the row state is rebuilt silently up to the
    cell, then the cell is drawn

The decoder is synchronous and not safe for concurrent use; TeletextVideo
serializes access for the host.
*/

package main

const noCursor = -1

// Teletext is the page decoder.
type Teletext struct {
	surface TeletextSurface
	glyphs  *GlyphSet
	page    PageBuffer
	state   RenderState
	window  Window

	flashPhase bool

	// Edit cursor: last cell written through the single cell path
	lastRow, lastCol int
}

// NewTeletext builds the glyph set from font and returns a decoder with a
// blank page. The surface is cleared.
func NewTeletext(surface TeletextSurface, font BaseFont) (*Teletext, error) {
	if surface == nil {
		return nil, &TeletextError{Operation: "init", Details: "no surface", Err: ErrTeletextInit}
	}
	glyphs, err := BuildGlyphSet(font)
	if err != nil {
		return nil, err
	}
	return NewTeletextWithGlyphs(surface, glyphs)
}

// NewTeletextWithGlyphs returns a decoder sharing an already built glyph set.
func NewTeletextWithGlyphs(surface TeletextSurface, glyphs *GlyphSet) (*Teletext, error) {
	if surface == nil {
		return nil, &TeletextError{Operation: "init", Details: "no surface", Err: ErrTeletextInit}
	}
	if glyphs == nil || glyphs.Normal == nil || glyphs.Top == nil || glyphs.Bottom == nil {
		return nil, &TeletextError{Operation: "init", Details: "incomplete glyph set", Err: ErrTeletextInit}
	}
	t := &Teletext{
		surface:    surface,
		glyphs:     glyphs,
		window:     FullWindow(),
		flashPhase: true,
	}
	t.resetState(0)
	t.Clear()
	return t, nil
}

func pixelToCell(x, y int) (col, row int) {
	if x < 0 || y < 0 {
		return -1, -1
	}
	return x / TTXT_GLYPH_WIDTH, y / TTXT_GLYPH_HEIGHT
}

// GetCell returns the code under pixel (x, y), or 0 outside the page.
func (t *Teletext) GetCell(x, y int) byte {
	col, row := pixelToCell(x, y)
	return t.page.Cell(col, row)
}

// WriteCell stores c in the cell under pixel (x, y) and redraws what the
// change affects. Writes outside the page are ignored.
func (t *Teletext) WriteCell(x, y int, c byte) {
	col, row := pixelToCell(x, y)
	t.writeCell(col, row, c)
}

func (t *Teletext) invalidateCursor() {
	t.lastRow, t.lastCol = noCursor, noCursor
}

func (t *Teletext) writeCell(col, row int, c byte) {
	if !inGrid(col, row) {
		return
	}
	old := t.page.SetCell(col, row, c)

	if IsControlCode(c) || IsControlCode(old) {
		t.processLine(row, TTXT_COLS, true, false)
		t.invalidateCursor()
		return
	}

	if row != t.lastRow || col != t.lastCol+1 {
		t.processLine(row, col, false, false)
	}
	t.lastRow, t.lastCol = row, col

	heldOld := t.state.heldAfter(old)
	t.displayCell(col, row, c, true)
	if t.state.held != heldOld && t.heldShownAfter(col, row) {
		// A later control cell shows the held mosaic; it changed.
		t.processLine(row, TTXT_COLS, true, false)
		t.processLine(row, col+1, false, false)
	}
}

// heldShownAfter reports whether any control cell in the run directly after
// col could display the held mosaic.
func (t *Teletext) heldShownAfter(col, row int) bool {
	hold := t.state.has(flagHold)
	for c := col + 1; c < TTXT_COLS; c++ {
		v := t.page.Cell(c, row)
		if !IsControlCode(v) {
			return false
		}
		switch v & 0x7F {
		case TTXT_HOLD_MOSAICS:
			hold = true
		case TTXT_RELEASE_MOSAICS:
			hold = false
		}
		if hold {
			return true
		}
	}
	return false
}

// Clear blanks the window and redraws it.
func (t *Teletext) Clear() {
	t.invalidateCursor()
	if t.window.IsFull() {
		t.page.Blank()
		t.surface.ClearSurface()
		return
	}
	t.page.BlankRange(t.window)
	for row := t.window.Top; row <= t.window.Bottom; row++ {
		t.processLine(row, TTXT_COLS, true, false)
	}
}

// Scroll moves the window contents up by one row and blanks its last row.
func (t *Teletext) Scroll() {
	t.invalidateCursor()
	if t.window.IsFull() {
		t.page.ScrollUp()
		t.surface.ScrollSurface(1)
		if t.page.Height(0) != HeightNone {
			t.processLine(0, TTXT_COLS, true, false)
		}
		return
	}
	t.page.ScrollWindowUp(t.window)
	for row := t.window.Top; row <= t.window.Bottom; row++ {
		t.processLine(row, TTXT_COLS, true, false)
	}
}

// SetFlashPhase sets whether flashing cells are visible and redraws the
// flashing runs of every row that has one.
func (t *Teletext) SetFlashPhase(on bool) {
	t.flashPhase = on
	updated := false
	for row := range TTXT_ROWS {
		if t.page.RowHasCode(row, TTXT_FLASH) {
			t.processLine(row, TTXT_COLS, false, true)
			updated = true
		}
	}
	if updated && t.lastRow != noCursor {
		// Rebuild the fast path state; each draw sets its own colours.
		t.processLine(t.lastRow, t.lastCol+1, false, false)
	}
}

// FlashPhase returns the current flash phase.
func (t *Teletext) FlashPhase() bool {
	return t.flashPhase
}

// SetWindow sets the clear/scroll window in cell coordinates. Windows that
// are empty or leave the page are ignored.
func (t *Teletext) SetWindow(left, bottom, right, top int) {
	w := Window{Left: left, Right: right, Top: top, Bottom: bottom}
	if !w.Valid() {
		return
	}
	t.window = w
}

// Window returns the clear/scroll window.
func (t *Teletext) Window() Window {
	return t.window
}

// EditCursor returns the last cell written through the single cell path and
// false when there is none.
func (t *Teletext) EditCursor() (col, row int, ok bool) {
	if t.lastRow == noCursor {
		return 0, 0, false
	}
	return t.lastCol, t.lastRow, true
}

// Height returns the double height status of row.
func (t *Teletext) Height(row int) DoubleHeightStatus {
	return t.page.Height(row)
}

// Page returns the page as 1000 row-major bytes.
func (t *Teletext) Page() []byte {
	return t.page.Bytes()
}

// Glyphs returns the decoder's glyph set.
func (t *Teletext) Glyphs() *GlyphSet {
	return t.glyphs
}

// LoadPage replaces the whole page with data (row-major, up to 1000 bytes,
// short data leaves the rest blank) and redraws it.
func (t *Teletext) LoadPage(data []byte) {
	t.invalidateCursor()
	t.page.Blank()
	for i, c := range data {
		if i >= TTXT_CELLS {
			break
		}
		t.page.SetCell(i%TTXT_COLS, i/TTXT_COLS, c)
	}
	t.surface.ClearSurface()
	t.Refresh()
}

// Refresh redraws every row from its stored codes.
func (t *Teletext) Refresh() {
	t.invalidateCursor()
	for row := range TTXT_ROWS {
		t.processLine(row, TTXT_COLS, true, false)
	}
}
