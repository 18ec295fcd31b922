// teletext_line.go - Control code interpreter and line renderer

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

// renderFlags are the attribute bits active at the current column.
type renderFlags uint8

const (
	flagFlash renderFlags = 1 << iota
	flagConceal
	flagHeight
	flagGraphics
	flagSeparated
	flagHold
	flagBottomRow // row is the lower half of a double height pair
)

// RenderState is rebuilt from column 0 on every line pass.
type RenderState struct {
	fg, bg Colour
	flags  renderFlags
	table  *GlyphTable
	held   byte // last mosaic slot, TTXT_SPACE when none
}

func (s *RenderState) has(f renderFlags) bool { return s.flags&f != 0 }
func (s *RenderState) set(f renderFlags)      { s.flags |= f }
func (s *RenderState) clear(f renderFlags)    { s.flags &^= f }

func (t *Teletext) resetState(row int) {
	t.state = RenderState{
		fg:    ColourWhite,
		bg:    ColourBlack,
		table: t.glyphs.Normal,
		held:  TTXT_SPACE,
	}
	if t.page.Height(row) == HeightBottom {
		t.state.set(flagBottomRow)
	}
}

// mosaicSlot returns the glyph slot of displayable code c in graphics mode
// and whether c selects a mosaic at all.
func mosaicSlot(c byte, separated bool) (byte, bool) {
	c &= 0x7F
	if c&TTXT_MOSAIC_BIT == 0 {
		return c, false
	}
	if separated {
		return c + TTXT_SEPARATED_OFFSET, true
	}
	return c + TTXT_CONTIGUOUS_OFFSET, true
}

// resolveGlyph maps a displayable code to its glyph slot under the current
// state. '#', '_' and '`' rotate so each shows the glyph stored in the next
// slot of the cycle.
func (s *RenderState) resolveGlyph(c byte) byte {
	c &= 0x7F
	if s.has(flagGraphics) {
		if slot, ok := mosaicSlot(c, s.has(flagSeparated)); ok {
			return slot
		}
	}
	// Mosaic codes never reach the cycle.
	switch c {
	case '#':
		return '_'
	case '_':
		return '`'
	case '`':
		return '#'
	}
	return c
}

// heldAfter returns the held mosaic once displayable code c has been drawn.
func (s *RenderState) heldAfter(c byte) byte {
	if s.has(flagGraphics) {
		if slot, ok := mosaicSlot(c, s.has(flagSeparated)); ok {
			return slot
		}
	}
	return TTXT_SPACE
}

// blanked reports whether the current cell must show as a space.
func (t *Teletext) blanked() bool {
	s := &t.state
	if s.has(flagConceal) {
		return true
	}
	if s.has(flagBottomRow) && !s.has(flagHeight) {
		return true
	}
	return s.has(flagFlash) && !t.flashPhase
}

func (t *Teletext) drawSlot(col, row int, slot byte) {
	if t.blanked() {
		slot = TTXT_SPACE
	}
	t.surface.SelectGlyphSource(t.state.table)
	t.surface.SetForeground(t.state.fg)
	t.surface.SetBackground(t.state.bg)
	t.surface.DrawGlyph(col, row, slot)
}

// applySetAt applies the effects of control code c that are visible in the
// control cell itself. It returns true when the row below needs a redraw.
func (t *Teletext) applySetAt(row int, c byte) bool {
	s := &t.state
	switch c {
	case TTXT_FLASH:
		s.set(flagFlash)
	case TTXT_STEADY:
		s.clear(flagFlash)
	case TTXT_NORMAL_HEIGHT:
		s.clear(flagHeight)
		s.table = t.glyphs.Normal
	case TTXT_DOUBLE_HEIGHT:
		s.set(flagHeight)
		switch t.page.Height(row) {
		case HeightNone:
			t.page.SetHeight(row, HeightTop)
			s.table = t.glyphs.Top
			if row < TTXT_LAST_ROW {
				t.page.SetHeight(row+1, HeightBottom)
				return true
			}
		case HeightTop:
			s.table = t.glyphs.Top
		case HeightBottom:
			s.table = t.glyphs.Bottom
		}
	case TTXT_CONCEAL:
		s.set(flagConceal)
	case TTXT_CONTIGUOUS:
		s.clear(flagSeparated)
	case TTXT_SEPARATED:
		s.set(flagSeparated)
	case TTXT_BLACK_BACKGROUND:
		s.bg = ColourBlack
		s.clear(flagConceal)
	case TTXT_NEW_BACKGROUND:
		s.bg = s.fg
		s.clear(flagConceal)
	case TTXT_HOLD_MOSAICS:
		s.set(flagHold)
	case TTXT_RELEASE_MOSAICS:
		s.clear(flagHold)
	}
	return false
}

// applySetAfter applies the effects of control code c that start at the
// next cell.
func (t *Teletext) applySetAfter(c byte) {
	s := &t.state
	switch {
	case c >= TTXT_ALPHA_RED && c <= TTXT_ALPHA_WHITE:
		s.fg = Colour(c)
		if s.has(flagGraphics) {
			s.held = TTXT_SPACE
		}
		s.clear(flagGraphics)
	case c >= TTXT_MOSAIC_RED && c <= TTXT_MOSAIC_WHITE:
		s.fg = Colour(c - TTXT_MOSAIC_BLACK)
		s.set(flagGraphics)
		s.clear(flagSeparated)
	}
}

// controlCell interprets control code c at (col, row), drawing the cell when
// redraw is set. It reports whether the row below needs a redraw.
func (t *Teletext) controlCell(col, row int, c byte, redraw bool) bool {
	cascade := t.applySetAt(row, c)
	if redraw {
		slot := byte(TTXT_SPACE)
		if t.state.has(flagHold) {
			slot = t.state.held
		}
		t.drawSlot(col, row, slot)
	}
	t.applySetAfter(c)
	return cascade
}

// displayCell draws displayable code c at (col, row) when redraw is set and
// updates the held mosaic.
func (t *Teletext) displayCell(col, row int, c byte, redraw bool) {
	if redraw {
		t.drawSlot(col, row, t.state.resolveGlyph(c))
	}
	t.state.held = t.state.heldAfter(c)
}

// processLine rebuilds the render state of row from column 0 and walks the
// first through cells, drawing them when redraw is set.
//
// In flashOnly mode the walk starts silent; a flash code switches drawing on
// for the cells that follow and a steady code switches it off again. Flash
// passes never cascade into the row below.
func (t *Teletext) processLine(row, through int, redraw, flashOnly bool) {
	if row < 0 || row >= TTXT_ROWS {
		return
	}
	through = min(through, TTXT_COLS)
	t.resetState(row)

	cascade := false
	for col := range through {
		c := t.page.Cell(col, row)
		if !IsControlCode(c) {
			t.displayCell(col, row, c, redraw)
			continue
		}
		c &= 0x7F
		if flashOnly {
			switch c {
			case TTXT_FLASH:
				redraw = true
			case TTXT_STEADY:
				redraw = false
			}
		}
		if t.controlCell(col, row, c, redraw) {
			cascade = true
		}
	}

	if redraw && cascade && !flashOnly && row+1 < TTXT_ROWS {
		t.processLine(row+1, TTXT_COLS, true, false)
	}
}
