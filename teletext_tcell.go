// teletext_tcell.go - Terminal rendering surface using tcell

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
	"github.com/gdamore/tcell/v2"
)

type tcellCell struct {
	r     rune
	style tcell.Style
}

// TcellSurface draws the page into a tcell screen, one terminal cell per
// teletext cell. Mosaics become Unicode block sextants; double height text
// shows on its top row and leaves the bottom row blank.
type TcellSurface struct {
	screen tcell.Screen
	x0, y0 int
	kind   GlyphTableKind
	fg, bg Colour
	cells  [TTXT_ROWS][TTXT_COLS]tcellCell
}

// NewTcellSurface draws with the page's top left cell at (x0, y0).
func NewTcellSurface(screen tcell.Screen, x0, y0 int) *TcellSurface {
	s := &TcellSurface{screen: screen, x0: x0, y0: y0, fg: ColourWhite, bg: ColourBlack}
	s.ClearSurface()
	return s
}

func tcellColour(c Colour) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func tcellStyle(fg, bg Colour) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColour(fg)).Background(tcellColour(bg))
}

func (s *TcellSurface) SelectGlyphSource(table *GlyphTable) {
	if table == nil {
		s.kind = GlyphTableNormal
		return
	}
	s.kind = table.Kind
}

func (s *TcellSurface) SetForeground(c Colour) { s.fg = c }
func (s *TcellSurface) SetBackground(c Colour) { s.bg = c }

// stretchPattern returns the sextant pattern of the upper or lower half of a
// mosaic stretched to full height.
func stretchPattern(p byte, kind GlyphTableKind) byte {
	top := p & 3
	mid := p >> 2 & 3
	bot := p >> 4 & 3
	switch kind {
	case GlyphTableTop:
		return top | top<<2 | mid<<4
	case GlyphTableBottom:
		return mid | bot<<2 | bot<<4
	}
	return p
}

// glyphRune returns the terminal character for slot drawn from a table of
// the given kind.
func glyphRune(slot byte, kind GlyphTableKind) rune {
	if p, _, ok := MosaicPattern(slot); ok {
		return SextantRune(stretchPattern(p, kind))
	}
	if kind == GlyphTableBottom {
		return ' '
	}
	return SlotRune(slot)
}

func (s *TcellSurface) put(col, row int, c tcellCell) {
	s.cells[row][col] = c
	s.screen.SetContent(s.x0+col, s.y0+row, c.r, nil, c.style)
}

func (s *TcellSurface) DrawGlyph(cellX, cellY int, code byte) {
	if !inGrid(cellX, cellY) {
		return
	}
	s.put(cellX, cellY, tcellCell{r: glyphRune(code, s.kind), style: tcellStyle(s.fg, s.bg)})
}

func (s *TcellSurface) ClearSurface() {
	blank := tcellCell{r: ' ', style: tcellStyle(ColourWhite, ColourBlack)}
	for row := range TTXT_ROWS {
		for col := range TTXT_COLS {
			s.put(col, row, blank)
		}
	}
}

func (s *TcellSurface) ScrollSurface(rows int) {
	if rows <= 0 {
		return
	}
	blank := tcellCell{r: ' ', style: tcellStyle(ColourWhite, ColourBlack)}
	for row := range TTXT_ROWS {
		for col := range TTXT_COLS {
			c := blank
			if row+rows < TTXT_ROWS {
				c = s.cells[row+rows][col]
			}
			s.put(col, row, c)
		}
	}
}

// Show flushes pending cell updates to the terminal.
func (s *TcellSurface) Show() {
	s.screen.Show()
}
