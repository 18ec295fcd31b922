// teletext_surface.go - Rendering surface interface for the teletext decoder

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
	"errors"
	"fmt"
)

// Colour is one of the eight teletext colours.
type Colour uint8

const (
	ColourBlack Colour = iota
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMagenta
	ColourCyan
	ColourWhite
)

var colourNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Colour) String() string {
	return colourNames[c&0x07]
}

// RGB returns the palette entry for the colour.
func (c Colour) RGB() (r, g, b uint8) {
	p := TTXTPalette[c&0x07]
	return p[0], p[1], p[2]
}

// RGBA32 packs the colour as little-endian RGBA (R in the low byte).
func (c Colour) RGBA32() uint32 {
	r, g, b := c.RGB()
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF000000
}

// TeletextSurface is the drawing capability the decoder renders through.
// Glyph blitting, colour application and pixel-level scroll/clear belong to
// the implementation; the decoder only says what goes in which cell.
type TeletextSurface interface {
	SelectGlyphSource(table *GlyphTable)
	SetForeground(c Colour)
	SetBackground(c Colour)

	// DrawGlyph draws one 16x19 cell using the current colours and table.
	DrawGlyph(cellX, cellY int, code byte)

	ClearSurface()

	// ScrollSurface moves the picture up by rows cell rows and blanks the
	// vacated rows with black.
	ScrollSurface(rows int)
}

var (
	// ErrTeletextInit marks an engine or glyph set that could not be built.
	ErrTeletextInit = errors.New("teletext initialization failed")

	// ErrFontFormat marks malformed base font input.
	ErrFontFormat = errors.New("malformed font data")

	// ErrPageFormat marks malformed page file input.
	ErrPageFormat = errors.New("malformed page data")
)

// TeletextError provides detailed error context for decoder operations
type TeletextError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *TeletextError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("teletext %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("teletext %s failed: %s", e.Operation, e.Details)
}

func (e *TeletextError) Unwrap() error {
	return e.Err
}
