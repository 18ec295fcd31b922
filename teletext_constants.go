// teletext_constants.go - Teletext Level-1 page decoder constants

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
teletext_constants.go - Teletext Page Decoder Constants

This file defines the page geometry, glyph cell dimensions, control code values
and colour palette used by the teletext decoder. The decoder follows the World
System Teletext Level-1 presentation rules: a 40x25 grid of 7-bit codes where
0x00-0x1F are spacing control codes and 0x20-0x7F are displayable.

Display Specifications:
  - Page: 40 columns x 25 rows (1000 cells)
  - Glyph cell: 16x19 pixels, 2 bytes per pixel row (38 bytes per glyph)
  - Frame: 640x475 pixels
  - Colours: 8 (black, red, green, yellow, blue, magenta, cyan, white)
  - Flash rate: toggle every 25 frames at 50Hz

Control Code Map (value & 0x7F):
  0x01-0x07  Alphanumeric colour (set-after)
  0x08/0x09  Flash / Steady
  0x0C/0x0D  Normal height / Double height
  0x11-0x17  Mosaic colour (set-after)
  0x18       Conceal
  0x19/0x1A  Contiguous / Separated mosaics
  0x1C/0x1D  Black background / New background
  0x1E/0x1F  Hold mosaics / Release mosaics
*/

package main

import "time"

// =============================================================================
// Page Geometry
// =============================================================================

const (
	TTXT_COLS  = 40
	TTXT_ROWS  = 25
	TTXT_CELLS = TTXT_COLS * TTXT_ROWS // 1000

	TTXT_LAST_COL = TTXT_COLS - 1
	TTXT_LAST_ROW = TTXT_ROWS - 1
)

// =============================================================================
// Glyph Geometry
// =============================================================================

const (
	// Target glyphs: 16x19, two bytes per pixel row (left half first)
	TTXT_GLYPH_WIDTH  = 16
	TTXT_GLYPH_HEIGHT = 19
	TTXT_GLYPH_BYTES  = TTXT_GLYPH_HEIGHT * 2 // 38

	// Base font glyphs are 16x20; the last (blank) row is dropped
	TTXT_BASE_GLYPH_HEIGHT = 20

	// Slots per glyph table: 0x20-0x7F text, 0x80-0xFF mosaics
	TTXT_GLYPH_SLOTS = 256

	// Frame dimensions
	TTXT_FRAME_WIDTH  = TTXT_COLS * TTXT_GLYPH_WIDTH  // 640
	TTXT_FRAME_HEIGHT = TTXT_ROWS * TTXT_GLYPH_HEIGHT // 475
	TTXT_FRAME_STRIDE = TTXT_FRAME_WIDTH * 4
)

// =============================================================================
// Control Codes
// =============================================================================

const (
	TTXT_ALPHA_BLACK   = 0x00
	TTXT_ALPHA_RED     = 0x01
	TTXT_ALPHA_GREEN   = 0x02
	TTXT_ALPHA_YELLOW  = 0x03
	TTXT_ALPHA_BLUE    = 0x04
	TTXT_ALPHA_MAGENTA = 0x05
	TTXT_ALPHA_CYAN    = 0x06
	TTXT_ALPHA_WHITE   = 0x07

	TTXT_FLASH  = 0x08
	TTXT_STEADY = 0x09

	TTXT_END_BOX   = 0x0A
	TTXT_START_BOX = 0x0B

	TTXT_NORMAL_HEIGHT = 0x0C
	TTXT_DOUBLE_HEIGHT = 0x0D

	TTXT_MOSAIC_BLACK   = 0x10
	TTXT_MOSAIC_RED     = 0x11
	TTXT_MOSAIC_GREEN   = 0x12
	TTXT_MOSAIC_YELLOW  = 0x13
	TTXT_MOSAIC_BLUE    = 0x14
	TTXT_MOSAIC_MAGENTA = 0x15
	TTXT_MOSAIC_CYAN    = 0x16
	TTXT_MOSAIC_WHITE   = 0x17

	TTXT_CONCEAL          = 0x18
	TTXT_CONTIGUOUS       = 0x19
	TTXT_SEPARATED        = 0x1A
	TTXT_ESC              = 0x1B
	TTXT_BLACK_BACKGROUND = 0x1C
	TTXT_NEW_BACKGROUND   = 0x1D
	TTXT_HOLD_MOSAICS     = 0x1E
	TTXT_RELEASE_MOSAICS  = 0x1F
)

const (
	// Codes with bits 5 and 6 clear are control codes (0x00-0x1F, 0x80-0x9F)
	TTXT_CONTROL_MASK = 0x60

	// Bit 5 selects a mosaic for a displayable code in graphics mode
	TTXT_MOSAIC_BIT = 0x20

	// Offsets from a displayable code to its mosaic slot
	TTXT_CONTIGUOUS_OFFSET = 96  // 0x20-0x3F -> 0x80-0x9F, 0x60-0x7F -> 0xC0-0xDF
	TTXT_SEPARATED_OFFSET  = 128 // 0x20-0x3F -> 0xA0-0xBF, 0x60-0x7F -> 0xE0-0xFF

	// Mosaic banks in the glyph tables
	TTXT_MOSAIC_CONTIG_LOW  = 0x80
	TTXT_MOSAIC_SEP_LOW     = 0xA0
	TTXT_MOSAIC_CONTIG_HIGH = 0xC0
	TTXT_MOSAIC_SEP_HIGH    = 0xE0

	TTXT_SPACE = 0x20
)

// =============================================================================
// Timing
// =============================================================================

const (
	// Flash toggle interval in frames at 50Hz
	TTXT_FLASH_FRAMES = 25

	// Frame ticker period for the device render loop (50Hz)
	TTXT_REFRESH_INTERVAL = 20 * time.Millisecond
)

// =============================================================================
// Colour Palette
// =============================================================================

// TTXTPalette holds the RGB values for the eight teletext colours, indexed by
// the low three bits of the colour control codes.
var TTXTPalette = [8][3]uint8{
	{0, 0, 0},       // 0: Black
	{255, 0, 0},     // 1: Red
	{0, 255, 0},     // 2: Green
	{255, 255, 0},   // 3: Yellow
	{0, 0, 255},     // 4: Blue
	{255, 0, 255},   // 5: Magenta
	{0, 255, 255},   // 6: Cyan
	{255, 255, 255}, // 7: White
}
