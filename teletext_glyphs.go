// teletext_glyphs.go - Glyph table construction for the teletext decoder

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

// Glyph is one 16x19 cell bitmap, two bytes per pixel row. Byte 0 of each
// row holds the left eight pixels, most significant bit leftmost.
type Glyph [TTXT_GLYPH_BYTES]byte

// Row returns the left and right bytes of pixel row y.
func (g *Glyph) Row(y int) (left, right byte) {
	return g[y*2], g[y*2+1]
}

func (g *Glyph) setRow(y int, left, right byte) {
	g[y*2] = left
	g[y*2+1] = right
}

// Pixel reports whether the pixel at (x, y) is set.
func (g *Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= TTXT_GLYPH_WIDTH || y < 0 || y >= TTXT_GLYPH_HEIGHT {
		return false
	}
	b := g[y*2+x/8]
	return b&(0x80>>(x%8)) != 0
}

// IsBlank reports whether no pixel is set.
func (g *Glyph) IsBlank() bool {
	for _, b := range g {
		if b != 0 {
			return false
		}
	}
	return true
}

// GlyphTableKind selects one of the three glyph tables.
type GlyphTableKind uint8

const (
	GlyphTableNormal GlyphTableKind = iota
	GlyphTableTop
	GlyphTableBottom
)

func (k GlyphTableKind) String() string {
	switch k {
	case GlyphTableTop:
		return "top"
	case GlyphTableBottom:
		return "bottom"
	default:
		return "normal"
	}
}

// GlyphTable holds 256 glyph slots: 0x20-0x7F text, 0x80-0xFF mosaics.
// Tables are immutable once built.
type GlyphTable struct {
	Kind   GlyphTableKind
	glyphs [TTXT_GLYPH_SLOTS]Glyph
}

// Glyph returns the bitmap stored in slot code.
func (t *GlyphTable) Glyph(code byte) *Glyph {
	return &t.glyphs[code]
}

// GlyphSet is the complete, read-only font used by the decoder.
type GlyphSet struct {
	Normal *GlyphTable
	Top    *GlyphTable
	Bottom *GlyphTable
}

// Table returns the table of the given kind.
func (s *GlyphSet) Table(kind GlyphTableKind) *GlyphTable {
	switch kind {
	case GlyphTableTop:
		return s.Top
	case GlyphTableBottom:
		return s.Bottom
	default:
		return s.Normal
	}
}

// nationalGlyphs maps ASCII slots to the glyph of the national character
// shown there. '_' carries the hash mark; '#' and '`' are swapped into place
// by resolveGlyph at display time.
var nationalGlyphs = [...]struct {
	slot byte
	r    rune
}{
	{'#', '£'},
	{'[', '←'},
	{'\\', '½'},
	{']', '→'},
	{'^', '↑'},
	{'_', '#'},
	{'`', '—'},
	{'{', '¼'},
	{'|', '‖'},
	{'}', '¾'},
	{'~', '÷'},
	{0x7F, '█'},
}

// BuildGlyphSet derives the normal, double-height top and double-height
// bottom tables from a base font.
func BuildGlyphSet(font BaseFont) (*GlyphSet, error) {
	if font == nil {
		return nil, &TeletextError{
			Operation: "glyph build",
			Details:   "no base font",
			Err:       ErrTeletextInit,
		}
	}

	normal := &GlyphTable{Kind: GlyphTableNormal}
	for c := TTXT_SPACE; c < 0x7F; c++ {
		if bg, ok := font.Glyph(rune(c)); ok {
			normal.glyphs[c] = bg.toGlyph()
		}
	}
	for _, n := range nationalGlyphs {
		if bg, ok := font.Glyph(n.r); ok {
			normal.glyphs[n.slot] = bg.toGlyph()
		} else if n.slot == 0x7F {
			normal.glyphs[n.slot] = solidGlyph()
		}
	}

	for i := range 32 {
		normal.glyphs[TTXT_MOSAIC_CONTIG_LOW+i] = mosaicGlyph(byte(i), true)
		normal.glyphs[TTXT_MOSAIC_SEP_LOW+i] = mosaicGlyph(byte(i), false)
		normal.glyphs[TTXT_MOSAIC_CONTIG_HIGH+i] = mosaicGlyph(byte(32+i), true)
		normal.glyphs[TTXT_MOSAIC_SEP_HIGH+i] = mosaicGlyph(byte(32+i), false)
	}

	set := &GlyphSet{
		Normal: normal,
		Top:    doubleHeightTable(normal, GlyphTableTop),
		Bottom: doubleHeightTable(normal, GlyphTableBottom),
	}
	return set, nil
}

func solidGlyph() Glyph {
	var g Glyph
	for y := range TTXT_GLYPH_HEIGHT {
		g.setRow(y, 0xFF, 0xFF)
	}
	return g
}

// Mosaic cells are split into three sub-cell rows. Each sub-cell row has an
// outer pixel row at either end and inner rows between them; separated
// mosaics fill only the inner rows and leave a one pixel column gap.
var mosaicRows = [TTXT_GLYPH_HEIGHT]struct {
	shift uint8
	inner bool
}{
	{0, false}, {0, true}, {0, true}, {0, true}, {0, true}, {0, false},
	{2, false}, {2, true}, {2, true}, {2, true}, {2, true}, {2, true}, {2, false},
	{4, false}, {4, true}, {4, true}, {4, true}, {4, true}, {4, false},
}

func mosaicByte(bit byte, contiguous, inner bool) byte {
	if bit&1 == 0 {
		return 0x00
	}
	if contiguous {
		return 0xFF
	}
	if inner {
		return 0x7E
	}
	return 0x00
}

// mosaicGlyph builds the glyph for a 6-bit pattern. Bit 0 is the top left
// sub-cell, bit 1 top right, down to bit 5 bottom right.
func mosaicGlyph(pattern byte, contiguous bool) Glyph {
	var g Glyph
	for y, r := range mosaicRows {
		p := pattern >> r.shift
		g.setRow(y, mosaicByte(p, contiguous, r.inner), mosaicByte(p>>1, contiguous, r.inner))
	}
	return g
}

// doubleHeightTable stretches the upper (top) or lower (bottom) half of every
// normal glyph from slot 0x20 up to twice its height.
func doubleHeightTable(normal *GlyphTable, kind GlyphTableKind) *GlyphTable {
	t := &GlyphTable{Kind: kind}
	for code := TTXT_SPACE; code < TTXT_GLYPH_SLOTS; code++ {
		src := &normal.glyphs[code]
		dst := &t.glyphs[code]
		for y := range TTXT_GLYPH_HEIGHT {
			var sy int
			if kind == GlyphTableTop {
				sy = y / 2
			} else {
				sy = (TTXT_GLYPH_HEIGHT-1)/2 + (y+1)/2
			}
			l, r := src.Row(sy)
			dst.setRow(y, l, r)
		}
	}
	return t
}

// =============================================================================
// Text equivalents
// =============================================================================

// MosaicPattern returns the 6-bit sub-cell pattern of a mosaic slot.
func MosaicPattern(slot byte) (pattern byte, separated, ok bool) {
	switch {
	case slot >= TTXT_MOSAIC_SEP_HIGH:
		return slot - TTXT_MOSAIC_SEP_HIGH + 32, true, true
	case slot >= TTXT_MOSAIC_CONTIG_HIGH:
		return slot - TTXT_MOSAIC_CONTIG_HIGH + 32, false, true
	case slot >= TTXT_MOSAIC_SEP_LOW:
		return slot - TTXT_MOSAIC_SEP_LOW, true, true
	case slot >= TTXT_MOSAIC_CONTIG_LOW:
		return slot - TTXT_MOSAIC_CONTIG_LOW, false, true
	}
	return 0, false, false
}

// SextantRune returns the block sextant character for a 6-bit pattern.
func SextantRune(pattern byte) rune {
	pattern &= 0x3F
	switch pattern {
	case 0:
		return ' '
	case 21:
		return '▌'
	case 42:
		return '▐'
	case 63:
		return '█'
	}
	idx := rune(pattern) - 1
	if pattern > 42 {
		idx -= 2
	} else if pattern > 21 {
		idx--
	}
	return 0x1FB00 + idx
}

// SlotRune returns the character drawn by a normal table glyph slot.
func SlotRune(slot byte) rune {
	if p, _, ok := MosaicPattern(slot); ok {
		return SextantRune(p)
	}
	if slot < TTXT_SPACE {
		return ' '
	}
	for _, n := range nationalGlyphs {
		if n.slot == slot {
			return n.r
		}
	}
	return rune(slot)
}
