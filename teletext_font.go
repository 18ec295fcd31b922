// teletext_font.go - Base font sources for the teletext glyph builder

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
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/basicfont"
)

// BaseGlyph is one 16x20 base font bitmap. Each word holds a pixel row with
// the left eight pixels in the low byte, most significant bit leftmost.
// The last row is blank by convention and is dropped by the glyph builder.
type BaseGlyph [TTXT_BASE_GLYPH_HEIGHT]uint16

// BaseFont supplies base glyphs by Unicode code point.
type BaseFont interface {
	Glyph(r rune) (BaseGlyph, bool)
}

func (bg *BaseGlyph) setPixel(x, y int) {
	if x < 0 || x >= TTXT_GLYPH_WIDTH || y < 0 || y >= TTXT_BASE_GLYPH_HEIGHT {
		return
	}
	if x < 8 {
		bg[y] |= uint16(0x80 >> x)
	} else {
		bg[y] |= uint16(0x80>>(x-8)) << 8
	}
}

func (bg *BaseGlyph) toGlyph() Glyph {
	var g Glyph
	for y := range TTXT_GLYPH_HEIGHT {
		g.setRow(y, byte(bg[y]), byte(bg[y]>>8))
	}
	return g
}

// =============================================================================
// BDF fonts
// =============================================================================

// BDFBaseFont is a base font read from a Glyph Bitmap Distribution Format
// file. Fonts up to 8 pixels wide are doubled horizontally to fill the cell.
type BDFBaseFont struct {
	Name   string
	glyphs map[rune]BaseGlyph
}

func (f *BDFBaseFont) Glyph(r rune) (BaseGlyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Len returns the number of encoded glyphs.
func (f *BDFBaseFont) Len() int {
	return len(f.glyphs)
}

func bdfError(line int, format string, args ...any) error {
	return &TeletextError{
		Operation: "font load",
		Details:   fmt.Sprintf("line %d: ", line) + fmt.Sprintf(format, args...),
		Err:       ErrFontFormat,
	}
}

func bdfInts(fields []string, n, line int) ([]int, error) {
	if len(fields) < n+1 {
		return nil, bdfError(line, "%s needs %d values", fields[0], n)
	}
	out := make([]int, n)
	for i := range n {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, bdfError(line, "%s: bad value %q", fields[0], fields[i+1])
		}
		out[i] = v
	}
	return out, nil
}

// LoadBDFFont parses a BDF font.
func LoadBDFFont(r io.Reader) (*BDFBaseFont, error) {
	f := &BDFBaseFont{glyphs: make(map[rune]BaseGlyph)}

	var (
		fbbW, fbbH, fbbX, fbbY int
		haveBBox               bool
		scaleX                 = 1
		inChar, inBitmap       bool
		encoding               int
		bbW, bbH, bbX, bbY     int
		bitmapRow              int
		glyph                  BaseGlyph
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if inBitmap && fields[0] != "ENDCHAR" {
			bits, err := strconv.ParseUint(fields[0], 16, 64)
			if err != nil {
				return nil, bdfError(lineNo, "bad bitmap row %q", fields[0])
			}
			width := len(fields[0]) * 4
			baseline := fbbH + fbbY
			y := baseline - (bbH + bbY) + bitmapRow
			col := bbX - fbbX
			for x := range bbW {
				if x >= width {
					break
				}
				if bits&(1<<(width-1-x)) == 0 {
					continue
				}
				for s := range scaleX {
					glyph.setPixel((col+x)*scaleX+s, y)
				}
			}
			bitmapRow++
			continue
		}

		switch fields[0] {
		case "FONT":
			if len(fields) > 1 {
				f.Name = fields[1]
			}
		case "FONTBOUNDINGBOX":
			v, err := bdfInts(fields, 4, lineNo)
			if err != nil {
				return nil, err
			}
			fbbW, fbbH, fbbX, fbbY = v[0], v[1], v[2], v[3]
			if fbbW <= 0 || fbbH <= 0 {
				return nil, bdfError(lineNo, "empty bounding box")
			}
			if fbbW <= TTXT_GLYPH_WIDTH/2 {
				scaleX = 2
			}
			haveBBox = true
		case "STARTCHAR":
			if !haveBBox {
				return nil, bdfError(lineNo, "STARTCHAR before FONTBOUNDINGBOX")
			}
			inChar = true
			encoding = -1
			bbW, bbH, bbX, bbY = fbbW, fbbH, fbbX, fbbY
			glyph = BaseGlyph{}
		case "ENCODING":
			v, err := bdfInts(fields, 1, lineNo)
			if err != nil {
				return nil, err
			}
			encoding = v[0]
		case "BBX":
			v, err := bdfInts(fields, 4, lineNo)
			if err != nil {
				return nil, err
			}
			bbW, bbH, bbX, bbY = v[0], v[1], v[2], v[3]
		case "BITMAP":
			if !inChar {
				return nil, bdfError(lineNo, "BITMAP outside STARTCHAR")
			}
			inBitmap = true
			bitmapRow = 0
		case "ENDCHAR":
			if !inChar {
				return nil, bdfError(lineNo, "ENDCHAR outside STARTCHAR")
			}
			if encoding >= 0 {
				f.glyphs[rune(encoding)] = glyph
			}
			inChar, inBitmap = false, false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &TeletextError{Operation: "font load", Details: "read failed", Err: err}
	}
	if inChar {
		return nil, bdfError(lineNo, "missing ENDCHAR")
	}
	if len(f.glyphs) == 0 {
		return nil, bdfError(lineNo, "no glyphs")
	}
	return f, nil
}

// LoadBDFFontFile opens and parses a BDF font file.
func LoadBDFFontFile(path string) (*BDFBaseFont, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &TeletextError{Operation: "font load", Details: path, Err: err}
	}
	defer fh.Close()
	return LoadBDFFont(fh)
}

// =============================================================================
// Built-in fallback font
// =============================================================================

// BasicBaseFont scales basicfont.Face7x13 up to the teletext cell. It only
// covers printable ASCII, so national characters keep their ASCII shapes.
type BasicBaseFont struct {
	glyphs map[rune]BaseGlyph
}

// NewBasicBaseFont rasterizes every printable ASCII glyph of Face7x13.
func NewBasicBaseFont() *BasicBaseFont {
	face := basicfont.Face7x13
	f := &BasicBaseFont{glyphs: make(map[rune]BaseGlyph)}
	cellH := face.Ascent + face.Descent
	for r := rune(TTXT_SPACE); r < 0x7F; r++ {
		if r < face.Ranges[0].Low || r >= face.Ranges[0].High {
			continue
		}
		oy := (int(r-face.Ranges[0].Low) + face.Ranges[0].Offset) * cellH
		f.glyphs[r] = scaleFaceGlyph(face.Mask, oy, face.Width, cellH)
	}
	return f
}

func (f *BasicBaseFont) Glyph(r rune) (BaseGlyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// scaleFaceGlyph doubles the width and stretches the height of a face glyph
// so it fills the 16x19 visible area, leaving the last row blank.
func scaleFaceGlyph(mask image.Image, oy, w, h int) BaseGlyph {
	var g BaseGlyph
	const left = (TTXT_GLYPH_WIDTH - 2*6) / 2
	for y := range TTXT_GLYPH_HEIGHT {
		sy := y * h / TTXT_GLYPH_HEIGHT
		for x := range w {
			_, _, _, a := mask.At(x, oy+sy).RGBA()
			if a < 0x8000 {
				continue
			}
			g.setPixel(left+2*x, y)
			g.setPixel(left+2*x+1, y)
		}
	}
	return g
}
