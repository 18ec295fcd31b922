// teletext_font_test.go - Base font loader tests

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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const narrowBDF = `STARTFONT 2.1
FONT -test-narrow
SIZE 16 75 75
FONTBOUNDINGBOX 8 16 0 -4
CHARS 2
STARTCHAR A
ENCODING 65
BBX 8 16 0 -4
BITMAP
80
01
00
00
00
00
00
00
00
00
00
00
00
00
00
FF
ENDCHAR
STARTCHAR sterling
ENCODING 163
BBX 2 2 3 0
BITMAP
C0
40
ENDCHAR
ENDFONT
`

func TestLoadBDFFont_NarrowFontIsDoubled(t *testing.T) {
	font, err := LoadBDFFont(strings.NewReader(narrowBDF))
	if err != nil {
		t.Fatalf("LoadBDFFont: %v", err)
	}
	if font.Name != "-test-narrow" {
		t.Fatalf("Name = %q", font.Name)
	}
	if font.Len() != 2 {
		t.Fatalf("Len = %d, want 2", font.Len())
	}

	a, ok := font.Glyph('A')
	if !ok {
		t.Fatal("glyph 'A' missing")
	}
	if a[0] != 0x00C0 {
		t.Fatalf("row 0 = %#04x, want 0x00c0", a[0])
	}
	if a[1] != 0x0300 {
		t.Fatalf("row 1 = %#04x, want 0x0300", a[1])
	}
	if a[15] != 0xFFFF {
		t.Fatalf("row 15 = %#04x, want 0xffff", a[15])
	}

	// BBX offsets place the glyph against the font baseline (row 12)
	pound, ok := font.Glyph('£')
	if !ok {
		t.Fatal("glyph '£' missing")
	}
	if pound[10] != 0xC003 {
		t.Fatalf("row 10 = %#04x, want 0xc003", pound[10])
	}
	if pound[11] != 0xC000 {
		t.Fatalf("row 11 = %#04x, want 0xc000", pound[11])
	}
}

func TestLoadBDFFont_WideFontIsNotScaled(t *testing.T) {
	src := `STARTFONT 2.1
FONTBOUNDINGBOX 16 20 0 0
STARTCHAR x
ENCODING 120
BBX 16 20 0 0
BITMAP
8001
ENDCHAR
ENDFONT
`
	font, err := LoadBDFFont(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadBDFFont: %v", err)
	}
	g, _ := font.Glyph('x')
	if g[0] != 0x0180 {
		t.Fatalf("row 0 = %#04x, want 0x0180", g[0])
	}
	glyph := g.toGlyph()
	if !glyph.Pixel(0, 0) || !glyph.Pixel(15, 0) || glyph.Pixel(1, 0) {
		t.Fatal("pixels 0 and 15 should be the only ones set")
	}
}

func TestLoadBDFFont_Errors(t *testing.T) {
	cases := map[string]string{
		"no bounding box": "STARTCHAR a\nENCODING 97\nBITMAP\n00\nENDCHAR\n",
		"bad bitmap":      "FONTBOUNDINGBOX 8 16 0 0\nSTARTCHAR a\nENCODING 97\nBITMAP\nzz\nENDCHAR\n",
		"missing ENDCHAR": "FONTBOUNDINGBOX 8 16 0 0\nSTARTCHAR a\nENCODING 97\nBITMAP\n00\n",
		"no glyphs":       "FONTBOUNDINGBOX 8 16 0 0\n",
		"bad bbox":        "FONTBOUNDINGBOX 8 x 0 0\n",
		"short bbox":      "FONTBOUNDINGBOX 8\n",
		"stray ENDCHAR":   "FONTBOUNDINGBOX 8 16 0 0\nENDCHAR\n",
	}
	for name, src := range cases {
		_, err := LoadBDFFont(strings.NewReader(src))
		if !errors.Is(err, ErrFontFormat) {
			t.Errorf("%s: expected ErrFontFormat, got %v", name, err)
		}
	}
}

func TestLoadBDFFont_SkipsUnencodedGlyphs(t *testing.T) {
	src := "FONTBOUNDINGBOX 8 16 0 0\n" +
		"STARTCHAR none\nENCODING -1\nBITMAP\nFF\nENDCHAR\n" +
		"STARTCHAR b\nENCODING 98\nBITMAP\nFF\nENDCHAR\n"
	font, err := LoadBDFFont(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadBDFFont: %v", err)
	}
	if font.Len() != 1 {
		t.Fatalf("Len = %d, want 1", font.Len())
	}
}

func TestLoadBDFFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.bdf")
	if err := os.WriteFile(path, []byte(narrowBDF), 0o644); err != nil {
		t.Fatal(err)
	}
	font, err := LoadBDFFontFile(path)
	if err != nil {
		t.Fatalf("LoadBDFFontFile: %v", err)
	}
	if _, ok := font.Glyph('A'); !ok {
		t.Fatal("glyph 'A' missing")
	}

	_, err = LoadBDFFontFile(filepath.Join(t.TempDir(), "missing.bdf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestBasicBaseFont(t *testing.T) {
	font := NewBasicBaseFont()
	a, ok := font.Glyph('A')
	if !ok {
		t.Fatal("glyph 'A' missing")
	}
	set := false
	for _, w := range a {
		if w != 0 {
			set = true
		}
	}
	if !set {
		t.Fatal("glyph 'A' is blank")
	}
	if a[TTXT_BASE_GLYPH_HEIGHT-1] != 0 {
		t.Fatal("last base row must stay blank")
	}
	if sp, _ := font.Glyph(' '); sp != (BaseGlyph{}) {
		t.Fatal("space should be blank")
	}
	if _, ok := font.Glyph('£'); ok {
		t.Fatal("built-in font only covers ASCII")
	}
}
