// teletext_glyphs_test.go - Glyph table construction tests

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
	"testing"
)

// stubFont serves fixed base glyphs.
type stubFont map[rune]BaseGlyph

func (f stubFont) Glyph(r rune) (BaseGlyph, bool) {
	g, ok := f[r]
	return g, ok
}

func stripeGlyph(word uint16) BaseGlyph {
	var g BaseGlyph
	for y := range TTXT_BASE_GLYPH_HEIGHT - 1 {
		g[y] = word + uint16(y)
	}
	return g
}

func mustGlyphSet(t *testing.T, font BaseFont) *GlyphSet {
	t.Helper()
	set, err := BuildGlyphSet(font)
	if err != nil {
		t.Fatalf("BuildGlyphSet: %v", err)
	}
	return set
}

func TestBuildGlyphSet_NilFont(t *testing.T) {
	_, err := BuildGlyphSet(nil)
	if !errors.Is(err, ErrTeletextInit) {
		t.Fatalf("expected ErrTeletextInit, got %v", err)
	}
	var te *TeletextError
	if !errors.As(err, &te) || te.Operation != "glyph build" {
		t.Fatalf("expected a glyph build TeletextError, got %#v", err)
	}
}

func TestBuildGlyphSet_TableKinds(t *testing.T) {
	set := mustGlyphSet(t, stubFont{})
	for _, kind := range []GlyphTableKind{GlyphTableNormal, GlyphTableTop, GlyphTableBottom} {
		if got := set.Table(kind).Kind; got != kind {
			t.Errorf("Table(%v).Kind = %v", kind, got)
		}
	}
}

func TestBuildGlyphSet_CopiesBaseRows(t *testing.T) {
	set := mustGlyphSet(t, stubFont{'A': stripeGlyph(0x1200)})
	g := set.Normal.Glyph('A')
	for y := range TTXT_GLYPH_HEIGHT {
		left, right := g.Row(y)
		if left != byte(y) || right != 0x12 {
			t.Fatalf("row %d = %#02x %#02x, want %#02x 0x12", y, left, right, y)
		}
	}
	if !set.Normal.Glyph('B').IsBlank() {
		t.Fatal("glyph missing from the font should be blank")
	}
}

func TestBuildGlyphSet_NationalCharacters(t *testing.T) {
	pound := stripeGlyph(0x0100)
	hash := stripeGlyph(0x0200)
	set := mustGlyphSet(t, stubFont{'£': pound, '#': hash})

	if *set.Normal.Glyph('#') != pound.toGlyph() {
		t.Fatal("slot '#' should hold the pound sign")
	}
	if *set.Normal.Glyph('_') != hash.toGlyph() {
		t.Fatal("slot '_' should hold the hash mark")
	}
	solid := set.Normal.Glyph(0x7F)
	for y := range TTXT_GLYPH_HEIGHT {
		if l, r := solid.Row(y); l != 0xFF || r != 0xFF {
			t.Fatalf("solid block row %d = %#02x %#02x", y, l, r)
		}
	}
}

func TestBuildGlyphSet_ContiguousMosaics(t *testing.T) {
	set := mustGlyphSet(t, stubFont{})

	// Pattern 1: top left sub-cell
	g := set.Normal.Glyph(TTXT_MOSAIC_CONTIG_LOW + 1)
	for y := range TTXT_GLYPH_HEIGHT {
		l, r := g.Row(y)
		wantL := byte(0)
		if y < 6 {
			wantL = 0xFF
		}
		if l != wantL || r != 0 {
			t.Fatalf("pattern 1 row %d = %#02x %#02x", y, l, r)
		}
	}

	// Pattern 32: bottom right sub-cell, first slot of the high bank
	g = set.Normal.Glyph(TTXT_MOSAIC_CONTIG_HIGH)
	for y := range TTXT_GLYPH_HEIGHT {
		l, r := g.Row(y)
		wantR := byte(0)
		if y >= 13 {
			wantR = 0xFF
		}
		if l != 0 || r != wantR {
			t.Fatalf("pattern 32 row %d = %#02x %#02x", y, l, r)
		}
	}

	// Pattern 63 fills the whole cell
	g = set.Normal.Glyph(TTXT_MOSAIC_CONTIG_HIGH + 31)
	for y := range TTXT_GLYPH_HEIGHT {
		if l, r := g.Row(y); l != 0xFF || r != 0xFF {
			t.Fatalf("pattern 63 row %d = %#02x %#02x", y, l, r)
		}
	}
}

func TestBuildGlyphSet_SeparatedMosaicsKeepGaps(t *testing.T) {
	set := mustGlyphSet(t, stubFont{})
	g := set.Normal.Glyph(TTXT_MOSAIC_SEP_HIGH + 31)

	for _, y := range []int{0, 5, 6, 12, 13, 18} {
		if l, r := g.Row(y); l != 0 || r != 0 {
			t.Fatalf("separated border row %d = %#02x %#02x, want empty", y, l, r)
		}
	}
	for _, y := range []int{1, 4, 7, 11, 14, 17} {
		if l, r := g.Row(y); l != 0x7E || r != 0x7E {
			t.Fatalf("separated inner row %d = %#02x %#02x, want 0x7E 0x7E", y, l, r)
		}
	}
	for y := range TTXT_GLYPH_HEIGHT {
		for _, x := range []int{0, 7, 8, 15} {
			if g.Pixel(x, y) {
				t.Fatalf("separated mosaic touches the sub-cell edge at (%d,%d)", x, y)
			}
		}
	}
}

func TestBuildGlyphSet_DoubleHeightRows(t *testing.T) {
	set := mustGlyphSet(t, stubFont{'A': stripeGlyph(0x4000)})
	for _, code := range []byte{'A', TTXT_MOSAIC_CONTIG_LOW + 21, TTXT_MOSAIC_SEP_HIGH + 9} {
		normal := set.Normal.Glyph(code)
		top := set.Top.Glyph(code)
		bottom := set.Bottom.Glyph(code)
		for y := range TTXT_GLYPH_HEIGHT {
			tl, tr := top.Row(y)
			nl, nr := normal.Row(y / 2)
			if tl != nl || tr != nr {
				t.Fatalf("slot %#x top row %d does not repeat source row %d", code, y, y/2)
			}
			src := 9 + (y+1)/2
			bl, br := bottom.Row(y)
			nl, nr = normal.Row(src)
			if bl != nl || br != nr {
				t.Fatalf("slot %#x bottom row %d does not repeat source row %d", code, y, src)
			}
		}
	}
}

func TestMosaicPattern(t *testing.T) {
	cases := []struct {
		slot      byte
		pattern   byte
		separated bool
		ok        bool
	}{
		{TTXT_MOSAIC_CONTIG_LOW + 5, 5, false, true},
		{TTXT_MOSAIC_SEP_LOW + 5, 5, true, true},
		{TTXT_MOSAIC_CONTIG_HIGH + 5, 37, false, true},
		{TTXT_MOSAIC_SEP_HIGH + 31, 63, true, true},
		{'A', 0, false, false},
	}
	for _, tc := range cases {
		p, sep, ok := MosaicPattern(tc.slot)
		if p != tc.pattern || sep != tc.separated || ok != tc.ok {
			t.Errorf("MosaicPattern(%#x) = %d,%v,%v", tc.slot, p, sep, ok)
		}
	}
}

func TestSextantRune(t *testing.T) {
	cases := map[byte]rune{
		0:  ' ',
		1:  0x1FB00,
		20: 0x1FB13,
		21: '▌',
		22: 0x1FB14,
		42: '▐',
		43: 0x1FB28,
		62: 0x1FB3B,
		63: '█',
	}
	for p, want := range cases {
		if got := SextantRune(p); got != want {
			t.Errorf("SextantRune(%d) = %U, want %U", p, got, want)
		}
	}
}

func TestSlotRune(t *testing.T) {
	cases := map[byte]rune{
		'#':                         '£',
		'_':                         '#',
		'`':                         '—',
		'A':                         'A',
		0x7F:                        '█',
		TTXT_MOSAIC_CONTIG_LOW + 21: '▌',
		0x05:                        ' ',
	}
	for slot, want := range cases {
		if got := SlotRune(slot); got != want {
			t.Errorf("SlotRune(%#x) = %q, want %q", slot, got, want)
		}
	}
}
