// teletext_page_file_test.go - Page file import and export tests

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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func blankPage() []byte {
	return bytes.Repeat([]byte{TTXT_SPACE}, TTXT_CELLS)
}

func pageRow(page []byte, row int) []byte {
	return page[row*TTXT_COLS : (row+1)*TTXT_COLS]
}

func TestParseTTI(t *testing.T) {
	src := "DE,test page\r\n" +
		"PN,10000\r\n" +
		"SC,0000\r\n" +
		"OL,0,\x1bAHello\r\n" +
		"OL,2,\x81World\r\n" +
		"OL,26,enhancement\r\n" +
		"PN,10001\r\n" +
		"OL,3,Other page\r\n"
	page, err := ParseTTI(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseTTI: %v", err)
	}
	if len(page) != TTXT_CELLS {
		t.Fatalf("page is %d bytes", len(page))
	}
	if got := pageRow(page, 0)[:6]; !bytes.Equal(got, []byte("\x01Hello")) {
		t.Fatalf("row 0 = %q", got)
	}
	if got := pageRow(page, 2)[:6]; !bytes.Equal(got, []byte("\x01World")) {
		t.Fatalf("row 2 = %q", got)
	}
	if !bytes.Equal(pageRow(page, 3), pageRow(blankPage(), 3)) {
		t.Fatal("second page leaked into the first")
	}
}

func TestParseTTI_LongRecordIsCut(t *testing.T) {
	page, err := ParseTTI(strings.NewReader("OL,1," + strings.Repeat("y", 60) + "\n"))
	if err != nil {
		t.Fatalf("ParseTTI: %v", err)
	}
	if pageRow(page, 2)[0] != TTXT_SPACE {
		t.Fatal("long record spilled into the next row")
	}
}

func TestParseTTI_Errors(t *testing.T) {
	cases := map[string]string{
		"short record": "OL,1\n",
		"bad row":      "OL,x,text\n",
		"negative row": "OL,-1,text\n",
		"no records":   "DE,empty\nPN,10000\n",
	}
	for name, src := range cases {
		if _, err := ParseTTI(strings.NewReader(src)); !errors.Is(err, ErrPageFormat) {
			t.Errorf("%s: expected ErrPageFormat, got %v", name, err)
		}
	}
}

func TestEncodeTTI_RoundTrip(t *testing.T) {
	page := blankPage()
	copy(pageRow(page, 0), []byte{TTXT_ALPHA_RED, 'N', 'E', 'W', 'S', TTXT_ESC, STREAM_CR})
	copy(pageRow(page, 4), []byte{TTXT_MOSAIC_BLUE, 0x7F, 0x2C, TTXT_DOUBLE_HEIGHT, '#'})

	var buf bytes.Buffer
	if err := EncodeTTI(&buf, page, "round trip"); err != nil {
		t.Fatalf("EncodeTTI: %v", err)
	}
	text := buf.String()
	if !strings.HasPrefix(text, "DE,round trip\r\nPN,10000\r\n") {
		t.Fatalf("unexpected header: %q", text)
	}
	if strings.Contains(text, "OL,1,") {
		t.Fatal("blank rows should be omitted")
	}
	for _, b := range []byte(text) {
		if b < 0x20 && b != TTXT_ESC && b != '\r' && b != '\n' {
			t.Fatalf("raw control byte %#x in output", b)
		}
	}

	got, err := ParseTTI(&buf)
	if err != nil {
		t.Fatalf("ParseTTI: %v", err)
	}
	if !bytes.Equal(got, page) {
		t.Fatalf("round trip differs:\n got %q\nwant %q", got[:TTXT_COLS*5], page[:TTXT_COLS*5])
	}
}

func TestParsePageData(t *testing.T) {
	raw := blankPage()
	raw[0] = 'R'
	page, err := ParsePageData(raw)
	if err != nil {
		t.Fatalf("raw: %v", err)
	}
	raw[0] = 'X'
	if page[0] != 'R' {
		t.Fatal("raw page must be copied")
	}

	page, err = ParsePageData([]byte("PN,10000\nOL,0,TTI\n"))
	if err != nil {
		t.Fatalf("tti: %v", err)
	}
	if string(page[:3]) != "TTI" {
		t.Fatalf("tti page starts %q", page[:3])
	}

	if _, err := ParsePageData(make([]byte, 999)); !errors.Is(err, ErrPageFormat) {
		t.Fatalf("999 bytes: expected ErrPageFormat, got %v", err)
	}
}

func TestSaveAndLoadPageFile(t *testing.T) {
	page := blankPage()
	copy(pageRow(page, 7), []byte{TTXT_ALPHA_GREEN, 'o', 'k'})
	dir := t.TempDir()

	for _, name := range []string{"page.tti", "page.bin"} {
		path := filepath.Join(dir, name)
		if err := SavePage(path, page); err != nil {
			t.Fatalf("SavePage(%s): %v", name, err)
		}
		got, err := LoadPageFile(path)
		if err != nil {
			t.Fatalf("LoadPageFile(%s): %v", name, err)
		}
		if !bytes.Equal(got, page) {
			t.Fatalf("%s: page differs after save and load", name)
		}
	}

	data, _ := os.ReadFile(filepath.Join(dir, "page.tti"))
	if !bytes.HasPrefix(data, []byte("DE,page.tti")) {
		t.Fatalf(".tti output starts %q", data[:min(len(data), 16)])
	}

	if _, err := LoadPageFile(filepath.Join(dir, "missing.tti")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestExportPageText(t *testing.T) {
	page := blankPage()
	copy(pageRow(page, 0), []byte{TTXT_ALPHA_RED, 'H', 'i', ' ', '#', '_', '`'})
	copy(pageRow(page, 1), []byte{TTXT_MOSAIC_WHITE, 0x7F, 0x35, 'A', TTXT_SEPARATED, 0x7F, TTXT_ALPHA_CYAN, 0x7F})

	lines := strings.Split(ExportPageText(page), "\n")
	if len(lines) != TTXT_ROWS+1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != " Hi #—£" {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if lines[1] != " █▌A █ █" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "" {
		t.Fatalf("blank row = %q", lines[2])
	}
}
