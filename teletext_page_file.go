// teletext_page_file.go - Page file import and export

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
teletext_page_file.go - Teletext Page Files

Two page formats are understood:
  - raw: exactly 1000 bytes, row-major, one byte per cell
  - .tti: the MRG text format, one "OL,<row>,<text>" record per output
    line. Control codes appear either as ESC followed by code+0x40 or as
    code+0x80. Other record types (DE, PN, SC, PS, FL ...) are skipped and
    only the first page of a multi-page file is read.
*/

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParsePageData decodes raw or .tti page data into 1000 page bytes.
func ParsePageData(data []byte) ([]byte, error) {
	if len(data) == TTXT_CELLS && !looksLikeTTI(data) {
		return append([]byte(nil), data...), nil
	}
	if looksLikeTTI(data) {
		return ParseTTI(bytes.NewReader(data))
	}
	return nil, &TeletextError{
		Operation: "page load",
		Details:   fmt.Sprintf("%d bytes is neither a raw page nor a .tti file", len(data)),
		Err:       ErrPageFormat,
	}
}

func looksLikeTTI(data []byte) bool {
	for _, prefix := range []string{"OL,", "DE,", "PN,", "DS,", "SP,", "CT,", "SC,", "PS,"} {
		if bytes.HasPrefix(data, []byte(prefix)) || bytes.Contains(data, []byte("\n"+prefix)) {
			return true
		}
	}
	return false
}

// LoadPageFile reads a raw or .tti page file.
func LoadPageFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TeletextError{Operation: "page load", Details: path, Err: err}
	}
	if strings.EqualFold(filepath.Ext(path), ".tti") {
		return ParseTTI(bytes.NewReader(data))
	}
	return ParsePageData(data)
}

// ParseTTI reads the first page of a .tti stream.
func ParseTTI(r io.Reader) ([]byte, error) {
	page := bytes.Repeat([]byte{TTXT_SPACE}, TTXT_CELLS)
	sc := bufio.NewScanner(r)
	lineNo := 0
	pages := 0
	lines := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "PN,") {
			pages++
			if pages > 1 {
				break
			}
			continue
		}
		if !strings.HasPrefix(line, "OL,") {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) < 3 {
			return nil, &TeletextError{
				Operation: "page load",
				Details:   fmt.Sprintf("line %d: short OL record", lineNo),
				Err:       ErrPageFormat,
			}
		}
		row, err := strconv.Atoi(parts[1])
		if err != nil || row < 0 {
			return nil, &TeletextError{
				Operation: "page load",
				Details:   fmt.Sprintf("line %d: bad row %q", lineNo, parts[1]),
				Err:       ErrPageFormat,
			}
		}
		if row >= TTXT_ROWS {
			// Enhancement packets
			continue
		}
		copy(page[row*TTXT_COLS:(row+1)*TTXT_COLS], decodeTTIText(parts[2]))
		lines++
	}
	if err := sc.Err(); err != nil {
		return nil, &TeletextError{Operation: "page load", Details: "read failed", Err: err}
	}
	if lines == 0 {
		return nil, &TeletextError{Operation: "page load", Details: "no OL records", Err: ErrPageFormat}
	}
	return page, nil
}

// decodeTTIText expands the escapes of one OL record into at most 40 cells.
func decodeTTIText(s string) []byte {
	out := make([]byte, 0, TTXT_COLS)
	for i := 0; i < len(s) && len(out) < TTXT_COLS; i++ {
		b := s[i]
		switch {
		case b == TTXT_ESC && i+1 < len(s):
			i++
			out = append(out, (s[i]-0x40)&0x7F)
		case b >= 0x80:
			out = append(out, b&0x7F)
		default:
			out = append(out, b)
		}
	}
	return out
}

// EncodeTTI writes page as a single page .tti file. Blank rows are omitted.
func EncodeTTI(w io.Writer, page []byte, description string) error {
	bw := bufio.NewWriter(w)
	if description != "" {
		fmt.Fprintf(bw, "DE,%s\r\n", description)
	}
	bw.WriteString("PN,10000\r\n")
	for row := range TTXT_ROWS {
		start := row * TTXT_COLS
		if start >= len(page) {
			break
		}
		cells := page[start:min(start+TTXT_COLS, len(page))]
		if len(bytes.Trim(cells, " ")) == 0 {
			continue
		}
		fmt.Fprintf(bw, "OL,%d,", row)
		for _, c := range cells {
			if IsControlCode(c) {
				bw.WriteByte(TTXT_ESC)
				bw.WriteByte((c & 0x7F) + 0x40)
				continue
			}
			bw.WriteByte(c & 0x7F)
		}
		bw.WriteString("\r\n")
	}
	return bw.Flush()
}

// SavePage writes page to path, as .tti when the extension says so and raw
// otherwise.
func SavePage(path string, page []byte) error {
	var buf bytes.Buffer
	if strings.EqualFold(filepath.Ext(path), ".tti") {
		if err := EncodeTTI(&buf, page, filepath.Base(path)); err != nil {
			return &TeletextError{Operation: "page save", Details: path, Err: err}
		}
	} else {
		raw := bytes.Repeat([]byte{TTXT_SPACE}, TTXT_CELLS)
		copy(raw, page)
		buf.Write(raw)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &TeletextError{Operation: "page save", Details: path, Err: err}
	}
	return nil
}

// ExportPageText renders page as 25 lines of plain text: control codes
// become spaces, national characters and mosaics use their Unicode
// equivalents. Trailing spaces are trimmed.
func ExportPageText(page []byte) string {
	var sb strings.Builder
	for row := range TTXT_ROWS {
		var st RenderState
		var line []rune
		for col := range TTXT_COLS {
			i := row*TTXT_COLS + col
			c := byte(TTXT_SPACE)
			if i < len(page) {
				c = page[i]
			}
			if IsControlCode(c) {
				c &= 0x7F
				switch {
				case c >= TTXT_ALPHA_RED && c <= TTXT_ALPHA_WHITE:
					st.clear(flagGraphics)
				case c >= TTXT_MOSAIC_RED && c <= TTXT_MOSAIC_WHITE:
					st.set(flagGraphics)
					st.clear(flagSeparated)
				case c == TTXT_SEPARATED:
					st.set(flagSeparated)
				case c == TTXT_CONTIGUOUS:
					st.clear(flagSeparated)
				}
				line = append(line, ' ')
				continue
			}
			line = append(line, SlotRune(st.resolveGlyph(c)))
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
