// teletext_stream_test.go - Page byte stream tests

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
	"io"
	"testing"
)

func newStreamTarget(t *testing.T) (*Teletext, *PageWriter) {
	t.Helper()
	tt, _ := newTestTeletext(t)
	return tt, NewPageWriter(tt)
}

func rowText(tt *Teletext, row, n int) string {
	b := make([]byte, n)
	for col := range n {
		b[col] = get(tt, col, row)
	}
	return string(b)
}

var _ io.Writer = (*PageWriter)(nil)
var _ io.ByteWriter = (*PageWriter)(nil)

func TestPageWriter_TextAndNewlines(t *testing.T) {
	tt, w := newStreamTarget(t)
	if _, err := w.WriteString("HELLO\r\nWORLD"); err != nil {
		t.Fatal(err)
	}
	if got := rowText(tt, 0, 5); got != "HELLO" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(tt, 1, 5); got != "WORLD" {
		t.Fatalf("row 1 = %q", got)
	}
	if col, row := w.Cursor(); col != 5 || row != 1 {
		t.Fatalf("cursor = (%d,%d), want (5,1)", col, row)
	}
}

func TestPageWriter_HighBytesBecomeControlCodes(t *testing.T) {
	tt, w := newStreamTarget(t)
	_, _ = w.Write([]byte{0x81, 'R', 0xE1})
	if got := get(tt, 0, 0); got != TTXT_ALPHA_RED {
		t.Fatalf("cell 0 = %#x, want alpha red", got)
	}
	if got := get(tt, 2, 0); got != 'a' {
		t.Fatalf("cell 2 = %#x, want 'a'", got)
	}
}

func TestPageWriter_WrapAndScroll(t *testing.T) {
	tt, w := newStreamTarget(t)
	w.MoveTo(TTXT_LAST_COL, TTXT_LAST_ROW)
	_ = w.WriteByte('x')
	if col, row := w.Cursor(); col != 0 || row != TTXT_LAST_ROW {
		t.Fatalf("cursor after wrap = (%d,%d)", col, row)
	}
	if got := get(tt, TTXT_LAST_COL, TTXT_LAST_ROW-1); got != 'x' {
		t.Fatalf("page did not scroll: %q", got)
	}
}

func TestPageWriter_EditingKeys(t *testing.T) {
	tt, w := newStreamTarget(t)
	_, _ = w.WriteString("ABC")
	_ = w.WriteByte(STREAM_DEL)
	if got := rowText(tt, 0, 3); got != "AB " {
		t.Fatalf("after DEL row = %q", got)
	}
	if col, _ := w.Cursor(); col != 2 {
		t.Fatalf("cursor col after DEL = %d, want 2", col)
	}

	_ = w.WriteByte(STREAM_BS)
	_ = w.WriteByte('z')
	if got := rowText(tt, 0, 3); got != "Az " {
		t.Fatalf("after BS row = %q", got)
	}

	_ = w.WriteByte(STREAM_TAB)
	_ = w.WriteByte(STREAM_LF)
	_ = w.WriteByte(STREAM_VT)
	if col, row := w.Cursor(); col != 3 || row != 0 {
		t.Fatalf("cursor = (%d,%d), want (3,0)", col, row)
	}
	_ = w.WriteByte(STREAM_VT)
	if _, row := w.Cursor(); row != 0 {
		t.Fatal("VT moved above the window")
	}

	w.MoveTo(0, 3)
	_ = w.WriteByte(STREAM_BS)
	if col, row := w.Cursor(); col != TTXT_LAST_COL || row != 2 {
		t.Fatalf("BS at column 0 = (%d,%d), want end of previous row", col, row)
	}

	_ = w.WriteByte(STREAM_HOME)
	if col, row := w.Cursor(); col != 0 || row != 0 {
		t.Fatal("HOME did not go to the top left")
	}

	_ = w.WriteByte(STREAM_FF)
	if got := rowText(tt, 0, 3); got != "   " {
		t.Fatalf("FF did not clear: %q", got)
	}
}

func TestPageWriter_StaysInWindow(t *testing.T) {
	tt, w := newStreamTarget(t)
	tt.SetWindow(10, 6, 14, 5)
	w.Home()
	if col, row := w.Cursor(); col != 10 || row != 5 {
		t.Fatalf("home = (%d,%d), want (10,5)", col, row)
	}

	_, _ = w.WriteString("abcdefghijklm")
	if got := get(tt, 10, 5); got != 'f' {
		t.Fatalf("window did not scroll: (10,5) = %q", got)
	}
	if got := get(tt, 12, 6); got != 'm' {
		t.Fatalf("(12,6) = %q, want 'm'", got)
	}
	if got := get(tt, 15, 5); got != TTXT_SPACE {
		t.Fatalf("write leaked outside the window: %q", got)
	}

	w.MoveTo(0, 0)
	if col, row := w.Cursor(); col != 10 || row != 5 {
		t.Fatalf("MoveTo not clamped: (%d,%d)", col, row)
	}
}
