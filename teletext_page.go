// teletext_page.go - Page buffer and window for the teletext decoder

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

// DoubleHeightStatus is the per-row double height pairing.
type DoubleHeightStatus uint8

const (
	HeightNone DoubleHeightStatus = iota
	HeightTop
	HeightBottom
)

func (s DoubleHeightStatus) String() string {
	switch s {
	case HeightTop:
		return "top"
	case HeightBottom:
		return "bottom"
	default:
		return "none"
	}
}

// IsControlCode reports whether c is a spacing control code. Bytes with the
// top bit set are treated as their 7-bit equivalents.
func IsControlCode(c byte) bool {
	return c&TTXT_CONTROL_MASK == 0
}

// PageBuffer is the 40x25 page grid plus the double height status of every
// row.
type PageBuffer struct {
	cells   [TTXT_ROWS][TTXT_COLS]byte
	heights [TTXT_ROWS]DoubleHeightStatus
}

func inGrid(col, row int) bool {
	return col >= 0 && col < TTXT_COLS && row >= 0 && row < TTXT_ROWS
}

// Cell returns the code at (col, row), or 0 outside the grid.
func (p *PageBuffer) Cell(col, row int) byte {
	if !inGrid(col, row) {
		return 0
	}
	return p.cells[row][col]
}

// SetCell stores c at (col, row) and returns the previous code.
func (p *PageBuffer) SetCell(col, row int, c byte) byte {
	if !inGrid(col, row) {
		return 0
	}
	old := p.cells[row][col]
	p.cells[row][col] = c
	return old
}

func (p *PageBuffer) Height(row int) DoubleHeightStatus {
	if row < 0 || row >= TTXT_ROWS {
		return HeightNone
	}
	return p.heights[row]
}

func (p *PageBuffer) SetHeight(row int, s DoubleHeightStatus) {
	if row < 0 || row >= TTXT_ROWS {
		return
	}
	p.heights[row] = s
}

// Blank fills the page with spaces and clears all double height pairing.
func (p *PageBuffer) Blank() {
	for row := range TTXT_ROWS {
		for col := range TTXT_COLS {
			p.cells[row][col] = TTXT_SPACE
		}
		p.heights[row] = HeightNone
	}
}

// BlankRange fills columns left..right of rows top..bottom with spaces.
func (p *PageBuffer) BlankRange(w Window) {
	for row := w.Top; row <= w.Bottom; row++ {
		for col := w.Left; col <= w.Right; col++ {
			p.cells[row][col] = TTXT_SPACE
		}
	}
}

// ScrollUp moves every row up by one and blanks the last row. The new last
// row keeps the bottom half of a double height pair that starts above it.
func (p *PageBuffer) ScrollUp() {
	copy(p.cells[:TTXT_LAST_ROW], p.cells[1:])
	copy(p.heights[:TTXT_LAST_ROW], p.heights[1:])
	for col := range TTXT_COLS {
		p.cells[TTXT_LAST_ROW][col] = TTXT_SPACE
	}
	if p.heights[TTXT_LAST_ROW-1] == HeightTop {
		p.heights[TTXT_LAST_ROW] = HeightBottom
	} else {
		p.heights[TTXT_LAST_ROW] = HeightNone
	}
}

// ScrollWindowUp moves the cells inside w up by one row and blanks the
// window's last row. Cells outside the window are untouched.
func (p *PageBuffer) ScrollWindowUp(w Window) {
	for row := w.Top; row < w.Bottom; row++ {
		copy(p.cells[row][w.Left:w.Right+1], p.cells[row+1][w.Left:w.Right+1])
	}
	for col := w.Left; col <= w.Right; col++ {
		p.cells[w.Bottom][col] = TTXT_SPACE
	}
}

// RowHasCode reports whether row contains c, comparing 7-bit values.
func (p *PageBuffer) RowHasCode(row int, c byte) bool {
	for _, v := range p.cells[row] {
		if v&0x7F == c {
			return true
		}
	}
	return false
}

// Bytes returns the page as 1000 row-major bytes.
func (p *PageBuffer) Bytes() []byte {
	out := make([]byte, 0, TTXT_CELLS)
	for row := range TTXT_ROWS {
		out = append(out, p.cells[row][:]...)
	}
	return out
}

// Row returns a copy of one row.
func (p *PageBuffer) Row(row int) [TTXT_COLS]byte {
	if row < 0 || row >= TTXT_ROWS {
		return [TTXT_COLS]byte{}
	}
	return p.cells[row]
}

// Window is an inclusive rectangle in cell coordinates constraining clear
// and scroll.
type Window struct {
	Left, Right, Top, Bottom int
}

// FullWindow covers the whole page.
func FullWindow() Window {
	return Window{Left: 0, Right: TTXT_LAST_COL, Top: 0, Bottom: TTXT_LAST_ROW}
}

func (w Window) IsFull() bool {
	return w == FullWindow()
}

// Valid reports whether w is non-empty and lies inside the page.
func (w Window) Valid() bool {
	return w.Left >= 0 && w.Right < TTXT_COLS && w.Left <= w.Right &&
		w.Top >= 0 && w.Bottom < TTXT_ROWS && w.Top <= w.Bottom
}

// Contains reports whether the cell lies inside the window.
func (w Window) Contains(col, row int) bool {
	return col >= w.Left && col <= w.Right && row >= w.Top && row <= w.Bottom
}
