// teletext_lua.go - Lua page scripting for the teletext decoder

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
teletext_lua.go - Lua Page Scripts

Page scripts build or animate a page through a global "ttx" table. Cell
coordinates are 0-based columns and rows.

  ttx.write(col, row, code)        store one code
  ttx.get(col, row)                read one code (0 outside the page)
  ttx.print(s)                     stream bytes at the text cursor
  ttx.move(col, row)               place the text cursor
  ttx.cls() / ttx.scroll()         clear or scroll the window
  ttx.window(left, bottom, right, top)
  ttx.flash(on)                    set the flash phase
  ttx.mosaic(pattern)              displayable code for a 6-bit pattern
  ttx.text()                       the page as plain text

Control code constants (ttx.ALPHA_RED, ttx.MOSAIC_BLUE, ttx.DOUBLE_HEIGHT
...) are set on the table. Only the base, table, string and math libraries
are opened, and the base file loaders are removed.
*/

package main

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

func init() {
	compiledFeatures = append(compiledFeatures, "script:lua")
}

// ScriptTarget is what a page script may drive.
type ScriptTarget interface {
	PageTarget
	GetCell(x, y int) byte
	SetWindow(left, bottom, right, top int)
	SetFlashPhase(on bool)
	Page() []byte
}

// TeletextScript is a Lua state bound to one page.
type TeletextScript struct {
	L      *lua.LState
	target ScriptTarget
	writer *PageWriter
}

var scriptConstants = map[string]int{
	"ALPHA_RED":        TTXT_ALPHA_RED,
	"ALPHA_GREEN":      TTXT_ALPHA_GREEN,
	"ALPHA_YELLOW":     TTXT_ALPHA_YELLOW,
	"ALPHA_BLUE":       TTXT_ALPHA_BLUE,
	"ALPHA_MAGENTA":    TTXT_ALPHA_MAGENTA,
	"ALPHA_CYAN":       TTXT_ALPHA_CYAN,
	"ALPHA_WHITE":      TTXT_ALPHA_WHITE,
	"FLASH":            TTXT_FLASH,
	"STEADY":           TTXT_STEADY,
	"NORMAL_HEIGHT":    TTXT_NORMAL_HEIGHT,
	"DOUBLE_HEIGHT":    TTXT_DOUBLE_HEIGHT,
	"MOSAIC_RED":       TTXT_MOSAIC_RED,
	"MOSAIC_GREEN":     TTXT_MOSAIC_GREEN,
	"MOSAIC_YELLOW":    TTXT_MOSAIC_YELLOW,
	"MOSAIC_BLUE":      TTXT_MOSAIC_BLUE,
	"MOSAIC_MAGENTA":   TTXT_MOSAIC_MAGENTA,
	"MOSAIC_CYAN":      TTXT_MOSAIC_CYAN,
	"MOSAIC_WHITE":     TTXT_MOSAIC_WHITE,
	"CONCEAL":          TTXT_CONCEAL,
	"CONTIGUOUS":       TTXT_CONTIGUOUS,
	"SEPARATED":        TTXT_SEPARATED,
	"BLACK_BACKGROUND": TTXT_BLACK_BACKGROUND,
	"NEW_BACKGROUND":   TTXT_NEW_BACKGROUND,
	"HOLD_MOSAICS":     TTXT_HOLD_MOSAICS,
	"RELEASE_MOSAICS":  TTXT_RELEASE_MOSAICS,
	"COLS":             TTXT_COLS,
	"ROWS":             TTXT_ROWS,
}

// NewTeletextScript opens a Lua state with the ttx table installed.
func NewTeletextScript(target ScriptTarget) *TeletextScript {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load"} {
		L.SetGlobal(name, lua.LNil)
	}

	s := &TeletextScript{
		L:      L,
		target: target,
		writer: NewPageWriter(target),
	}
	s.install()
	return s
}

func (s *TeletextScript) install() {
	L := s.L
	ttx := L.NewTable()
	funcs := map[string]lua.LGFunction{
		"write":  s.luaWrite,
		"get":    s.luaGet,
		"print":  s.luaPrint,
		"move":   s.luaMove,
		"cls":    s.luaCls,
		"scroll": s.luaScroll,
		"window": s.luaWindow,
		"flash":  s.luaFlash,
		"mosaic": s.luaMosaic,
		"text":   s.luaText,
	}
	for name, fn := range funcs {
		L.SetField(ttx, name, L.NewFunction(fn))
	}
	for name, v := range scriptConstants {
		L.SetField(ttx, name, lua.LNumber(v))
	}
	L.SetGlobal("ttx", ttx)
}

// Writer returns the text cursor stream shared with ttx.print.
func (s *TeletextScript) Writer() *PageWriter {
	return s.writer
}

// RunFile executes a script file.
func (s *TeletextScript) RunFile(path string) error {
	return s.doWithRecovery(func() error { return s.L.DoFile(path) })
}

// RunString executes script source.
func (s *TeletextScript) RunString(code string) error {
	return s.doWithRecovery(func() error { return s.L.DoString(code) })
}

// CallHook calls global function name if the script defined one. A missing
// hook is not an error.
func (s *TeletextScript) CallHook(name string, args ...lua.LValue) error {
	fn := s.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil
	}
	return s.doWithRecovery(func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	})
}

func (s *TeletextScript) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TeletextError{Operation: "script", Details: fmt.Sprintf("lua panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &TeletextError{Operation: "script", Details: "lua error", Err: err}
	}
	return nil
}

func (s *TeletextScript) Close() {
	s.L.Close()
}

func checkCell(L *lua.LState, n int) (col, row int) {
	col = L.CheckInt(n)
	row = L.CheckInt(n + 1)
	return col, row
}

func (s *TeletextScript) luaWrite(L *lua.LState) int {
	col, row := checkCell(L, 1)
	code := L.CheckInt(3)
	if code < 0 || code > 0xFF {
		L.ArgError(3, "code must be 0-255")
		return 0
	}
	if !inGrid(col, row) {
		return 0
	}
	s.target.WriteCell(col*TTXT_GLYPH_WIDTH, row*TTXT_GLYPH_HEIGHT, byte(code))
	return 0
}

func (s *TeletextScript) luaGet(L *lua.LState) int {
	col, row := checkCell(L, 1)
	if !inGrid(col, row) {
		L.Push(lua.LNumber(0))
		return 1
	}
	L.Push(lua.LNumber(s.target.GetCell(col*TTXT_GLYPH_WIDTH, row*TTXT_GLYPH_HEIGHT)))
	return 1
}

func (s *TeletextScript) luaPrint(L *lua.LState) int {
	var sb strings.Builder
	for i := 1; i <= L.GetTop(); i++ {
		sb.WriteString(L.ToStringMeta(L.Get(i)).String())
	}
	_, _ = s.writer.WriteString(sb.String())
	return 0
}

func (s *TeletextScript) luaMove(L *lua.LState) int {
	col, row := checkCell(L, 1)
	s.writer.MoveTo(col, row)
	return 0
}

func (s *TeletextScript) luaCls(L *lua.LState) int {
	s.target.Clear()
	s.writer.Home()
	return 0
}

func (s *TeletextScript) luaScroll(L *lua.LState) int {
	s.target.Scroll()
	return 0
}

func (s *TeletextScript) luaWindow(L *lua.LState) int {
	left := L.CheckInt(1)
	bottom := L.CheckInt(2)
	right := L.CheckInt(3)
	top := L.CheckInt(4)
	s.target.SetWindow(left, bottom, right, top)
	s.writer.Home()
	return 0
}

func (s *TeletextScript) luaFlash(L *lua.LState) int {
	s.target.SetFlashPhase(L.CheckBool(1))
	return 0
}

// MosaicCode returns the displayable code that selects 6-bit pattern p in
// graphics mode.
func MosaicCode(p byte) byte {
	p &= 0x3F
	return TTXT_SPACE | p&0x1F | (p&0x20)<<1
}

func (s *TeletextScript) luaMosaic(L *lua.LState) int {
	p := L.CheckInt(1)
	if p < 0 || p > 63 {
		L.ArgError(1, "pattern must be 0-63")
		return 0
	}
	L.Push(lua.LNumber(MosaicCode(byte(p))))
	return 1
}

func (s *TeletextScript) luaText(L *lua.LState) int {
	L.Push(lua.LString(ExportPageText(s.target.Page())))
	return 1
}
