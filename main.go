// main.go - Main entry point for the Teletext Engine viewer

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
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/term"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░\033[0m")
	fmt.Println("\nTeletext Engine: a World System Teletext Level-1 page decoder and viewer.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

type viewerOptions struct {
	pagePath     string
	fontPath     string
	scriptPath   string
	savePath     string
	snapshotPath string
	stdin        bool
	tui          bool
	fullscreen   bool
	features     bool
	scale        int
	flashFrames  int
}

func parseFlags(args []string) (viewerOptions, error) {
	var opts viewerOptions

	flagSet := flag.NewFlagSet("teletext_engine", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.pagePath, "page", "", "Page file to show (raw 1000-byte dump or .tti)")
	flagSet.StringVar(&opts.fontPath, "font", "", "BDF base font (default: built-in 7x13)")
	flagSet.StringVar(&opts.scriptPath, "script", "", "Lua page script")
	flagSet.StringVar(&opts.savePath, "save", "", "Write the page here on exit (.tti or raw)")
	flagSet.StringVar(&opts.snapshotPath, "snapshot", "", "Render once to a PNG file and exit")
	flagSet.BoolVar(&opts.stdin, "stdin", false, "Stream stdin into the page")
	flagSet.BoolVar(&opts.tui, "tui", false, "Render in the terminal instead of a window")
	flagSet.BoolVar(&opts.fullscreen, "fullscreen", false, "Start the window fullscreen")
	flagSet.BoolVar(&opts.features, "features", false, "Print compiled features and exit")
	flagSet.IntVar(&opts.scale, "scale", 1, "Window scale factor (1-4)")
	flagSet.IntVar(&opts.flashFrames, "flash-frames", TTXT_FLASH_FRAMES, "Frames between flash toggles at 50Hz")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./teletext_engine [-page file] [-font file.bdf] [-script file.lua] [-stdin] [-tui|-snapshot out.png] [page]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.Usage()
		}
		return opts, err
	}
	if opts.pagePath == "" && flagSet.NArg() > 0 {
		opts.pagePath = flagSet.Arg(0)
	}
	if opts.flashFrames <= 0 {
		return opts, fmt.Errorf("-flash-frames must be positive, got %d", opts.flashFrames)
	}
	if opts.tui && opts.snapshotPath != "" {
		return opts, errors.New("-tui and -snapshot are exclusive")
	}
	if opts.tui && opts.stdin {
		return opts, errors.New("-stdin cannot be used with -tui; the terminal is the input")
	}
	opts.scale = ClampScale(opts.scale)
	return opts, nil
}

func loadBaseFont(path string) (BaseFont, error) {
	if path == "" {
		return NewBasicBaseFont(), nil
	}
	return LoadBDFFontFile(path)
}

// viewer holds the running device and its page sources.
type viewer struct {
	opts   viewerOptions
	video  *TeletextVideo
	script *TeletextScript
}

// loadSources loads the page file and runs the page script, in that order.
func (v *viewer) loadSources() error {
	if v.opts.pagePath != "" {
		page, err := LoadPageFile(v.opts.pagePath)
		if err != nil {
			return err
		}
		v.video.LoadPage(page)
	}
	if v.opts.scriptPath == "" {
		return nil
	}
	if v.script != nil {
		v.video.SetFrameHook(nil)
		v.script.Close()
	}
	v.script = NewTeletextScript(v.video)
	if err := v.script.RunFile(v.opts.scriptPath); err != nil {
		return err
	}
	script := v.script
	v.video.SetFrameHook(func(frame uint64) {
		if err := script.CallHook("on_frame", lua.LNumber(frame)); err != nil {
			fmt.Fprintf(os.Stderr, "teletext_lua: on_frame: %v\n", err)
			v.video.SetFrameHook(nil)
		}
	})
	return nil
}

func (v *viewer) reload() {
	if err := v.loadSources(); err != nil {
		fmt.Fprintf(os.Stderr, "viewer: reload failed: %v\n", err)
		return
	}
	fmt.Printf("Reloaded %s\n", v.sourceName())
}

func (v *viewer) sourceName() string {
	switch {
	case v.opts.pagePath != "":
		return v.opts.pagePath
	case v.opts.scriptPath != "":
		return v.opts.scriptPath
	}
	return ""
}

func (v *viewer) status() StatusInfo {
	col, row := v.video.Cursor()
	return StatusInfo{
		Flash:      v.video.FlashPhase(),
		CursorCol:  col,
		CursorRow:  row,
		Window:     v.video.Window(),
		FrameCount: v.video.FrameCount(),
		Source:     v.sourceName(),
	}
}

func (v *viewer) savePage() {
	if v.opts.savePath == "" {
		return
	}
	if err := SavePage(v.opts.savePath, v.video.Page()); err != nil {
		fmt.Fprintf(os.Stderr, "viewer: %v\n", err)
		return
	}
	fmt.Printf("Saved page to %s\n", v.opts.savePath)
}

func (v *viewer) snapshot() error {
	if v.opts.stdin && !term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := io.Copy(v.video, os.Stdin); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := v.video.Snapshot(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(v.opts.snapshotPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", v.opts.snapshotPath)
	return nil
}

func (v *viewer) runWindow() error {
	out, err := NewVideoOutput(VIDEO_BACKEND_EBITEN)
	if err != nil {
		return err
	}
	cfg := DefaultDisplayConfig()
	cfg.Scale = v.opts.scale
	cfg.Fullscreen = v.opts.fullscreen
	if err := out.SetDisplayConfig(cfg); err != nil {
		return err
	}
	if in, ok := out.(InputCapable); ok {
		in.SetKeyHandler(v.video.HandleKey)
	}
	if cb, ok := out.(ClipboardCapable); ok {
		cb.SetPasteHandler(v.video.PasteText)
		cb.SetCopySource(v.video.PageText)
	}
	if st, ok := out.(StatusCapable); ok {
		st.SetStatusSource(v.status)
	}
	if rl, ok := out.(interface{ SetReloadHandler(func()) }); ok {
		rl.SetReloadHandler(v.reload)
	}

	exit := make(chan struct{}, 1)
	requestExit := func() {
		select {
		case exit <- struct{}{}:
		default:
		}
	}
	var host *TerminalHost
	if v.opts.stdin {
		host = NewTerminalHost(v.video, func() {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				requestExit()
			}
		})
		host.Start()
		defer host.Stop()
	}

	if err := out.Start(); err != nil {
		return err
	}
	v.video.StartRenderLoop(out)
	defer v.video.StopRenderLoop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	var done <-chan struct{}
	if d, ok := out.(Doner); ok {
		done = d.Done()
	}
	select {
	case <-done:
	case <-sig:
	case <-exit:
	}
	_ = out.Close()
	return nil
}

func (v *viewer) runTUI(screen tcell.Screen, surface *TcellSurface) error {
	defer screen.Fini()
	v.video.Refresh()
	v.video.StartRenderLoop(nil)
	defer v.video.StopRenderLoop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	stop := make(chan struct{})
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-sig:
			close(stop)
		case <-finished:
		}
	}()

	NewTeletextTUI(screen, surface, v.video).Run(stop)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if opts.features {
		printFeatures(os.Stdout)
		return
	}
	if !opts.tui && opts.snapshotPath == "" {
		boilerPlate()
	}

	font, err := loadBaseFont(opts.fontPath)
	if err != nil {
		fmt.Printf("Failed to load font: %v\n", err)
		os.Exit(1)
	}

	var (
		screen  tcell.Screen
		surface *TcellSurface
		extra   []TeletextSurface
	)
	if opts.tui {
		screen, err = tcell.NewScreen()
		if err == nil {
			err = screen.Init()
		}
		if err != nil {
			fmt.Printf("Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
		surface = NewTcellSurface(screen, 0, 0)
		extra = append(extra, surface)
	}

	video, err := NewTeletextVideo(font, extra...)
	if err != nil {
		if screen != nil {
			screen.Fini()
		}
		fmt.Printf("Failed to initialize teletext: %v\n", err)
		os.Exit(1)
	}
	video.SetFlashFrames(opts.flashFrames)

	v := &viewer{opts: opts, video: video}
	if err := v.loadSources(); err != nil {
		if screen != nil {
			screen.Fini()
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if v.script != nil {
			v.script.Close()
		}
	}()

	switch {
	case opts.snapshotPath != "":
		err = v.snapshot()
	case opts.tui:
		err = v.runTUI(screen, surface)
	default:
		if opts.pagePath != "" {
			fmt.Printf("Showing %s\n", strings.TrimSpace(opts.pagePath))
		}
		err = v.runWindow()
	}
	v.savePage()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
