//go:build windows

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// KeySink receives bytes read from the host terminal.
type KeySink interface {
	HandleKey(b byte)
}

// TerminalHost reads stdin and feeds bytes into a teletext page.
// Windows console reads block, so Stop does not wait for a pending read.
type TerminalHost struct {
	sink         KeySink
	onExit       func()
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	raw          bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter that reads stdin into sink.
func NewTerminalHost(sink KeySink, onExit func()) *TerminalHost {
	return &TerminalHost{
		sink:   sink,
		onExit: onExit,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start sets stdin to raw mode when it is a console and begins reading in a
// goroutine. Call Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	if term.IsTerminal(h.fd) {
		oldState, err := term.MakeRaw(h.fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
			close(h.done)
			return
		}
		h.oldTermState = oldState
		h.raw = true
	}

	go func() {
		defer close(h.done)
		buf := make([]byte, 256)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := os.Stdin.Read(buf)
			for _, b := range buf[:n] {
				if h.raw && (b == 0x03 || b == 0x04) {
					h.exit()
					return
				}
				if h.raw && b == '\r' {
					h.sink.HandleKey(STREAM_CR)
					h.sink.HandleKey(STREAM_LF)
					continue
				}
				h.sink.HandleKey(b)
			}
			if err != nil {
				if !h.raw {
					h.exit()
				}
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

func (h *TerminalHost) exit() {
	if h.onExit != nil {
		h.onExit()
	}
}

// Stop terminates the stdin reading goroutine and restores terminal state.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	select {
	case <-h.done:
	case <-time.After(50 * time.Millisecond):
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
