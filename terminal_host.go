//go:build !windows

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// KeySink receives bytes read from the host terminal.
type KeySink interface {
	HandleKey(b byte)
}

// TerminalHost reads stdin and feeds bytes into a teletext page. An
// interactive terminal is switched to raw mode and Enter becomes CR LF; a
// pipe is passed through untouched so page streams can be fed from files.
type TerminalHost struct {
	sink         KeySink
	onExit       func()
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	raw          bool
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter that reads stdin into sink. onExit
// runs on Ctrl+C or Ctrl+D in raw mode and at end of input for pipes.
func NewTerminalHost(sink KeySink, onExit func()) *TerminalHost {
	return &TerminalHost{
		sink:   sink,
		onExit: onExit,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start sets stdin to non-blocking mode and begins reading in a goroutine.
// Call Stop() to restore stdin.
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

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		if h.oldTermState != nil {
			_ = term.Restore(h.fd, h.oldTermState)
			h.oldTermState = nil
		}
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 256)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			for _, b := range buf[:max(n, 0)] {
				if h.raw && (b == 0x03 || b == 0x04) {
					h.exit()
					return
				}
				h.route(b)
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				if !h.raw {
					// End of piped input
					h.exit()
					return
				}
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

func (h *TerminalHost) route(b byte) {
	if h.raw && b == '\r' {
		// Raw mode sends CR for Enter; the page wants a new line.
		h.sink.HandleKey(STREAM_CR)
		h.sink.HandleKey(STREAM_LF)
		return
	}
	h.sink.HandleKey(b)
}

func (h *TerminalHost) exit() {
	if h.onExit != nil {
		h.onExit()
	}
}

// Stop terminates the stdin reading goroutine and restores stdin to blocking mode.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
