//go:build !windows

// Package stderr captures writes to file descriptor 2 while the TUI owns the
// terminal. Anything that prints to stderr behind Go's back (C libraries,
// misbehaving child processes) would otherwise tear the alternate screen.
// Captured lines are delivered on Messages so the app can surface them as
// notifications instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives stderr lines captured while the program runs.
// Callers should read from this channel to display the lines in the UI.
var Messages = make(chan string, 100)

var (
	realFd    int // duplicate of the terminal's fd 2
	rd, wr    *os.File
	capturing bool
)

// Start redirects fd 2 into a pipe and begins forwarding its lines to
// Messages. Call it early in main, before the terminal enters the alternate
// screen. On error the program can keep going; stray writes simply land on
// the untouched stderr.
func Start() error {
	if capturing {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Keep a duplicate of the real stderr for WriteOriginal and Stop.
	realFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(realFd)
		r.Close()
		w.Close()
		return err
	}

	rd, wr = r, w
	capturing = true

	go forward(rd)
	return nil
}

// forward pumps captured lines into Messages, dropping them when the
// channel is full rather than blocking the reader.
func forward(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
		}
	}
}

// WriteOriginal writes directly to the saved stderr, bypassing capture.
// For fatal errors that must be visible even while the TUI is running.
func WriteOriginal(msg string) {
	if realFd > 0 {
		_, _ = syscall.Write(realFd, []byte(msg))
	}
}

// Stop puts the original stderr back and closes the pipe. Call on exit.
func Stop() {
	if !capturing {
		return
	}

	_ = syscall.Dup2(realFd, int(os.Stderr.Fd()))
	_ = syscall.Close(realFd)

	wr.Close()
	rd.Close()

	close(Messages)
	capturing = false
}
