//go:build unix

package blaeck

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// NotifyResize delivers a signal on ch whenever the terminal is resized.
// The caller reads the new size with TerminalSize and forwards it to
// Renderer.HandleResize. Stop the subscription with signal.Stop.
func NotifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGWINCH)
}
