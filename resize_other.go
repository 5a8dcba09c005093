//go:build !unix

package blaeck

import "os"

// NotifyResize is a no-op on platforms without SIGWINCH. Callers poll
// TerminalSize instead.
func NotifyResize(ch chan<- os.Signal) {}
