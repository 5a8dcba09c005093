package blaeck

import (
	"os"

	"github.com/muesli/termenv"
)

// Capabilities describes what the output terminal supports. The pipeline
// never queries the terminal itself; capabilities are detected from the
// environment or injected by the caller.
type Capabilities struct {
	TrueColor bool // 24-bit RGB SGR sequences supported
	Unicode   bool // Wide/Unicode glyphs render correctly
}

// DefaultCapabilities returns conservative defaults: 256-color output with
// Unicode support, RGB downsampled to the 6x6x6 cube.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		TrueColor: false,
		Unicode:   true,
	}
}

// DetectCapabilities inspects the environment (TERM, COLORTERM and
// friends via termenv) and reports the color fidelity of the attached
// terminal. This reads environment variables only; it never writes to or
// queries the terminal, and the result does not depend on whether stdout
// is a TTY, so piped output keeps the fidelity the environment declares.
func DetectCapabilities() Capabilities {
	caps := DefaultCapabilities()
	out := termenv.NewOutput(os.Stdout, termenv.WithUnsafe())
	if out.EnvColorProfile() == termenv.TrueColor {
		caps.TrueColor = true
	}
	return caps
}
