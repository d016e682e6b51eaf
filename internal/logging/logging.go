// Package logging wraps zerolog the way medusa's services do: a
// component-scoped logger built once at construction and threaded
// through, never a package-level global consulted from deep call sites.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger tagged with a "component" field, writing
// to w (os.Stdout if nil). Callers hand this to each package constructor;
// nothing in this module reaches for a global logger.
func New(component string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// Nop returns a logger that discards everything, used as the zero-value
// default so components remain usable without an explicit logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
