package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logr.Logger writing to w. Messages logged with V(n) for
// n > verbosity are dropped. stdr keeps verbosity process-wide, so the last
// call wins.
func New(w io.Writer, name string, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	l := stdr.New(log.New(w, "", log.LstdFlags))
	if name != "" {
		l = l.WithName(name)
	}
	return l
}
