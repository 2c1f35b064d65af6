// Package monitoring holds the diagnostic logger shared by the clusterer
// and the command-line tool.
package monitoring

import (
	"fmt"
	"io"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf.
// SetLogger swaps it; tests mute it with SetLogger(nil).
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// WriterLogger returns a logger that writes each formatted message to w on
// its own line. Write errors are dropped.
func WriterLogger(w io.Writer) func(format string, v ...any) {
	return func(format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			msg += "\n"
		}
		_, _ = io.WriteString(w, msg)
	}
}
