package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ─── logger ───────────────────────────────────────────────────────────────────

// Logger writes diagnostics to stderr so stdout stays clean for results.
type Logger struct {
	w      io.Writer
	debug  bool
	silent bool
}

var (
	colorDebug = color.New(color.FgHiBlack)
	colorWarn  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed, color.Bold)
)

// NewLogger returns a stderr Logger. Debug lines are dropped unless debug is
// set; warnings are dropped in silent mode. Errors are always written.
func NewLogger(debug, silent bool) *Logger {
	return &Logger{w: os.Stderr, debug: debug, silent: silent}
}

// NewLoggerTo is like NewLogger but writes to w.
func NewLoggerTo(w io.Writer, debug, silent bool) *Logger {
	return &Logger{w: w, debug: debug, silent: silent}
}

func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	colorDebug.Fprintf(l.w, "[debug] "+format+"\n", args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l.silent {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	if l.silent {
		return
	}
	colorWarn.Fprint(l.w, "warn: ")
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	colorError.Fprint(l.w, "error: ")
	fmt.Fprintf(l.w, format+"\n", args...)
}
