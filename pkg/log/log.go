// Package log provides coloured console messages for the hello CLI.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var faint = color.New(color.Faint).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// Logger writes the same messages to a fixed writer and only emits
// Verbosef output when verbose is set.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New returns a Logger writing to out. A nil out means os.Stderr.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose}
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	red(l.out, "[!] Error: "+format, a...)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	blue(l.out, "[+] "+format, a...)
}

// Verbosef is a no-op unless the Logger was created with verbose set.
func (l *Logger) Verbosef(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	faint(l.out, "[*] "+format, a...)
}
