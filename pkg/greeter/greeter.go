// Package greeter writes the hello greeting to standard output.
package greeter

import (
	"dominicbreuker/hello/pkg/config"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Greeting is the line written by Hello, without its trailing newline.
const Greeting = "Hello, world!"

// Greeter writes Greeting to an output stream.
type Greeter struct {
	stdout config.StdoutFunc
	color  config.ColorMode
}

// Option customizes a Greeter.
type Option func(*Greeter)

// WithColor sets when the greeting is coloured. The text and the trailing
// newline are the same in every mode.
func WithColor(mode config.ColorMode) Option {
	return func(g *Greeter) {
		g.color = mode
	}
}

// New creates a Greeter writing to the stdout from deps. Colour is off
// unless WithColor is given.
func New(deps *config.Dependencies, opts ...Option) *Greeter {
	g := &Greeter{
		stdout: config.GetStdoutFunc(deps),
		color:  config.ColorNever,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Greet writes one greeting line. Write errors are ignored.
func (g *Greeter) Greet() {
	out := g.stdout()

	text := Greeting
	if g.colored(out) {
		c := color.New(color.FgGreen, color.Bold)
		c.EnableColor()
		text = c.Sprint(Greeting)
	}

	_, _ = fmt.Fprintln(out, text)
}

func (g *Greeter) colored(out io.Writer) bool {
	switch g.color {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}

// Hello prints "Hello, world!" to standard output.
func Hello() {
	New(nil).Greet()
}
