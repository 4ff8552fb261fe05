package config

import (
	"io"
	"os"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Stdout StdoutFunc
	Stderr StderrFunc
}

// StdoutFunc is a function that returns a writer for stdout.
// It returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// StderrFunc is a function that returns a writer for stderr.
type StderrFunc func() io.Writer

// GetStdoutFunc returns the stdout function from dependencies, or a default implementation.
// If deps is nil or deps.Stdout is nil, returns a function that uses os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetStderrFunc returns the stderr function from dependencies, or a default implementation.
func GetStderrFunc(deps *Dependencies) StderrFunc {
	if deps != nil && deps.Stderr != nil {
		return deps.Stderr
	}
	return func() io.Writer {
		return os.Stderr
	}
}
