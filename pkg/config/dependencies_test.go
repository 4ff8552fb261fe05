package config

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func TestGetStdoutFunc(t *testing.T) {
	t.Parallel()

	if got := GetStdoutFunc(nil)(); got != os.Stdout {
		t.Errorf("GetStdoutFunc(nil)() = %v; want os.Stdout", got)
	}
	if got := GetStdoutFunc(&Dependencies{})(); got != os.Stdout {
		t.Errorf("GetStdoutFunc(empty)() = %v; want os.Stdout", got)
	}

	var buf bytes.Buffer
	deps := &Dependencies{Stdout: func() io.Writer { return &buf }}
	if got := GetStdoutFunc(deps)(); got != &buf {
		t.Errorf("GetStdoutFunc(deps)() did not return the injected writer")
	}
}

func TestGetStderrFunc(t *testing.T) {
	t.Parallel()

	if got := GetStderrFunc(nil)(); got != os.Stderr {
		t.Errorf("GetStderrFunc(nil)() = %v; want os.Stderr", got)
	}

	var buf bytes.Buffer
	deps := &Dependencies{Stderr: func() io.Writer { return &buf }}
	if got := GetStderrFunc(deps)(); got != &buf {
		t.Errorf("GetStderrFunc(deps)() did not return the injected writer")
	}
}
