// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockStdout records everything written to it so tests can inspect what
// a command printed. It is safe for concurrent use.
type MockStdout struct {
	mu         sync.Mutex
	outputBuf  bytes.Buffer
	outputCond *sync.Cond // signalled on every write
}

// NewMockStdout creates an empty MockStdout.
func NewMockStdout() *MockStdout {
	m := &MockStdout{}
	m.outputCond = sync.NewCond(&m.mu)
	return m
}

// Write appends p to the recorded output.
func (m *MockStdout) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.outputBuf.Write(p)
	m.outputCond.Broadcast()
	return n, err
}

// Output returns everything written so far.
func (m *MockStdout) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outputBuf.String()
}

// Lines returns the recorded output split into lines, without the
// trailing empty element a final newline would produce.
func (m *MockStdout) Lines() []string {
	out := m.Output()
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// WaitForOutput waits for the expected string to appear in the output within the given timeout.
// The timeout is specified in milliseconds.
func (m *MockStdout) WaitForOutput(expected string, timeoutMs int) error {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if strings.Contains(m.outputBuf.String(), expected) {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for output %q, got: %q", expected, m.outputBuf.String())
		}

		// wake up periodically to re-check the deadline
		go func() {
			time.Sleep(50 * time.Millisecond)
			m.outputCond.Broadcast()
		}()
		m.outputCond.Wait()
	}
}
