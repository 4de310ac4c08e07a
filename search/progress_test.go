package search

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer serializes writes so the reporter can be read after join.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatchReturnsOnCompletedRun(t *testing.T) {
	m := NewMonitor(1)
	m.markStarted()
	m.markCompleted()

	var buf syncBuffer
	done := make(chan struct{})
	go func() {
		Watch(&buf, m, 100)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return for a completed run")
	}
}

func TestWatchRendersProgress(t *testing.T) {
	m := NewMonitor(2)

	var buf syncBuffer
	done := make(chan struct{})
	go func() {
		Watch(&buf, m, 100)
		close(done)
	}()

	m.markStarted()
	m.bump(0)
	m.bump(1)
	time.Sleep(3 * pollInterval)
	m.markCompleted()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not terminate after completion")
	}

	out := buf.String()
	if !strings.Contains(out, "Progress:") {
		t.Errorf("no progress line rendered: %q", out)
	}
	if !strings.Contains(out, "[2 / 100]") {
		t.Errorf("counter sum missing from progress line: %q", out)
	}
}
