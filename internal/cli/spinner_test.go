package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerWritesMessage(t *testing.T) {
	var buf syncBuffer
	s := startSpinner(context.Background(), &buf, "Connecting")
	time.Sleep(200 * time.Millisecond)
	s.stop()

	if !strings.Contains(buf.String(), "Connecting") {
		t.Errorf("spinner output = %q, want message", buf.String())
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	var buf syncBuffer
	s := startSpinner(context.Background(), &buf, "x")
	s.stop()
	s.stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf syncBuffer
	s := startSpinner(ctx, &buf, "x")
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
	s.stop()
}
