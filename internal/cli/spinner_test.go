package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("deriving placements")
	s.out = &buf

	s.Start()
	time.Sleep(100 * time.Millisecond)
	// Stop must return without deadlocking while frames are rendering.
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "deriving placements") {
		t.Errorf("spinner output missing message: %q", out)
	}
	// The line is cleared when the spinner stops
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner did not clear its line: %q", out)
	}
}

func TestSpinnerShowsElapsedTime(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("fetching adjustments")
	s.out = &buf

	s.started = time.Now().Add(-3 * time.Second)
	s.render(0)

	if out := buf.String(); !strings.Contains(out, "(3s)") {
		t.Errorf("long-running spinner should show elapsed seconds: %q", out)
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.out = &bytes.Buffer{}
	s.Start()

	cancel()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if !s.Cancelled() {
		t.Error("spinner should report cancellation")
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	s := newSpinner("working")
	s.out = &bytes.Buffer{}
	s.Start()
	s.Stop()
	// Second stop must not panic or deadlock.
	s.Stop()
}
