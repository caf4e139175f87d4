package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// elapsedAfter is how long a derivation runs before the spinner starts
// showing elapsed time. Local manifests resolve in milliseconds; only
// remote adjustment fetches take long enough to be worth a counter.
const elapsedAfter = 2 * time.Second

// Spinner renders an animated progress line on stderr while a pipeline
// stage runs. It stops on demand or when its context is cancelled, and
// clears its line either way so command output stays clean.
type Spinner struct {
	message string
	out     io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	started time.Time

	mu        sync.Mutex
	lastWidth int
}

// newSpinner creates a spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that stops when ctx is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		out:     os.Stderr,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the animation. The first frame renders immediately so
// short stages still show feedback.
func (s *Spinner) Start() {
	s.started = time.Now()
	s.render(0)

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 1
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.render(i)
				i++
			}
		}
	}()
}

func (s *Spinner) render(frame int) {
	text := s.message
	if elapsed := time.Since(s.started); elapsed >= elapsedAfter {
		text = fmt.Sprintf("%s (%ds)", s.message, int(elapsed.Seconds()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastWidth = len(text) + 4
	fmt.Fprintf(s.out, "\r%s %s",
		styleIconSpinner.Render(s.frames[frame%len(s.frames)]),
		StyleDim.Render(text))
}

// Stop halts the animation and clears the line. Stopping twice is safe.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.lastWidth))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner stopped because its context
// was cancelled rather than by an explicit Stop.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
