// Package speech wraps an external speech-to-text command as a
// single-utterance recognizer. The capability is runtime-conditional: when no
// command is configured or resolvable, Lookup reports it absent and the
// caller degrades to typed input only.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"
)

var (
	// ErrListening means a recognition session is already active. Overlapping
	// start requests are rejected, not queued.
	ErrListening = errors.New("already listening")
	// ErrNoSpeech means the utterance ended without a usable transcript.
	ErrNoSpeech = errors.New("no speech recognized")
)

// Recognizer runs one transcriber command per Start call. The command is
// expected to capture a single utterance and print the transcript on stdout.
type Recognizer struct {
	command   []string
	timeout   time.Duration
	listening atomic.Bool
}

// Lookup resolves the configured transcriber command. ok is false when the
// command is empty or its binary cannot be found, in which case the speech
// capability is simply absent.
func Lookup(command string, timeout time.Duration) (*Recognizer, bool) {
	parts := strings.Fields(strings.TrimSpace(command))
	if len(parts) == 0 {
		return nil, false
	}
	if _, err := exec.LookPath(parts[0]); err != nil {
		return nil, false
	}
	return &Recognizer{command: parts, timeout: timeout}, true
}

// Listening reports whether a recognition session is active.
func (r *Recognizer) Listening() bool {
	return r.listening.Load()
}

// Start captures one utterance and returns its transcript. Only one session
// may run at a time; a second Start while listening fails with ErrListening.
func (r *Recognizer) Start(ctx context.Context) (string, error) {
	if !r.listening.CompareAndSwap(false, true) {
		return "", ErrListening
	}
	defer r.listening.Store(false)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("speech capture timed out")
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("speech command failed: %s", detail)
	}

	transcript := strings.TrimSpace(stdout.String())
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}
