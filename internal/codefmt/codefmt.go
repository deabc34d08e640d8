// Package codefmt implements the external code-formatter hook: an
// injectable interface with one method, so the serializer depends only on
// the interface and never on how a formatter is actually run. The native
// implementation here spawns a subprocess with the code piped to stdin,
// following the stdin/stdout pipe discipline used by the retrieved
// corpus's Pandoc subprocess runner.
package codefmt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimeout is wrapped into the error Subprocess.Format returns when the
// external command was killed for exceeding its configured timeout, so
// callers can distinguish a timeout from an ordinary formatter failure
// with errors.Is.
var ErrTimeout = errors.New("external formatter timed out")

// Hook formats code of the given language, returning the reformatted text.
// A non-nil error means the hook failed or timed out; the caller keeps the
// original code and records a warning instead of propagating the error.
type Hook interface {
	Format(ctx context.Context, language, code string) (string, error)
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, language, code string) (string, error)

func (f HookFunc) Format(ctx context.Context, language, code string) (string, error) {
	return f(ctx, language, code)
}

// Subprocess runs a configured external command with the code piped to its
// standard input and the reformatted code read from its standard output,
// bounded by Timeout (defaulting to 5s).
type Subprocess struct {
	Command string
	Args    []string
	Timeout time.Duration
}

const defaultTimeout = 5 * time.Second

// Format implements Hook.
func (s Subprocess) Format(ctx context.Context, language, code string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stdin = bytes.NewReader([]byte(code))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%s: timed out after %s: %w", s.Command, timeout, ErrTimeout)
	}
	if err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%s: %s", s.Command, firstLine(msg))
	}
	return stdout.String(), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
