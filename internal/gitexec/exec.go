// Package gitexec runs constructed command lines as child processes.
//
// Two modes are supported. Capture buffers standard output and error in
// memory up to a fixed ceiling, sized for verbose log and diff output.
// Discard ignores the streams entirely and reports only the exit status,
// for callers that want to avoid memory pressure from huge outputs.
package gitexec

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// MaxCapturedOutput is the combined per-stream ceiling for captured mode.
// Exceeding it fails the invocation rather than silently truncating.
const MaxCapturedOutput = 500 * 1024 * 1024

// DefaultShell interprets the constructed command lines
const DefaultShell = "/bin/sh"

// Result holds the captured output of a successful execution, trimmed of
// surrounding whitespace
type Result struct {
	Stdout string
	Stderr string
}

// Runner executes command lines through a shell
type Runner struct {
	// Shell overrides DefaultShell when set
	Shell string
	// MaxOutput overrides MaxCapturedOutput when positive
	MaxOutput int64
}

func (r *Runner) shell() string {
	if r.Shell != "" {
		return r.Shell
	}
	return DefaultShell
}

func (r *Runner) limit() int64 {
	if r.MaxOutput > 0 {
		return r.MaxOutput
	}
	return MaxCapturedOutput
}

// Capture runs line and returns its trimmed standard output and error.
// A nonzero exit surfaces as a CommandError carrying whatever was captured.
func (r *Runner) Capture(ctx context.Context, line string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.shell(), "-c", line)

	stdout := newBoundedBuffer(r.limit())
	stderr := newBoundedBuffer(r.limit())
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if stdout.overflowed || stderr.overflowed {
		return Result{}, errors.NewCommand(line, "", "", errors.ErrOutputLimit)
	}
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return Result{}, errors.NewCommand(line, stdout.String(), stderr.String(), err)
	}

	return Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}, nil
}

// Discard runs line with both streams ignored, resolving purely on the
// process exit code.
func (r *Runner) Discard(ctx context.Context, line string) error {
	cmd := exec.CommandContext(ctx, r.shell(), "-c", line)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.NewCommand(line, "", "", ctx.Err())
		}
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return errors.NewCommand(line, "", "", fmt.Errorf("exited with code %d", exitErr.ExitCode()))
		}
		return errors.NewCommand(line, "", "", err)
	}
	return nil
}

// boundedBuffer accumulates writes up to a limit, then flags the overflow
// and swallows the rest so the child is not blocked on a dead pipe.
type boundedBuffer struct {
	buf        strings.Builder
	limit      int64
	written    int64
	overflowed bool
}

func newBoundedBuffer(limit int64) *boundedBuffer {
	return &boundedBuffer{limit: limit}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if b.overflowed {
		return len(p), nil
	}
	if b.written+int64(len(p)) > b.limit {
		remaining := b.limit - b.written
		if remaining > 0 {
			b.buf.Write(p[:remaining])
			b.written = b.limit
		}
		b.overflowed = true
		return len(p), nil
	}
	b.buf.Write(p)
	b.written += int64(len(p))
	return len(p), nil
}

func (b *boundedBuffer) String() string {
	return b.buf.String()
}
