// Package batch executes an ordered collection of git work items.
//
// Items run strictly sequentially in input order; each command runs to
// completion before the next item starts. Failures are isolated per item:
// with continue-on-error enabled a failed item becomes an error record and
// the batch moves on, otherwise the first failure aborts the whole batch.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/NicabarNimble/go-gitrunner/internal/credentials"
	"github.com/NicabarNimble/go-gitrunner/internal/errors"
	"github.com/NicabarNimble/go-gitrunner/internal/gitcmd"
	"github.com/NicabarNimble/go-gitrunner/internal/gitexec"
	"github.com/NicabarNimble/go-gitrunner/internal/progress"
	"github.com/NicabarNimble/go-gitrunner/internal/urlutils"
)

// Item is one unit of batch input. It is constructed once and never
// mutated after that.
type Item struct {
	Operation gitcmd.Operation `json:"operation"`
	// RepoPath is the repository working directory; empty means the
	// current directory
	RepoPath string `json:"repoPath,omitempty"`
	// SkipOutput runs the command in discard mode: no captured output,
	// success or failure only
	SkipOutput bool          `json:"skipOutput,omitempty"`
	Params     gitcmd.Params `json:"params"`
}

// Outcome is the per-item result. Exactly one of the captured output pair,
// the Skipped marker, or Error applies.
type Outcome struct {
	Index   int    `json:"index"`
	Stdout  string `json:"stdout,omitempty"`
	Stderr  string `json:"stderr,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Executor runs constructed command lines. *gitexec.Runner is the standard
// implementation; tests substitute their own.
type Executor interface {
	Capture(ctx context.Context, line string) (gitexec.Result, error)
	Discard(ctx context.Context, line string) error
}

// Dispatcher runs work items one at a time, in input order
type Dispatcher struct {
	// Runner executes constructed commands; required
	Runner Executor
	// Resolver yields per-item credentials; required
	Resolver *credentials.Resolver
	// ContinueOnError records item failures instead of aborting the batch
	ContinueOnError bool
	// Tracker receives progress events; defaults to progress.Nop
	Tracker progress.Tracker
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

func (d *Dispatcher) tracker() progress.Tracker {
	if d.Tracker != nil {
		return d.Tracker
	}
	return progress.Nop{}
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Run executes all items. The returned slice preserves input order and has
// exactly one outcome per item; with continue-on-error disabled it is nil
// and the error names the failing item's index.
func (d *Dispatcher) Run(ctx context.Context, items []Item) ([]Outcome, error) {
	tracker := d.tracker()
	tracker.Start("batch", len(items))
	defer tracker.Complete()

	outcomes := make([]Outcome, 0, len(items))
	for i, item := range items {
		tracker.Item(i, string(item.Operation))

		outcome, err := d.runItem(ctx, i, item)
		if err != nil {
			itemErr := errors.NewItem(i, err)
			tracker.ItemFailed(i, itemErr)
			if !d.ContinueOnError {
				return nil, itemErr
			}
			outcomes = append(outcomes, Outcome{Index: i, Error: itemErr.Error()})
			continue
		}

		tracker.ItemDone(i)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// runItem takes one item through build and execution
func (d *Dispatcher) runItem(ctx context.Context, index int, item Item) (Outcome, error) {
	builder, ok := gitcmd.Lookup(item.Operation)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", errors.ErrUnsupportedOperation, item.Operation)
	}

	repoPath := item.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	creds, err := d.Resolver.Resolve(ctx, credentials.Request{
		Mode:     credentials.Mode(item.Params.Authentication),
		Name:     item.Params.CredentialName,
		Username: item.Params.Username,
		Password: item.Params.Password,
	})
	if err != nil {
		return Outcome{}, errors.New(string(item.Operation), err)
	}

	command, err := builder.Build(ctx, gitcmd.BuildContext{
		RepoPath: repoPath,
		Params:   item.Params,
		Creds:    creds,
		Probe:    proberFunc(d.Runner.Capture),
	})
	if err != nil {
		return Outcome{}, errors.New(string(item.Operation), err)
	}

	if command.TempFile != "" {
		// Deletion must run whether execution succeeds or fails, and a
		// deletion failure must not mask the execution result
		defer func(path string) {
			if err := os.Remove(path); err != nil {
				d.logger().Warn("temp file cleanup failed", "path", path, "error", err)
			}
		}(command.TempFile)
	}

	d.logger().Debug("executing", "index", index, "operation", item.Operation, "command", urlutils.RedactLine(command.Line))

	if item.SkipOutput {
		if err := d.Runner.Discard(ctx, command.Line); err != nil {
			return Outcome{}, errors.New(string(item.Operation), err)
		}
		return Outcome{Index: index, Skipped: true}, nil
	}

	result, err := d.Runner.Capture(ctx, command.Line)
	if err != nil {
		return Outcome{}, errors.New(string(item.Operation), err)
	}
	return Outcome{Index: index, Stdout: result.Stdout, Stderr: result.Stderr}, nil
}

// proberFunc lets the commit builder reuse the batch's capture runner for
// its working-tree inspection
type proberFunc func(ctx context.Context, line string) (gitexec.Result, error)

func (f proberFunc) Capture(ctx context.Context, line string) (string, error) {
	result, err := f(ctx, line)
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}
