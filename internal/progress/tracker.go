// Package progress reports batch execution progress.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Tracker receives batch lifecycle events. Implementations must tolerate
// being called for zero items.
type Tracker interface {
	Start(name string, total int)
	Item(index int, operation string)
	ItemDone(index int)
	ItemFailed(index int, err error)
	Complete()
}

// Nop is the default tracker; it drops every event.
type Nop struct{}

func (Nop) Start(string, int) {}
func (Nop) Item(int, string) {}
func (Nop) ItemDone(int) {}
func (Nop) ItemFailed(int, error) {}
func (Nop) Complete() {}

// ConsoleTracker writes one line per event, suitable for interactive runs
type ConsoleTracker struct {
	Out io.Writer

	name      string
	total     int
	startTime time.Time
	failed    int
}

// NewConsoleTracker creates a console tracker writing to out
func NewConsoleTracker(out io.Writer) *ConsoleTracker {
	return &ConsoleTracker{Out: out}
}

// Start begins tracking a batch
func (t *ConsoleTracker) Start(name string, total int) {
	t.name = name
	t.total = total
	t.startTime = time.Now()
	t.failed = 0
	fmt.Fprintf(t.Out, "Starting %s (%d items)\n", name, total)
}

// Item announces that an item began executing
func (t *ConsoleTracker) Item(index int, operation string) {
	fmt.Fprintf(t.Out, "[%d/%d] %s\n", index+1, t.total, operation)
}

// ItemDone marks an item as succeeded
func (t *ConsoleTracker) ItemDone(index int) {
	fmt.Fprintf(t.Out, "[%d/%d] ok\n", index+1, t.total)
}

// ItemFailed marks an item as failed
func (t *ConsoleTracker) ItemFailed(index int, err error) {
	t.failed++
	fmt.Fprintf(t.Out, "[%d/%d] failed: %v\n", index+1, t.total, err)
}

// Complete reports the batch summary
func (t *ConsoleTracker) Complete() {
	duration := time.Since(t.startTime).Round(time.Millisecond)
	if t.failed > 0 {
		fmt.Fprintf(t.Out, "Completed %s with %d failure(s) (took %v)\n", t.name, t.failed, duration)
		return
	}
	fmt.Fprintf(t.Out, "Completed %s (took %v)\n", t.name, duration)
}
