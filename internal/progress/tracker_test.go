package progress

import (
	"fmt"
	"strings"
	"testing"
)

func TestConsoleTracker(t *testing.T) {
	var out strings.Builder
	tracker := NewConsoleTracker(&out)

	tracker.Start("batch", 2)
	tracker.Item(0, "clone")
	tracker.ItemDone(0)
	tracker.Item(1, "push")
	tracker.ItemFailed(1, fmt.Errorf("remote rejected"))
	tracker.Complete()

	log := out.String()
	for _, want := range []string{
		"Starting batch (2 items)",
		"[1/2] clone",
		"[1/2] ok",
		"[2/2] push",
		"[2/2] failed: remote rejected",
		"with 1 failure(s)",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("output missing %q:\n%s", want, log)
		}
	}
}

func TestConsoleTrackerCleanRun(t *testing.T) {
	var out strings.Builder
	tracker := NewConsoleTracker(&out)

	tracker.Start("batch", 1)
	tracker.Item(0, "status")
	tracker.ItemDone(0)
	tracker.Complete()

	if strings.Contains(out.String(), "failure") {
		t.Errorf("clean run should not mention failures:\n%s", out.String())
	}
}

func TestNopTrackerIsSafe(t *testing.T) {
	var tracker Tracker = Nop{}

	tracker.Start("batch", 0)
	tracker.Item(0, "status")
	tracker.ItemDone(0)
	tracker.ItemFailed(0, fmt.Errorf("x"))
	tracker.Complete()
}
