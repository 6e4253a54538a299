package gitcmd

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// fakeProber replays canned answers keyed by a substring of the probe line
type fakeProber struct {
	answers map[string]string // subcommand substring -> stdout
	failOn  string
	ran     []string
}

func (f *fakeProber) Capture(_ context.Context, line string) (string, error) {
	f.ran = append(f.ran, line)
	if f.failOn != "" && strings.Contains(line, f.failOn) {
		return "", fmt.Errorf("probe failed: %s", line)
	}
	for sub, out := range f.answers {
		if strings.Contains(line, sub) {
			return out, nil
		}
	}
	return "", nil
}

func (f *fakeProber) ranLine(sub string) bool {
	for _, line := range f.ran {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func commitContext(probe Prober, message string) BuildContext {
	return BuildContext{
		RepoPath: "/repo",
		Params:   Params{Message: message},
		Probe:    probe,
	}
}

func TestCommitCleanTreeIsNoOp(t *testing.T) {
	probe := &fakeProber{answers: map[string]string{"status --porcelain": ""}}

	cmd, err := buildCommit(context.Background(), commitContext(probe, "msg"))
	require.NoError(t, err)

	assert.Equal(t, noChangesLine, cmd.Line)
	assert.False(t, probe.ranLine("add -A"), "clean tree must not be staged")
}

func TestCommitAutoStages(t *testing.T) {
	probe := &fakeProber{answers: map[string]string{
		"status --porcelain":        " M main.go",
		"diff --cached --name-only": "main.go",
	}}

	cmd, err := buildCommit(context.Background(), commitContext(probe, "fix parser"))
	require.NoError(t, err)

	assert.Equal(t, `git -C "/repo" commit -m "fix parser"`, cmd.Line)
	assert.True(t, probe.ranLine("add -A"), "dirty tree must be staged")
}

func TestCommitNothingStagedIsNoOp(t *testing.T) {
	// Dirty status but nothing survives staging (e.g. everything ignored)
	probe := &fakeProber{answers: map[string]string{
		"status --porcelain":        "?? build/",
		"diff --cached --name-only": "",
	}}

	cmd, err := buildCommit(context.Background(), commitContext(probe, "msg"))
	require.NoError(t, err)

	assert.Equal(t, noChangesLine, cmd.Line)
}

func TestCommitMessageEscaped(t *testing.T) {
	probe := &fakeProber{answers: map[string]string{
		"status --porcelain":        " M main.go",
		"diff --cached --name-only": "main.go",
	}}

	cmd, err := buildCommit(context.Background(), commitContext(probe, `say "hello"`))
	require.NoError(t, err)

	assert.Equal(t, `git -C "/repo" commit -m "say \"hello\""`, cmd.Line)
}

func TestCommitRequiresMessage(t *testing.T) {
	_, err := buildCommit(context.Background(), commitContext(&fakeProber{}, ""))
	assert.ErrorIs(t, err, errors.ErrMissingParameter)
}

func TestCommitProbeFailurePropagates(t *testing.T) {
	probe := &fakeProber{
		answers: map[string]string{"status --porcelain": " M main.go"},
		failOn:  "add -A",
	}

	_, err := buildCommit(context.Background(), commitContext(probe, "msg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging changes")
}
