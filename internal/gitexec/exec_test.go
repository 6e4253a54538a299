package gitexec

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

func TestCaptureTrimsOutput(t *testing.T) {
	runner := &Runner{}

	result, err := runner.Capture(context.Background(), `echo "  padded  "`)
	require.NoError(t, err)

	assert.Equal(t, "padded", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestCaptureSeparatesStreams(t *testing.T) {
	runner := &Runner{}

	result, err := runner.Capture(context.Background(), `echo out; echo err 1>&2`)
	require.NoError(t, err)

	assert.Equal(t, "out", result.Stdout)
	assert.Equal(t, "err", result.Stderr)
}

func TestCaptureNonzeroExit(t *testing.T) {
	runner := &Runner{}

	_, err := runner.Capture(context.Background(), `echo diagnostics 1>&2; exit 3`)
	require.Error(t, err)

	var cmdErr *errors.CommandError
	require.True(t, stderrors.As(err, &cmdErr))
	assert.Equal(t, "diagnostics\n", cmdErr.Stderr)
}

func TestCaptureOutputCeiling(t *testing.T) {
	runner := &Runner{MaxOutput: 1024}

	_, err := runner.Capture(context.Background(), `yes x | head -c 4096`)
	assert.ErrorIs(t, err, errors.ErrOutputLimit)
}

func TestCaptureWithinCeiling(t *testing.T) {
	runner := &Runner{MaxOutput: 1024}

	result, err := runner.Capture(context.Background(), `printf %s `+strings.Repeat("a", 512))
	require.NoError(t, err)
	assert.Len(t, result.Stdout, 512)
}

func TestDiscardSuccess(t *testing.T) {
	runner := &Runner{}

	err := runner.Discard(context.Background(), `echo ignored`)
	assert.NoError(t, err)
}

func TestDiscardNonzeroExitNamesCode(t *testing.T) {
	runner := &Runner{}

	err := runner.Discard(context.Background(), `exit 7`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 7")
}

func TestCaptureCancelledContext(t *testing.T) {
	runner := &Runner{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Capture(ctx, `sleep 10`)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBoundedBufferExactLimit(t *testing.T) {
	buf := newBoundedBuffer(4)

	n, err := buf.Write([]byte("abcd"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.False(t, buf.overflowed)

	// One byte past the limit keeps the prefix but flags the overflow
	_, err = buf.Write([]byte("e"))
	require.NoError(t, err)
	assert.True(t, buf.overflowed)
	assert.Equal(t, "abcd", buf.String())
}
