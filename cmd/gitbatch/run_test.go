package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicabarNimble/go-gitrunner/internal/batch"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeRun(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"run"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunCommandMissingFlag(t *testing.T) {
	_, _, err := executeRun(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestRunCommandMissingFile(t *testing.T) {
	_, _, err := executeRun(t, "--file", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestRunCommandInvalidFile(t *testing.T) {
	path := writeBatchFile(t, "not json")
	_, _, err := executeRun(t, "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse batch file")
}

func TestRunCommandUnknownOperation(t *testing.T) {
	path := writeBatchFile(t, `{"items": [{"operation": "bisect"}]}`)
	_, _, err := executeRun(t, "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestRunCommandExecutesBatch(t *testing.T) {
	repo := t.TempDir()
	path := writeBatchFile(t, `{"items": [{"operation": "init"}]}`)

	out, _, err := executeRun(t, "--file", path, "--repo", repo, "--quiet")
	require.NoError(t, err)

	var outcomes []batch.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
	require.Len(t, outcomes, 1)
	assert.Empty(t, outcomes[0].Error)

	assert.DirExists(t, filepath.Join(repo, ".git"))
}

func TestRunCommandContinueOnError(t *testing.T) {
	repo := t.TempDir()
	path := writeBatchFile(t, `{"items": [
		{"operation": "init"},
		{"operation": "cherry-pick"},
		{"operation": "status"}
	]}`)

	out, _, err := executeRun(t, "--file", path, "--repo", repo, "--quiet", "--continue-on-error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 items failed")

	var outcomes []batch.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
	require.Len(t, outcomes, 3)
	assert.Empty(t, outcomes[0].Error)
	assert.Contains(t, outcomes[1].Error, "missing required parameter")
	assert.Empty(t, outcomes[2].Error)
}
