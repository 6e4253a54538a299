package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "gitbatch", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "ops")
}

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "gitbatch")
	assert.Contains(t, out.String(), "run")
}

func TestOpsCommand(t *testing.T) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"ops"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "clone")
	assert.Contains(t, out.String(), "commit")
	assert.Contains(t, out.String(), "apply-patch")
}
