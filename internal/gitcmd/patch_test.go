package gitcmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePatch = `diff --git a/file.txt b/file.txt
index e69de29..4b5fa63 100644
--- a/file.txt
+++ b/file.txt
@@ -0,0 +1 @@
+hello world
`

func TestApplyPatchFromFile(t *testing.T) {
	bc := BuildContext{
		RepoPath: "/repo",
		Params:   Params{PatchFile: "/patches/fix.diff"},
	}

	cmd, err := buildApplyPatch(context.Background(), bc)
	require.NoError(t, err)

	assert.Equal(t, `git -C "/repo" apply "/patches/fix.diff"`, cmd.Line)
	assert.Empty(t, cmd.TempFile, "an existing file needs no cleanup")
}

func TestApplyPatchFromText(t *testing.T) {
	bc := BuildContext{
		RepoPath: "/repo",
		Params:   Params{PatchText: samplePatch},
	}

	cmd, err := buildApplyPatch(context.Background(), bc)
	require.NoError(t, err)
	require.NotEmpty(t, cmd.TempFile)
	t.Cleanup(func() { _ = os.Remove(cmd.TempFile) })

	assert.Equal(t, `git -C "/repo" apply `+`"`+cmd.TempFile+`"`, cmd.Line)
	assert.Equal(t, os.TempDir(), filepath.Dir(cmd.TempFile))
	assert.True(t, strings.HasPrefix(filepath.Base(cmd.TempFile), "gitrunner-patch-"))
	assert.True(t, strings.HasSuffix(cmd.TempFile, ".diff"))

	content, err := os.ReadFile(cmd.TempFile)
	require.NoError(t, err)
	assert.Equal(t, samplePatch, string(content))
}

func TestApplyPatchTempNamesDoNotCollide(t *testing.T) {
	bc := BuildContext{
		RepoPath: "/repo",
		Params:   Params{PatchText: samplePatch},
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		cmd, err := buildApplyPatch(context.Background(), bc)
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Remove(cmd.TempFile) })

		assert.False(t, seen[cmd.TempFile], "duplicate temp name %s", cmd.TempFile)
		seen[cmd.TempFile] = true
	}
}
