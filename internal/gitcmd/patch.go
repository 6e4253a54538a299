package gitcmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// buildApplyPatch applies a patch supplied either as a file path or as
// literal text. Literal text is written to a freshly named temporary file;
// the returned Command carries that path so the caller can delete it after
// execution whether or not the apply succeeds.
func buildApplyPatch(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.PatchFile != "" {
		return Command{Line: gitIn(bc.RepoPath) + " apply " + quote(bc.Params.PatchFile)}, nil
	}
	if bc.Params.PatchText == "" {
		return Command{}, fmt.Errorf("%w: patchText or patchFile", errors.ErrMissingParameter)
	}

	path := filepath.Join(os.TempDir(), patchFileName())
	if err := os.WriteFile(path, []byte(bc.Params.PatchText), 0o600); err != nil {
		return Command{}, fmt.Errorf("writing patch file: %w", err)
	}

	return Command{
		Line:     gitIn(bc.RepoPath) + " apply " + quote(path),
		TempFile: path,
	}, nil
}

// patchFileName produces a collision-resistant temp file name from the
// current time and a random suffix.
func patchFileName() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// fall back to timestamp-only uniqueness
		return fmt.Sprintf("gitrunner-patch-%d.diff", time.Now().UnixNano())
	}
	return fmt.Sprintf("gitrunner-patch-%d-%s.diff", time.Now().UnixNano(), hex.EncodeToString(suffix))
}
