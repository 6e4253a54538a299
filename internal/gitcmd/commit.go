package gitcmd

import (
	"context"
	"fmt"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// noChangesLine is substituted for the commit command when the working tree
// has nothing to commit, so a clean tree yields a success instead of git's
// nonzero "nothing to commit" exit.
const noChangesLine = `echo "No changes to commit"`

// buildCommit stages and commits in one operation. The caller does not need
// a prior add: the working tree is inspected at build time, everything is
// staged, and if either check comes back empty the commit is replaced with
// an informational no-op.
func buildCommit(ctx context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Message == "" {
		return Command{}, fmt.Errorf("%w: message", errors.ErrMissingParameter)
	}

	git := gitIn(bc.RepoPath)

	status, err := bc.Probe.Capture(ctx, git+" status --porcelain")
	if err != nil {
		return Command{}, fmt.Errorf("inspecting working tree: %w", err)
	}
	if status == "" {
		return Command{Line: noChangesLine}, nil
	}

	if _, err := bc.Probe.Capture(ctx, git+" add -A"); err != nil {
		return Command{}, fmt.Errorf("staging changes: %w", err)
	}

	// Staging can come up empty even with a dirty status, e.g. when every
	// change is excluded by .gitignore rules applied during add
	staged, err := bc.Probe.Capture(ctx, git+" diff --cached --name-only")
	if err != nil {
		return Command{}, fmt.Errorf("checking staged changes: %w", err)
	}
	if staged == "" {
		return Command{Line: noChangesLine}, nil
	}

	return Command{Line: git + " commit -m " + quote(bc.Params.Message)}, nil
}
