package gitcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NicabarNimble/go-gitrunner/internal/errors"
)

func buildClone(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.SourceURL == "" {
		return Command{}, fmt.Errorf("%w: sourceUrl", errors.ErrMissingParameter)
	}

	source, err := bc.authenticated(bc.Params.SourceURL)
	if err != nil {
		return Command{}, err
	}

	line := gitIn(bc.RepoPath) + " clone " + quote(source) + " ."
	if bc.Params.SkipLFS {
		line = envSkipSmudge + line
	}
	return Command{Line: line}, nil
}

func buildInit(_ context.Context, bc BuildContext) (Command, error) {
	return Command{Line: gitIn(bc.RepoPath) + " init"}, nil
}

func buildAdd(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + " add"
	if bc.Params.Pathspec == "" {
		return Command{Line: line + " -A"}, nil
	}

	for _, path := range strings.Split(bc.Params.Pathspec, ",") {
		if path = strings.TrimSpace(path); path != "" {
			line += " " + quote(path)
		}
	}
	return Command{Line: line}, nil
}

func buildPush(_ context.Context, bc BuildContext) (Command, error) {
	remote := bc.Params.Remote
	branch := bc.Params.Branch
	// git needs an explicit repository before a refspec
	if branch != "" && remote == "" {
		remote = "origin"
	}
	remote, err := bc.authenticated(remote)
	if err != nil {
		return Command{}, err
	}

	line := gitIn(bc.RepoPath) + " push"
	if bc.Params.Force {
		line += " --force"
	}
	if remote != "" {
		line += " " + quote(remote)
	}
	if branch != "" {
		line += " " + quote(branch)
	}
	if bc.Params.SkipLFSPush {
		line = envSkipLFSPush + line
	}

	if bc.Params.PushLFS {
		// The main push only runs if the LFS objects made it up first
		line = lfsPushLine(bc, remote, branch) + " && " + line
	}
	return Command{Line: line}, nil
}

func buildPull(_ context.Context, bc BuildContext) (Command, error) {
	remote := bc.Params.Remote
	branch := bc.Params.Branch
	if branch != "" && remote == "" {
		remote = "origin"
	}
	remote, err := bc.authenticated(remote)
	if err != nil {
		return Command{}, err
	}

	line := gitIn(bc.RepoPath) + " pull"
	if remote != "" {
		line += " " + quote(remote)
	}
	if branch != "" {
		line += " " + quote(branch)
	}
	if bc.Params.SkipLFS {
		line = envSkipSmudge + line
	}
	return Command{Line: line}, nil
}

func buildFetch(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + " fetch"
	if bc.Params.Remote != "" {
		line += " " + quote(bc.Params.Remote)
	}
	if bc.Params.Branch != "" {
		if bc.Params.Remote == "" {
			line += " " + quote("origin")
		}
		line += " " + quote(bc.Params.Branch)
	}
	if bc.Params.SkipLFS {
		line = envSkipSmudge + line
	}
	return Command{Line: line}, nil
}

func buildBranchCreate(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Branch == "" {
		return Command{}, fmt.Errorf("%w: branch", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " branch " + quote(bc.Params.Branch)}, nil
}

func buildBranchDelete(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Branch == "" {
		return Command{}, fmt.Errorf("%w: branch", errors.ErrMissingParameter)
	}
	// -D: batches cannot stop to answer the unmerged-branch prompt
	return Command{Line: gitIn(bc.RepoPath) + " branch -D " + quote(bc.Params.Branch)}, nil
}

func buildBranchRename(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.NewName == "" {
		return Command{}, fmt.Errorf("%w: newName", errors.ErrMissingParameter)
	}

	line := gitIn(bc.RepoPath) + " branch -m"
	if bc.Params.Branch != "" {
		line += " " + quote(bc.Params.Branch)
	}
	line += " " + quote(bc.Params.NewName)
	return Command{Line: line}, nil
}

func buildCheckout(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Ref == "" {
		return Command{}, fmt.Errorf("%w: ref", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " checkout " + quote(bc.Params.Ref)}, nil
}

func buildSwitch(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Branch == "" {
		return Command{}, fmt.Errorf("%w: branch", errors.ErrMissingParameter)
	}

	line := gitIn(bc.RepoPath) + " switch"
	if bc.Params.Create {
		line += " -c"
	}
	line += " " + quote(bc.Params.Branch)
	return Command{Line: line}, nil
}

func buildMerge(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Branch == "" {
		return Command{}, fmt.Errorf("%w: branch", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " merge " + quote(bc.Params.Branch)}, nil
}

func buildRebase(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Branch == "" {
		return Command{}, fmt.Errorf("%w: branch", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " rebase " + quote(bc.Params.Branch)}, nil
}

func buildCherryPick(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.CommitID == "" {
		return Command{}, fmt.Errorf("%w: commitId", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " cherry-pick " + quote(bc.Params.CommitID)}, nil
}

func buildRevert(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.CommitID == "" {
		return Command{}, fmt.Errorf("%w: commitId", errors.ErrMissingParameter)
	}
	return Command{Line: gitIn(bc.RepoPath) + " revert --no-edit " + quote(bc.Params.CommitID)}, nil
}

func buildReset(_ context.Context, bc BuildContext) (Command, error) {
	target := bc.Params.Target
	if target == "" {
		target = "HEAD"
	}
	return Command{Line: gitIn(bc.RepoPath) + " reset --hard " + quote(target)}, nil
}

func buildStash(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + " stash push"
	if bc.Params.Message != "" {
		line += " -m " + quote(bc.Params.Message)
	}
	return Command{Line: line}, nil
}

func buildTag(_ context.Context, bc BuildContext) (Command, error) {
	if bc.Params.Name == "" {
		return Command{}, fmt.Errorf("%w: name", errors.ErrMissingParameter)
	}

	line := gitIn(bc.RepoPath) + " tag " + quote(bc.Params.Name)
	if bc.Params.Ref != "" {
		line += " " + quote(bc.Params.Ref)
	}
	return Command{Line: line}, nil
}

func buildConfigureUser(_ context.Context, bc BuildContext) (Command, error) {
	var parts []string
	if bc.Params.UserName != "" {
		parts = append(parts, gitIn(bc.RepoPath)+" config user.name "+quote(bc.Params.UserName))
	}
	if bc.Params.UserEmail != "" {
		parts = append(parts, gitIn(bc.RepoPath)+" config user.email "+quote(bc.Params.UserEmail))
	}
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: userName or userEmail", errors.ErrMissingParameter)
	}
	return Command{Line: strings.Join(parts, " && ")}, nil
}

func buildListBranches(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + " branch --list"
	if bc.Params.All {
		line += " --all"
	}
	line += ` --format="%(refname:short)"`
	return Command{Line: line}, nil
}

func buildListCommits(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + ` log --pretty=format:"%H|%an|%ae|%ad|%s"`
	if bc.Params.Limit > 0 {
		line += " -n " + strconv.Itoa(bc.Params.Limit)
	}
	return Command{Line: line}, nil
}

func buildStatus(_ context.Context, bc BuildContext) (Command, error) {
	return Command{Line: gitIn(bc.RepoPath) + " status --porcelain"}, nil
}

func buildLog(_ context.Context, bc BuildContext) (Command, error) {
	line := gitIn(bc.RepoPath) + " log"
	if bc.Params.Limit > 0 {
		line += " -n " + strconv.Itoa(bc.Params.Limit)
	}
	return Command{Line: line}, nil
}

func buildLFSPush(_ context.Context, bc BuildContext) (Command, error) {
	remote := bc.Params.Remote
	if remote == "" {
		remote = "origin"
	}
	remote, err := bc.authenticated(remote)
	if err != nil {
		return Command{}, err
	}
	return Command{Line: lfsPushLine(bc, remote, bc.Params.Branch)}, nil
}

// lfsPushLine formats the LFS object upload for a remote. Without a branch
// it pushes objects for all refs.
func lfsPushLine(bc BuildContext, remote, branch string) string {
	if remote == "" {
		remote = "origin"
	}
	line := gitIn(bc.RepoPath) + " lfs push"
	if branch == "" {
		return line + " --all " + quote(remote)
	}
	return line + " " + quote(remote) + " " + quote(branch)
}
