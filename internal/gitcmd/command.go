package gitcmd

import (
	"context"
	"strings"

	"github.com/NicabarNimble/go-gitrunner/internal/credentials"
	"github.com/NicabarNimble/go-gitrunner/internal/urlutils"
)

// Environment assignments prefixed to individual command lines. They scope
// the setting to the one child process, not the whole batch.
const (
	envSkipSmudge  = "GIT_LFS_SKIP_SMUDGE=1 "
	envSkipLFSPush = "GIT_LFS_SKIP_PUSH=1 "
)

// Command is a ready-to-execute shell command line. TempFile, when set,
// names an ephemeral file the command depends on; the caller must remove it
// after execution regardless of outcome.
type Command struct {
	Line     string
	TempFile string
}

// Prober runs short git queries during command construction. The commit
// builder uses it to inspect and stage the working tree before deciding
// what command to emit.
type Prober interface {
	Capture(ctx context.Context, line string) (string, error)
}

// BuildContext carries everything a Builder may consult
type BuildContext struct {
	// RepoPath is the repository working directory; never empty
	RepoPath string
	Params   Params
	// Creds is the item's resolved credential pair, nil when unauthenticated
	Creds *credentials.Credentials
	Probe Prober
}

// Builder maps operation parameters and a repository path to a command
type Builder interface {
	Build(ctx context.Context, bc BuildContext) (Command, error)
}

// BuilderFunc adapts a function to the Builder interface
type BuilderFunc func(ctx context.Context, bc BuildContext) (Command, error)

// Build implements Builder
func (f BuilderFunc) Build(ctx context.Context, bc BuildContext) (Command, error) {
	return f(ctx, bc)
}

// quote wraps s in double quotes, escaping embedded double quotes. Command
// lines are assembled as single shell strings, so every interpolated value
// goes through here.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// gitIn returns the command prefix selecting the repository working
// directory. Relative paths in parameters resolve against it predictably
// because the process working directory is never changed.
func gitIn(repoPath string) string {
	return "git -C " + quote(repoPath)
}

// authenticated applies the resolved credentials to a remote specifier.
// Remote names and local paths pass through untouched; a specifier that
// fails to parse is an error, but only when credentials were resolved,
// since it would otherwise run unauthenticated without anyone noticing.
func (bc BuildContext) authenticated(remote string) (string, error) {
	if bc.Creds == nil {
		return remote, nil
	}
	return urlutils.AuthenticateStrict(remote, bc.Creds.Username, bc.Creds.Password)
}
