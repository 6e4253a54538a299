// Package gitcmd builds shell command lines for git operations.
//
// Each operation maps to exactly one Builder. Builders produce a single
// string meant for `sh -c`, with the repository path always passed through
// `git -C` so the process working directory never changes. Free-text values
// are interpolated inside double quotes with embedded quotes escaped.
package gitcmd

import (
	"sort"
)

// Operation identifies one git operation kind
type Operation string

// The full set of supported operations
const (
	OpClone         Operation = "clone"
	OpInit          Operation = "init"
	OpAdd           Operation = "add"
	OpCommit        Operation = "commit"
	OpPush          Operation = "push"
	OpPull          Operation = "pull"
	OpBranchCreate  Operation = "branch-create"
	OpBranchDelete  Operation = "branch-delete"
	OpBranchRename  Operation = "branch-rename"
	OpCheckout      Operation = "checkout"
	OpSwitch        Operation = "switch"
	OpMerge         Operation = "merge"
	OpFetch         Operation = "fetch"
	OpRebase        Operation = "rebase"
	OpCherryPick    Operation = "cherry-pick"
	OpRevert        Operation = "revert"
	OpReset         Operation = "reset"
	OpStash         Operation = "stash"
	OpTag           Operation = "tag"
	OpApplyPatch    Operation = "apply-patch"
	OpConfigureUser Operation = "configure-user"
	OpListBranches  Operation = "list-branches"
	OpListCommits   Operation = "list-commits"
	OpStatus        Operation = "status"
	OpLog           Operation = "log"
	OpLFSPush       Operation = "lfs-push"
)

// builders is the static dispatch table from operation to Builder
var builders = map[Operation]Builder{
	OpClone:         BuilderFunc(buildClone),
	OpInit:          BuilderFunc(buildInit),
	OpAdd:           BuilderFunc(buildAdd),
	OpCommit:        BuilderFunc(buildCommit),
	OpPush:          BuilderFunc(buildPush),
	OpPull:          BuilderFunc(buildPull),
	OpBranchCreate:  BuilderFunc(buildBranchCreate),
	OpBranchDelete:  BuilderFunc(buildBranchDelete),
	OpBranchRename:  BuilderFunc(buildBranchRename),
	OpCheckout:      BuilderFunc(buildCheckout),
	OpSwitch:        BuilderFunc(buildSwitch),
	OpMerge:         BuilderFunc(buildMerge),
	OpFetch:         BuilderFunc(buildFetch),
	OpRebase:        BuilderFunc(buildRebase),
	OpCherryPick:    BuilderFunc(buildCherryPick),
	OpRevert:        BuilderFunc(buildRevert),
	OpReset:         BuilderFunc(buildReset),
	OpStash:         BuilderFunc(buildStash),
	OpTag:           BuilderFunc(buildTag),
	OpApplyPatch:    BuilderFunc(buildApplyPatch),
	OpConfigureUser: BuilderFunc(buildConfigureUser),
	OpListBranches:  BuilderFunc(buildListBranches),
	OpListCommits:   BuilderFunc(buildListCommits),
	OpStatus:        BuilderFunc(buildStatus),
	OpLog:           BuilderFunc(buildLog),
	OpLFSPush:       BuilderFunc(buildLFSPush),
}

// Lookup returns the Builder registered for op
func Lookup(op Operation) (Builder, bool) {
	b, ok := builders[op]
	return b, ok
}

// Operations returns all registered operation names, sorted
func Operations() []Operation {
	ops := make([]Operation, 0, len(builders))
	for op := range builders {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
