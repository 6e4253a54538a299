package gitcmd

// Params is the flat parameter bag carried by a work item. Which fields are
// recognized depends on the operation; unrecognized fields are ignored.
type Params struct {
	// Authentication selects the credential source for clone, push and
	// pull: "none" (default), "stored" or "custom".
	Authentication string `json:"authentication,omitempty"`
	// CredentialName names the stored credential record, stored mode only
	CredentialName string `json:"credentialName,omitempty"`
	// Username and Password are used directly in custom mode
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// SourceURL is the remote to clone from
	SourceURL string `json:"sourceUrl,omitempty"`

	// Remote is a remote name or URL; when empty the tool's default applies
	Remote string `json:"remote,omitempty"`
	// Branch names the branch to operate on; when empty the current branch
	// or the tool's default applies
	Branch string `json:"branch,omitempty"`
	// NewName is the new branch name for branch-rename
	NewName string `json:"newName,omitempty"`
	// Create makes switch create the branch before switching to it
	Create bool `json:"create,omitempty"`
	// Force turns push into a force push
	Force bool `json:"force,omitempty"`

	// SkipLFS disables the LFS smudge filter for clone, pull and fetch,
	// scoped to the single invocation
	SkipLFS bool `json:"skipLfs,omitempty"`
	// PushLFS pushes LFS objects before the main push
	PushLFS bool `json:"pushLfs,omitempty"`
	// SkipLFSPush suppresses the LFS upload during the main push
	SkipLFSPush bool `json:"skipLfsPush,omitempty"`

	// Message is the commit or stash message
	Message string `json:"message,omitempty"`
	// CommitID is the commit for cherry-pick and revert
	CommitID string `json:"commitId,omitempty"`
	// Target is the ref a reset moves to; defaults to HEAD
	Target string `json:"target,omitempty"`
	// Ref is the ref for checkout, or the object a tag points at
	Ref string `json:"ref,omitempty"`
	// Name is the tag name
	Name string `json:"name,omitempty"`
	// Pathspec is a comma-separated list of paths for add; empty stages all
	Pathspec string `json:"pathspec,omitempty"`

	// PatchText is literal patch content for apply-patch; written to a
	// temporary file before invocation
	PatchText string `json:"patchText,omitempty"`
	// PatchFile is an existing patch file path for apply-patch
	PatchFile string `json:"patchFile,omitempty"`

	// UserName and UserEmail configure the repository identity
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`

	// All includes remote-tracking branches in list-branches
	All bool `json:"all,omitempty"`
	// Limit caps the number of entries for log and list-commits; 0 means
	// the tool's default
	Limit int `json:"limit,omitempty"`
}
