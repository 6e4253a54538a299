package tests

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"

	"github.com/NicabarNimble/go-gitrunner/internal/batch"
	"github.com/NicabarNimble/go-gitrunner/internal/credentials"
	"github.com/NicabarNimble/go-gitrunner/internal/gitexec"
)

// runCommand executes a command in the specified directory
func runCommand(dir string, command string, args ...string) error {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_GLOBAL=/dev/null", // Ignore global config
		"GIT_CONFIG_SYSTEM=/dev/null", // Ignore system config
	)
	return cmd.Run()
}

// requireGit skips the test when no git binary is available
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// SetupGitConfig configures repository-local identity for testing
func SetupGitConfig(t *testing.T, dir string) {
	t.Helper()

	commands := [][]string{
		{"config", "user.name", "test"},
		{"config", "user.email", "test@example.com"},
	}
	for _, args := range commands {
		if err := runCommand(dir, "git", args...); err != nil {
			t.Fatalf("Failed to configure git %v: %v", args, err)
		}
	}
}

// SetupTestRepo creates an initialized repository with one commit on main
func SetupTestRepo(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}

	if err := runCommand(dir, "git", "init"); err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	SetupGitConfig(t, dir)

	testFile := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := runCommand(dir, "git", "add", "test.txt"); err != nil {
		t.Fatalf("Failed to add test file: %v", err)
	}
	if err := runCommand(dir, "git", "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("Failed to commit test file: %v", err)
	}
	if err := runCommand(dir, "git", "checkout", "-B", "main"); err != nil {
		t.Fatalf("Failed to create main branch: %v", err)
	}

	return dir
}

// SetupBareRepo creates a bare repository to push into
func SetupBareRepo(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create bare directory: %v", err)
	}
	if err := runCommand(dir, "git", "init", "--bare"); err != nil {
		t.Fatalf("Failed to initialize bare repo: %v", err)
	}
	// HEAD must name the branch the tests push to
	if err := runCommand(dir, "git", "symbolic-ref", "HEAD", "refs/heads/main"); err != nil {
		t.Fatalf("Failed to point bare HEAD at main: %v", err)
	}
	return dir
}

// AddCommit creates a new commit in the repository
func AddCommit(t *testing.T, repoPath, fileName, content, message string) {
	t.Helper()

	filePath := filepath.Join(repoPath, fileName)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := runCommand(repoPath, "git", "add", fileName); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}
	if err := runCommand(repoPath, "git", "commit", "-m", message); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

// HeadCommit returns the hash and trimmed message of the repository's HEAD
func HeadCommit(t *testing.T, repoPath string) (string, string) {
	t.Helper()

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		t.Fatalf("Failed to open repository %s: %v", repoPath, err)
	}
	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to resolve HEAD of %s: %v", repoPath, err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("Failed to read HEAD commit of %s: %v", repoPath, err)
	}
	return head.Hash().String(), strings.TrimSpace(commit.Message)
}

// newTestDispatcher builds a dispatcher against the real shell runner
func newTestDispatcher() *batch.Dispatcher {
	return &batch.Dispatcher{
		Runner:   &gitexec.Runner{},
		Resolver: credentials.NewResolver(credentials.NewMemoryStore()),
	}
}
