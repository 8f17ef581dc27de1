// Package worktree manages per-run, per-domain git worktrees so parallel
// agents never share a checkout, plus the integration branch their work
// merges into.
package worktree

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Manager wraps the git CLI for worktree lifecycle operations.
type Manager struct {
	repoRoot    string
	worktreeDir string
	baseBranch  string
}

// NewManager creates a manager rooted at the repository. worktreeDir is
// relative to repoRoot (conventionally ".worktrees").
func NewManager(repoRoot, worktreeDir, baseBranch string) *Manager {
	if worktreeDir == "" {
		worktreeDir = ".worktrees"
	}
	if baseBranch == "" {
		baseBranch = "main"
	}
	return &Manager{repoRoot: repoRoot, worktreeDir: worktreeDir, baseBranch: baseBranch}
}

// Info describes one active worktree.
type Info struct {
	Path   string
	Branch string
	Commit string
}

// MergeResult reports the outcome of merging domain branches.
type MergeResult struct {
	Success       bool     `json:"success"`
	HasConflicts  bool     `json:"has_conflicts"`
	Message       string   `json:"message"`
	MergedDomains []string `json:"merged_domains,omitempty"`
}

// DomainBranch is the branch created for one domain within a run.
func DomainBranch(runID, domain string) string {
	return fmt.Sprintf("run-%s/%s", runID, domain)
}

// IntegrationBranch is the branch a run's successful work merges into.
func IntegrationBranch(runID string) string {
	return fmt.Sprintf("run-%s/integration", runID)
}

// CreateDomainWorktree creates a worktree on branch run-{runID}/{domain}
// off the base branch and returns its absolute path. Creating an existing
// worktree returns the existing path.
func (m *Manager) CreateDomainWorktree(ctx context.Context, domain, runID string) (string, error) {
	branch := DomainBranch(runID, domain)
	path, err := filepath.Abs(filepath.Join(m.repoRoot, m.worktreeDir, safePathName(runID), safePathName(domain)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve worktree path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("failed to create worktree directory: %w", err)
	}

	args := []string{"worktree", "add", "-b", branch, path, m.baseBranch}
	if m.branchExists(ctx, branch) {
		args = []string{"worktree", "add", path, branch}
	}
	if out, err := m.runGit(ctx, m.repoRoot, args...); err != nil {
		return "", fmt.Errorf("failed to create worktree for %s: %w (%s)", domain, err, strings.TrimSpace(string(out)))
	}

	slog.Info("Worktree created", "domain", domain, "run_id", runID, "path", path, "branch", branch)
	return path, nil
}

// ListRunWorktrees enumerates active worktrees belonging to a run.
func (m *Manager) ListRunWorktrees(ctx context.Context, runID string) ([]Info, error) {
	out, err := m.runGit(ctx, m.repoRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	prefix := "run-" + runID + "/"
	var (
		worktrees []Info
		current   *Info
	)
	flush := func() {
		if current != nil && strings.HasPrefix(current.Branch, prefix) {
			worktrees = append(worktrees, *current)
		}
		current = nil
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			current = &Info{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "HEAD ") && current != nil:
			current.Commit = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch ") && current != nil:
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		}
	}
	flush()
	return worktrees, nil
}

// CleanupRunWorktrees forcibly removes every worktree of a run and deletes
// its domain branches. Removal is best-effort: the first error is returned
// after all worktrees were attempted.
func (m *Manager) CleanupRunWorktrees(ctx context.Context, runID string) error {
	worktrees, err := m.ListRunWorktrees(ctx, runID)
	if err != nil {
		return err
	}

	var firstErr error
	for _, wt := range worktrees {
		if out, err := m.runGit(ctx, m.repoRoot, "worktree", "remove", "--force", wt.Path); err != nil {
			if rmErr := os.RemoveAll(wt.Path); rmErr != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to remove worktree %s: %w (%s)", wt.Path, err, strings.TrimSpace(string(out)))
			}
			_, _ = m.runGit(ctx, m.repoRoot, "worktree", "prune")
		}
		if wt.Branch != "" && wt.Branch != m.baseBranch {
			_, _ = m.runGit(ctx, m.repoRoot, "branch", "-D", wt.Branch)
		}
	}
	if firstErr != nil {
		return firstErr
	}
	slog.Info("Run worktrees cleaned up", "run_id", runID, "count", len(worktrees))
	return nil
}

// CreateIntegrationBranch branches run-{runID}/integration off base.
func (m *Manager) CreateIntegrationBranch(ctx context.Context, runID string) (string, error) {
	branch := IntegrationBranch(runID)
	if m.branchExists(ctx, branch) {
		return branch, nil
	}
	if out, err := m.runGit(ctx, m.repoRoot, "branch", branch, m.baseBranch); err != nil {
		return "", fmt.Errorf("failed to create integration branch: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return branch, nil
}

// MergeAllDomains merges each successful domain's branch into the
// integration branch sequentially. A conflict stops the merge, aborts it,
// and is reported in the result rather than returned as an error.
func (m *Manager) MergeAllDomains(ctx context.Context, runID string, successfulDomains []string) (*MergeResult, error) {
	integration := IntegrationBranch(runID)
	if !m.branchExists(ctx, integration) {
		if _, err := m.CreateIntegrationBranch(ctx, runID); err != nil {
			return nil, err
		}
	}
	if out, err := m.runGit(ctx, m.repoRoot, "checkout", integration); err != nil {
		return nil, fmt.Errorf("failed to checkout integration branch: %w (%s)", err, strings.TrimSpace(string(out)))
	}

	result := &MergeResult{Success: true, MergedDomains: []string{}}
	for _, domain := range successfulDomains {
		branch := DomainBranch(runID, domain)
		out, err := m.runGit(ctx, m.repoRoot, "merge", "--no-ff", branch,
			"-m", fmt.Sprintf("Merge %s into %s", branch, integration))
		if err != nil {
			_, _ = m.runGit(ctx, m.repoRoot, "merge", "--abort")
			result.Success = false
			result.HasConflicts = true
			result.Message = fmt.Sprintf("merge conflict on %s: %s", branch, strings.TrimSpace(string(out)))
			slog.Warn("Merge conflict", "run_id", runID, "branch", branch)
			return result, nil
		}
		result.MergedDomains = append(result.MergedDomains, domain)
	}
	result.Message = fmt.Sprintf("merged %d domain branches into %s", len(result.MergedDomains), integration)
	return result, nil
}

// CommitAll stages and commits every change in a worktree. Committing with
// a clean tree is a no-op.
func (m *Manager) CommitAll(ctx context.Context, worktreePath, message string) error {
	if out, err := m.runGit(ctx, worktreePath, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	status, err := m.runGit(ctx, worktreePath, "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("failed to check status: %w", err)
	}
	if len(bytes.TrimSpace(status)) == 0 {
		return nil
	}
	if out, err := m.runGit(ctx, worktreePath, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// HeadCommit returns the worktree's current commit hash.
func (m *Manager) HeadCommit(ctx context.Context, worktreePath string) (string, error) {
	out, err := m.runGit(ctx, worktreePath, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (m *Manager) branchExists(ctx context.Context, branch string) bool {
	_, err := m.runGit(ctx, m.repoRoot, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

func (m *Manager) runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

func safePathName(s string) string {
	return unsafePathChars.ReplaceAllString(s, "-")
}
