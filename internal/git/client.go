// Package git wraps the go-git operations blogstack needs: cloning a content
// repository into the build workspace and deriving a repository name from its
// URL.
package git

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/blogstack/internal/logfields"
)

// Client handles Git operations
type Client struct {
	workspaceDir string
}

// NewClient creates a new Git client with the specified workspace directory
func NewClient(workspaceDir string) *Client {
	return &Client{workspaceDir: workspaceDir}
}

// CloneRepository clones a repository into the workspace and returns the
// checkout path. An existing checkout with the same name is removed first.
func (c *Client) CloneRepository(url, name, branch string) (string, error) {
	repoPath := filepath.Join(c.workspaceDir, name)

	slog.Debug("Cloning repository", logfields.URL(url), logfields.Name(name), slog.String("branch", branch), logfields.Path(repoPath))

	if err := os.RemoveAll(repoPath); err != nil {
		return "", fmt.Errorf("failed to remove existing directory: %w", err)
	}

	cloneOptions := &gogit.CloneOptions{URL: url}
	if branch != "" {
		cloneOptions.ReferenceName = plumbing.ReferenceName("refs/heads/" + branch)
		cloneOptions.SingleBranch = true
	}

	repository, err := gogit.PlainClone(repoPath, false, cloneOptions)
	if err != nil {
		return "", classifyCloneError(url, err)
	}

	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Repository cloned successfully",
			logfields.Name(name),
			logfields.URL(url),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(repoPath))
	} else {
		slog.Info("Repository cloned successfully", logfields.Name(name), logfields.URL(url), logfields.Path(repoPath))
	}

	return repoPath, nil
}

// RepoName extracts the repository name from a git URL, stripping any
// trailing slash and .git suffix.
func RepoName(url string) string {
	name := strings.TrimSuffix(url, "/")
	if idx := strings.LastIndexAny(name, "/:"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		name = "blog"
	}
	return name
}

// classifyCloneError wraps underlying go-git errors into typed permanent failures.
func classifyCloneError(url string, err error) error {
	l := strings.ToLower(err.Error())
	if strings.Contains(l, "authentication") || strings.Contains(l, "auth fail") || strings.Contains(l, "invalid username or password") {
		return &AuthError{Op: "clone", URL: url, Err: err}
	}
	if strings.Contains(l, "not found") || strings.Contains(l, "repository does not exist") {
		return &NotFoundError{Op: "clone", URL: url, Err: err}
	}
	if strings.Contains(l, "unsupported protocol") || strings.Contains(l, "protocol not supported") {
		return &UnsupportedProtocolError{Op: "clone", URL: url, Err: err}
	}
	return fmt.Errorf("failed to clone repository %s: %w", url, err)
}
