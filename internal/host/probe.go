package host

import (
	"context"
	"fmt"
	"log/slog"
)

// MissingBranchError reports a push target branch that does not exist on
// the hosted repository yet.
type MissingBranchError struct {
	Branch string
	Repo   string
}

func (e *MissingBranchError) Error() string {
	return fmt.Sprintf("branch %q does not exist on %s yet: pass --nohost to create it on push", e.Branch, e.Repo)
}

// Probe verifies that the push target branch exists on the provider
// hosting the remote. Only a definitive "branch not found" answer fails
// the probe; an unknown provider, missing credentials, or a transport
// failure never blocks the push.
func Probe(ctx context.Context, remoteURL, branch string) error {
	checker, repo, err := checkerFor(remoteURL)
	if err != nil {
		slog.Debug("host probe skipped", "remote", remoteURL, "reason", err)
		return nil
	}
	return ProbeWith(ctx, checker, repo, branch)
}

// ProbeWith runs the probe against an already-built checker.
func ProbeWith(ctx context.Context, checker BranchChecker, repo, branch string) error {
	exists, err := checker.BranchExists(ctx, branch)
	if err != nil {
		slog.Debug("host probe inconclusive", "repo", repo, "branch", branch, "error", err)
		return nil
	}
	if !exists {
		return &MissingBranchError{Branch: branch, Repo: repo}
	}
	return nil
}

// checkerFor builds the provider checker for a remote URL from
// environment credentials. The second return value labels the repository
// for error messages.
func checkerFor(remoteURL string) (BranchChecker, string, error) {
	switch DetectProvider(remoteURL) {
	case ProviderGitHub:
		owner, repo, err := ParseRepoURL(remoteURL)
		if err != nil {
			return nil, "", fmt.Errorf("parse remote URL: %w", err)
		}
		checker, err := NewGitHubChecker(owner, repo)
		if err != nil {
			return nil, "", err
		}
		return checker, owner + "/" + repo, nil

	case ProviderGitLab:
		checker, err := NewGitLabChecker(remoteURL)
		if err != nil {
			return nil, "", err
		}
		return checker, checker.projectID, nil

	default:
		return nil, "", fmt.Errorf("unknown provider for %s", remoteURL)
	}
}
