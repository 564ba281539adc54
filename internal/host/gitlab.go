package host

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	gitlab "github.com/xanzy/go-gitlab"
)

var errNoGitLabAuth = errors.New("no GitLab credentials: set GITLAB_TOKEN or GIT_TOKEN")

// GitLabChecker checks branch existence through the GitLab API.
type GitLabChecker struct {
	client    *gitlab.Client
	projectID string // numeric ID or "namespace/project"
}

// Compile-time check that GitLabChecker implements BranchChecker.
var _ BranchChecker = (*GitLabChecker)(nil)

// NewGitLabChecker builds a checker for the repository at the remote URL
// using credentials from the environment (GITLAB_TOKEN, then GIT_TOKEN).
// Self-hosted instances are addressed through the remote's own host.
func NewGitLabChecker(remoteURL string) (*GitLabChecker, error) {
	token := os.Getenv("GITLAB_TOKEN")
	if token == "" {
		token = os.Getenv("GIT_TOKEN")
	}
	if token == "" {
		return nil, errNoGitLabAuth
	}

	owner, repo, err := ParseRepoURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}

	var opts []gitlab.ClientOptionFunc
	if host := remoteHost(remoteURL); host != "" && host != "gitlab.com" {
		opts = append(opts, gitlab.WithBaseURL("https://"+host))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}

	return &GitLabChecker{client: client, projectID: owner + "/" + repo}, nil
}

// NewGitLabCheckerWithClient builds a checker around an existing client.
func NewGitLabCheckerWithClient(client *gitlab.Client, projectID string) *GitLabChecker {
	return &GitLabChecker{client: client, projectID: projectID}
}

// BranchExists reports whether the branch exists on the project.
// A 404 from the API is a definitive no.
func (c *GitLabChecker) BranchExists(ctx context.Context, branch string) (bool, error) {
	_, resp, err := c.client.Branches.GetBranch(c.projectID, branch, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("checking branch %s on %s: %w", branch, c.projectID, err)
	}
	return true, nil
}
