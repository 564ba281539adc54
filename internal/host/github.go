package host

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

var errNoGitHubAuth = errors.New("no GitHub credentials: set GITHUB_TOKEN, or GH_APP_ID and GH_APP_PRIVATE_KEY")

// GitHubChecker checks branch existence through the GitHub API.
type GitHubChecker struct {
	client *gh.Client
	owner  string
	repo   string
}

// Compile-time check that GitHubChecker implements BranchChecker.
var _ BranchChecker = (*GitHubChecker)(nil)

// NewGitHubChecker builds a checker for the given repository using
// credentials from the environment. Auth resolution order: GITHUB_TOKEN →
// GitHub App credentials → error. GITHUB_API_URL selects a GitHub
// Enterprise instance.
func NewGitHubChecker(owner, repo string) (*GitHubChecker, error) {
	client, err := newGitHubClient(owner)
	if err != nil {
		return nil, err
	}
	return &GitHubChecker{client: client, owner: owner, repo: repo}, nil
}

// NewGitHubCheckerWithClient builds a checker around an existing client.
func NewGitHubCheckerWithClient(client *gh.Client, owner, repo string) *GitHubChecker {
	return &GitHubChecker{client: client, owner: owner, repo: repo}
}

// BranchExists reports whether the branch exists on the repository.
// A 404 from the API is a definitive no.
func (c *GitHubChecker) BranchExists(ctx context.Context, branch string) (bool, error) {
	_, _, err := c.client.Repositories.GetBranch(ctx, c.owner, c.repo, branch, 0)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking branch %s on %s/%s: %w", branch, c.owner, c.repo, err)
	}
	return true, nil
}

// newGitHubClient creates an authenticated GitHub API client from the
// environment.
func newGitHubClient(owner string) (*gh.Client, error) {
	baseURL := os.Getenv("GITHUB_API_URL")

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return newTokenClient(token, baseURL)
	}

	var appID int64
	if s := os.Getenv("GH_APP_ID"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			appID = v
		}
	}
	appKey := os.Getenv("GH_APP_PRIVATE_KEY")

	if appID != 0 && appKey != "" {
		return newAppClient(appID, appKey, owner, baseURL)
	}

	return nil, errNoGitHubAuth
}

func newTokenClient(token, baseURL string) (*gh.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)

	if baseURL != "" {
		return gh.NewClient(httpClient).WithEnterpriseURLs(baseURL, baseURL)
	}
	return gh.NewClient(httpClient), nil
}

func newAppClient(appID int64, keyPath, owner, baseURL string) (*gh.Client, error) {
	// Create an app-level transport to discover the installation ID.
	appTransport, err := ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub App transport: %w", err)
	}
	if baseURL != "" {
		appTransport.BaseURL = baseURL
	}

	appClient := gh.NewClient(&http.Client{Transport: appTransport})
	if baseURL != "" {
		appClient, err = appClient.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("setting enterprise URL: %w", err)
		}
	}

	installationID, err := findInstallation(appClient, owner)
	if err != nil {
		return nil, err
	}

	// Create an installation-level transport with the discovered ID.
	installTransport, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	if baseURL != "" {
		installTransport.BaseURL = baseURL
	}

	client := gh.NewClient(&http.Client{Transport: installTransport})
	if baseURL != "" {
		return client.WithEnterpriseURLs(baseURL, baseURL)
	}
	return client, nil
}

// findInstallation finds the GitHub App installation for the given owner.
func findInstallation(client *gh.Client, owner string) (int64, error) {
	ctx := context.Background()
	opts := &gh.ListOptions{PerPage: 100}

	for {
		installations, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return 0, fmt.Errorf("listing GitHub App installations: %w", err)
		}

		for _, inst := range installations {
			if inst.GetAccount().GetLogin() == owner {
				return inst.GetID(), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, fmt.Errorf("no GitHub App installation found for owner %q", owner)
}

// isNotFound returns true if the error represents an HTTP 404 response
// from the GitHub API. Used to distinguish a missing branch from auth
// failures, rate limits, and other errors that should not read as "no".
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
