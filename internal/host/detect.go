package host

import (
	"fmt"
	"strings"
)

// Provider identifies a hosted git provider.
type Provider int

const (
	ProviderUnknown Provider = iota
	ProviderGitHub
	ProviderGitLab
)

func (p Provider) String() string {
	switch p {
	case ProviderGitHub:
		return "github"
	case ProviderGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// DetectProvider guesses the hosted provider from a git remote URL.
// Self-hosted GitLab instances are recognized by "gitlab" appearing
// anywhere in the URL.
func DetectProvider(remoteURL string) Provider {
	remoteURL = strings.ToLower(remoteURL)

	if strings.Contains(remoteURL, "github.com") {
		return ProviderGitHub
	}
	if strings.Contains(remoteURL, "gitlab") {
		return ProviderGitLab
	}

	return ProviderUnknown
}

// ParseRepoURL extracts owner and repo from a git remote URL.
func ParseRepoURL(remoteURL string) (owner, repo string, err error) {
	// SSH form: git@github.com:owner/repo.git
	if strings.HasPrefix(remoteURL, "git@") {
		parts := strings.Split(remoteURL, ":")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid SSH URL format")
		}
		path := strings.TrimSuffix(parts[1], ".git")
		pathParts := strings.Split(path, "/")
		if len(pathParts) != 2 {
			return "", "", fmt.Errorf("invalid repository path")
		}
		return pathParts[0], pathParts[1], nil
	}

	// HTTP(S) form: https://github.com/owner/repo.git
	remoteURL = strings.TrimPrefix(remoteURL, "https://")
	remoteURL = strings.TrimPrefix(remoteURL, "http://")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	parts := strings.Split(remoteURL, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid URL format")
	}

	// Last two segments are owner/repo.
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// remoteHost extracts the host portion of an SSH or HTTP(S) remote URL.
func remoteHost(remoteURL string) string {
	if strings.HasPrefix(remoteURL, "git@") {
		rest := strings.TrimPrefix(remoteURL, "git@")
		if i := strings.Index(rest, ":"); i > 0 {
			return rest[:i]
		}
		return ""
	}

	remoteURL = strings.TrimPrefix(remoteURL, "https://")
	remoteURL = strings.TrimPrefix(remoteURL, "http://")

	parts := strings.Split(remoteURL, "/")
	return parts[0]
}
