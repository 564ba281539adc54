package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		url  string
		want Provider
	}{
		{"https://github.com/acme/widgets.git", ProviderGitHub},
		{"git@github.com:acme/widgets.git", ProviderGitHub},
		{"https://gitlab.com/acme/widgets.git", ProviderGitLab},
		{"git@gitlab.example.io:acme/widgets.git", ProviderGitLab},
		{"https://GitLab.example.io/acme/widgets.git", ProviderGitLab},
		{"https://bitbucket.org/acme/widgets.git", ProviderUnknown},
		{"https://example.com/acme/widgets.git", ProviderUnknown},
		{"", ProviderUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			require.Equal(t, tt.want, DetectProvider(tt.url))
		})
	}
}

func TestProviderString(t *testing.T) {
	require.Equal(t, "github", ProviderGitHub.String())
	require.Equal(t, "gitlab", ProviderGitLab.String())
	require.Equal(t, "unknown", ProviderUnknown.String())
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"https with .git", "https://github.com/acme/widgets.git", "acme", "widgets", false},
		{"https without .git", "https://github.com/acme/widgets", "acme", "widgets", false},
		{"http", "http://gitlab.example.io/acme/widgets.git", "acme", "widgets", false},
		{"ssh", "git@github.com:acme/widgets.git", "acme", "widgets", false},
		{"ssh without .git", "git@gitlab.com:acme/widgets", "acme", "widgets", false},
		{"ssh missing path", "git@github.com", "", "", true},
		{"ssh deep path", "git@github.com:a/b/c.git", "", "", true},
		{"https bare host", "https://github.com", "", "", true},
		{"https missing repo", "https://github.com/acme", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOwner, owner)
			require.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestRemoteHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@gitlab.example.io:acme/widgets.git", "gitlab.example.io"},
		{"https://gitlab.example.io/acme/widgets.git", "gitlab.example.io"},
		{"http://gitlab.com/acme/widgets", "gitlab.com"},
		{"git@nocolon", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			require.Equal(t, tt.want, remoteHost(tt.url))
		})
	}
}
