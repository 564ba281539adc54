package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo    *gogit.Repository
	workDir string
}

// Open opens the git repository containing the given path, searching
// parent directories for the .git directory the way the git CLI does.
func Open(path string) (*GoGitRepository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &GoGitRepository{
		repo:    r,
		workDir: wt.Filesystem.Root(),
	}, nil
}

func (r *GoGitRepository) WorkingDirectory() string {
	return r.workDir
}

func (r *GoGitRepository) CurrentBranch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if !ref.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", shortSha(ref.Hash().String()))
	}
	return ref.Name().Short(), nil
}

func (r *GoGitRepository) IsHeadDetached() bool {
	ref, err := r.repo.Head()
	if err != nil {
		return false
	}
	return !ref.Name().IsBranch()
}

func (r *GoGitRepository) NumberOfUncommittedChanges() (int, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return 0, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return 0, fmt.Errorf("getting worktree status: %w", err)
	}

	count := 0
	for _, s := range status {
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			count++
		}
	}

	return count, nil
}

func (r *GoGitRepository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("getting remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no configured URL", name)
	}

	return urls[0], nil
}

func (r *GoGitRepository) HasRemoteTrackingBranch(remote, branch string) (bool, error) {
	name := plumbing.NewRemoteReferenceName(remote, branch)

	_, err := r.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("resolving %s: %w", name, err)
	}

	return true, nil
}

// shortSha abbreviates a commit SHA for display.
func shortSha(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
