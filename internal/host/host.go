// Package host probes hosted git providers (GitHub, GitLab) for branch
// existence before a push mutates anything locally.
package host

import "context"

// BranchChecker reports whether a branch exists on a hosted repository.
type BranchChecker interface {
	// BranchExists returns true when the named branch exists on the
	// remote repository. A definitive "not found" from the provider is
	// (false, nil); auth and transport failures are errors.
	BranchExists(ctx context.Context, branch string) (bool, error)
}
