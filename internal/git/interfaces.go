package git

// Repository provides read-only inspection of a local git repository.
// This is the key abstraction point for testing: command pipelines ask it
// about the working tree but never mutate anything through it.
type Repository interface {
	// WorkingDirectory returns the absolute path of the repository's
	// working tree root. Commands run against the repository execute
	// from this directory.
	WorkingDirectory() string

	// CurrentBranch returns the short name of the branch HEAD points at.
	// Returns an error when HEAD is detached or unborn.
	CurrentBranch() (string, error)

	// IsHeadDetached returns true if HEAD is not pointing to a branch.
	IsHeadDetached() bool

	// NumberOfUncommittedChanges returns the count of files that differ
	// from HEAD in either the index or the working tree.
	NumberOfUncommittedChanges() (int, error)

	// RemoteURL returns the first fetch URL configured for the named
	// remote.
	RemoteURL(name string) (string, error)

	// HasRemoteTrackingBranch reports whether a remote-tracking
	// reference (refs/remotes/<remote>/<branch>) exists locally.
	HasRemoteTrackingBranch(remote, branch string) (bool, error)
}
