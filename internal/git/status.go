package git

// Status is a snapshot of the repository state relevant to a workflow run.
type Status struct {
	WorkingDirectory   string
	Branch             string // empty when HEAD is detached or unborn
	Detached           bool
	UncommittedChanges int
}

// Describe collects a Status snapshot from the repository. A detached or
// unborn HEAD is not an error; the Branch field is simply left empty.
func Describe(repo Repository) (Status, error) {
	status := Status{
		WorkingDirectory: repo.WorkingDirectory(),
		Detached:         repo.IsHeadDetached(),
	}

	if branch, err := repo.CurrentBranch(); err == nil {
		status.Branch = branch
	}

	changes, err := repo.NumberOfUncommittedChanges()
	if err != nil {
		return Status{}, err
	}
	status.UncommittedChanges = changes

	return status, nil
}
