package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	WorkingDirectoryFunc           func() string
	CurrentBranchFunc              func() (string, error)
	IsHeadDetachedFunc             func() bool
	NumberOfUncommittedChangesFunc func() (int, error)
	RemoteURLFunc                  func(string) (string, error)
	HasRemoteTrackingBranchFunc    func(string, string) (bool, error)
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) CurrentBranch() (string, error) {
	if m.CurrentBranchFunc != nil {
		return m.CurrentBranchFunc()
	}
	return "", nil
}

func (m *MockRepository) IsHeadDetached() bool {
	if m.IsHeadDetachedFunc != nil {
		return m.IsHeadDetachedFunc()
	}
	return false
}

func (m *MockRepository) NumberOfUncommittedChanges() (int, error) {
	if m.NumberOfUncommittedChangesFunc != nil {
		return m.NumberOfUncommittedChangesFunc()
	}
	return 0, nil
}

func (m *MockRepository) RemoteURL(name string) (string, error) {
	if m.RemoteURLFunc != nil {
		return m.RemoteURLFunc(name)
	}
	return "", nil
}

func (m *MockRepository) HasRemoteTrackingBranch(remote, branch string) (bool, error) {
	if m.HasRemoteTrackingBranchFunc != nil {
		return m.HasRemoteTrackingBranchFunc(remote, branch)
	}
	return false, nil
}
