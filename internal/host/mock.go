package host

import "context"

// Compile-time check that MockChecker implements BranchChecker.
var _ BranchChecker = (*MockChecker)(nil)

// MockChecker is a configurable mock implementation of BranchChecker for
// testing. If BranchExistsFunc is nil, BranchExists reports false.
type MockChecker struct {
	BranchExistsFunc func(ctx context.Context, branch string) (bool, error)
}

func (m *MockChecker) BranchExists(ctx context.Context, branch string) (bool, error) {
	if m.BranchExistsFunc != nil {
		return m.BranchExistsFunc(ctx, branch)
	}
	return false, nil
}
