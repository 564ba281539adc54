package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockRepository_NilFuncsReturnDefaults(t *testing.T) {
	m := &MockRepository{}

	require.Equal(t, "", m.WorkingDirectory())
	require.False(t, m.IsHeadDetached())

	branch, err := m.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "", branch)

	changes, err := m.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Equal(t, 0, changes)

	url, err := m.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, "", url)

	exists, err := m.HasRemoteTrackingBranch("origin", "main")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMockRepository_FuncsAreCalled(t *testing.T) {
	m := &MockRepository{
		WorkingDirectoryFunc: func() string { return "/work/repo" },
		CurrentBranchFunc: func() (string, error) {
			return "main", nil
		},
		IsHeadDetachedFunc: func() bool { return true },
		NumberOfUncommittedChangesFunc: func() (int, error) {
			return 3, nil
		},
		RemoteURLFunc: func(name string) (string, error) {
			return "git@github.com:acme/" + name + ".git", nil
		},
		HasRemoteTrackingBranchFunc: func(remote, branch string) (bool, error) {
			return remote == "origin" && branch == "main", nil
		},
	}

	require.Equal(t, "/work/repo", m.WorkingDirectory())
	require.True(t, m.IsHeadDetached())

	branch, err := m.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	changes, err := m.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Equal(t, 3, changes)

	url, err := m.RemoteURL("origin")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/origin.git", url)

	exists, err := m.HasRemoteTrackingBranch("origin", "main")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = m.HasRemoteTrackingBranch("origin", "dev")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMockRepository_ErrorsPropagate(t *testing.T) {
	wantErr := errors.New("status failed")
	m := &MockRepository{
		NumberOfUncommittedChangesFunc: func() (int, error) {
			return 0, wantErr
		},
	}

	_, err := m.NumberOfUncommittedChanges()
	require.ErrorIs(t, err, wantErr)
}
