package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	m := &MockRepository{
		WorkingDirectoryFunc: func() string { return "/work/repo" },
		CurrentBranchFunc: func() (string, error) {
			return "feature/login", nil
		},
		NumberOfUncommittedChangesFunc: func() (int, error) {
			return 2, nil
		},
	}

	status, err := Describe(m)
	require.NoError(t, err)
	require.Equal(t, Status{
		WorkingDirectory:   "/work/repo",
		Branch:             "feature/login",
		UncommittedChanges: 2,
	}, status)
}

func TestDescribe_DetachedHead(t *testing.T) {
	m := &MockRepository{
		IsHeadDetachedFunc: func() bool { return true },
		CurrentBranchFunc: func() (string, error) {
			return "", errors.New("HEAD is detached at abc1234")
		},
	}

	status, err := Describe(m)
	require.NoError(t, err)
	require.True(t, status.Detached)
	require.Empty(t, status.Branch)
}

func TestDescribe_StatusError(t *testing.T) {
	wantErr := errors.New("worktree unavailable")
	m := &MockRepository{
		NumberOfUncommittedChangesFunc: func() (int, error) {
			return 0, wantErr
		},
	}

	_, err := Describe(m)
	require.ErrorIs(t, err, wantErr)
}
