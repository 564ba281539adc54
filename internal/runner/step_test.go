package runner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStep_PlainCommand(t *testing.T) {
	tests := []struct {
		command string
		want    []string
	}{
		{"cargo fmt", []string{"cargo", "fmt"}},
		{"go vet ./...", []string{"go", "vet", "./..."}},
		{"make   lint", []string{"make", "lint"}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			step := NewStep(tt.command)
			require.Equal(t, tt.command, step.Display)
			require.Equal(t, tt.want, step.Argv)
		})
	}
}

func TestNewStep_ShellCommand(t *testing.T) {
	commands := []string{
		"npm run lint && npm test",
		"echo one | tr a-z A-Z",
		"echo $HOME",
		"git log --format='%h'",
		"rm -f *.tmp",
	}
	for _, command := range commands {
		t.Run(command, func(t *testing.T) {
			step := NewStep(command)
			require.Equal(t, command, step.Display)
			require.Len(t, step.Argv, 3)
			require.Equal(t, command, step.Argv[2])
		})
	}
}

func TestArgvStep_QuotesSpacedArguments(t *testing.T) {
	step := argvStep("git", "commit", "-m", "feat: add login")

	require.Equal(t, `git commit -m "feat: add login"`, step.Display)
	require.Equal(t, []string{"git", "commit", "-m", "feat: add login"}, step.Argv)
}

func TestArgvStep_PlainArguments(t *testing.T) {
	step := argvStep("git", "push", "origin", "main")

	require.Equal(t, "git push origin main", step.Display)
	require.Equal(t, []string{"git", "push", "origin", "main"}, step.Argv)
}
