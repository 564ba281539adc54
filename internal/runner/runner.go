// Package runner executes workflow plans as sequences of external
// commands, one at a time, stopping at the first failure.
package runner

import (
	"context"
	"io"
	"log/slog"

	"github.com/glitterhq/glitter/internal/action"
	"github.com/glitterhq/glitter/internal/config"
	"github.com/glitterhq/glitter/internal/git"
	"github.com/glitterhq/glitter/internal/host"
	"github.com/glitterhq/glitter/internal/output"
)

// ProbeFunc checks a push target branch on the hosting provider.
type ProbeFunc func(ctx context.Context, remoteURL, branch string) error

// Runner executes a plan's steps in order against a repository working
// tree. Dry runs echo every step without executing anything.
type Runner struct {
	Executor Executor
	Repo     git.Repository
	Probe    ProbeFunc // hosted-branch preflight, nil disables
	Echo     io.Writer // step echo destination, nil silences
	DryRun   bool
}

// New builds a Runner with the exec-backed executor and the hosted-branch
// probe wired in.
func New(repo git.Repository, echo io.Writer, dry bool) *Runner {
	return &Runner{
		Executor: &ExecExecutor{},
		Repo:     repo,
		Probe:    host.Probe,
		Echo:     echo,
		DryRun:   dry,
	}
}

// Run executes the plan. The host preflight runs only for pushes with an
// explicit branch, host integration enabled, and dry-run off; it must
// pass before any step touches the repository.
func (r *Runner) Run(ctx context.Context, plan action.Plan, args config.ResolvedArguments, message string) error {
	if r.needsPreflight(plan, args) {
		if err := r.preflight(ctx, args.Branch); err != nil {
			return err
		}
	}

	return r.runSteps(ctx, BuildSteps(plan, args, message))
}

func (r *Runner) needsPreflight(plan action.Plan, args config.ResolvedArguments) bool {
	return plan.Kind == action.PlanBuiltin &&
		plan.Builtin == action.BuiltinPush &&
		args.Branch != "" &&
		!args.NoHost &&
		!r.DryRun
}

func (r *Runner) preflight(ctx context.Context, branch string) error {
	if r.Probe == nil || r.Repo == nil {
		return nil
	}

	// A local remote-tracking ref means the branch is already on the
	// remote; no need to ask the provider.
	if exists, err := r.Repo.HasRemoteTrackingBranch("origin", branch); err == nil && exists {
		return nil
	}

	remoteURL, err := r.Repo.RemoteURL("origin")
	if err != nil {
		slog.Debug("host probe skipped", "reason", err)
		return nil
	}

	return r.Probe(ctx, remoteURL, branch)
}

func (r *Runner) runSteps(ctx context.Context, steps []Step) error {
	dir := ""
	if r.Repo != nil {
		dir = r.Repo.WorkingDirectory()
	}

	for _, step := range steps {
		if r.Echo != nil {
			if r.DryRun {
				output.WriteDryCommand(r.Echo, step.Display)
			} else {
				output.WriteCommand(r.Echo, step.Display)
			}
		}
		if r.DryRun {
			continue
		}
		if err := r.Executor.Run(ctx, step, dir); err != nil {
			return err
		}
	}

	return nil
}
