package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glitterhq/glitter/internal/action"
	"github.com/glitterhq/glitter/internal/config"
	"github.com/glitterhq/glitter/internal/git"
	"github.com/glitterhq/glitter/internal/output"
	"github.com/glitterhq/glitter/internal/runner"
	"github.com/glitterhq/glitter/internal/template"

	"github.com/spf13/cobra"
)

func dispatchRunE(cmd *cobra.Command, args []string) error {
	setupLogging(flagVerbosity)

	// 1. Open the repository. glitter still works outside one (listing
	// actions, dry runs), so failure only downgrades what runs later.
	var repo git.Repository
	if r, err := git.Open("."); err != nil {
		slog.Debug("not inside a git repository", "error", err)
	} else {
		repo = r
		logRepositoryState(r)
	}

	// 2. Load configuration.
	rc, err := loadRC(repo)
	if err != nil {
		return err
	}

	// 3. Resolve the effective arguments for this invocation.
	res, err := config.Resolve(cliArguments(args), rc)
	if err != nil {
		return err
	}

	// 4. Dispatch the action to a plan.
	plan, err := action.Dispatch(res, rc)
	if err != nil {
		return err
	}

	// 5. The actions builtin only lists what is available.
	if plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinActions {
		output.WriteActions(cmd.OutOrStdout(), builtinNames(), rc)
		return nil
	}

	// 6. Expand the commit message for commit-style plans.
	message := ""
	if plan.Kind == action.PlanBuiltin && plan.Builtin == action.BuiltinPush {
		message, err = template.Expand(rc.CommitMessageTemplate(), res.Arguments, rc.CommitMessageArguments, res.Raw)
		if err != nil {
			return err
		}
		warnDetachedHead(repo)
	}

	// 7. Execute the plan.
	return runner.New(repo, cmd.OutOrStdout(), res.Dry).Run(cmd.Context(), plan, res, message)
}

// cliArguments shapes the cobra positionals and flag values into the
// resolver's input.
func cliArguments(args []string) config.Arguments {
	return config.Arguments{
		Action:    args[0],
		Arguments: args[1:],
		RCPath:    flagRC,
		Branch:    flagBranch,
		Dry:       flagDry,
		NoHost:    flagNoHost,
		Raw:       flagRaw,
		NoVerify:  flagNoVerify,
	}
}

// loadRC loads the configuration for this invocation. An explicit --rc
// path must exist; otherwise the working directory and the repository
// root are searched, falling back to the built-in defaults.
func loadRC(repo git.Repository) (*config.GlitterRc, error) {
	if flagRC != "" {
		return config.Load(flagRC)
	}
	if path := findRCFile(repo); path != "" {
		return config.Load(path)
	}
	slog.Warn("no .glitterrc found, running on defaults", "template", config.DefaultCommitMessage)
	return config.DefaultConfiguration(), nil
}

// findRCFile searches the current directory, then the repository root.
func findRCFile(repo git.Repository) string {
	candidates := []string{config.DefaultRCName}
	if repo != nil {
		candidates = append(candidates, filepath.Join(repo.WorkingDirectory(), config.DefaultRCName))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// builtinNames lists the builtin actions in display order.
func builtinNames() []string {
	builtins := action.Builtins()
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.String())
	}
	return names
}

// logRepositoryState records what the working tree looks like before any
// command runs.
func logRepositoryState(repo git.Repository) {
	st, err := git.Describe(repo)
	if err != nil {
		slog.Debug("describing repository", "error", err)
		return
	}
	slog.Debug("repository state",
		"dir", st.WorkingDirectory,
		"branch", st.Branch,
		"detached", st.Detached,
		"uncommitted", st.UncommittedChanges)
}

// warnDetachedHead flags a push that cannot land for lack of a
// checked-out branch. The commands still run so git can say why.
func warnDetachedHead(repo git.Repository) {
	if repo != nil && repo.IsHeadDetached() {
		output.WriteWarning(os.Stderr, "HEAD is detached; git push needs a checked-out branch")
	}
}
