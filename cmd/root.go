package cmd

import (
	"errors"
	"os"

	"github.com/glitterhq/glitter/internal/config"
	"github.com/glitterhq/glitter/internal/output"
	"github.com/glitterhq/glitter/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Global flags shared across commands.
var (
	flagRC        string
	flagBranch    string
	flagVerbosity string
	flagDry       config.TriState
	flagNoHost    config.TriState
	flagRaw       config.TriState
	flagNoVerify  config.TriState
)

// rootCmd is the top-level command for glitter. Actions are open-ended
// (custom tasks can carry any name), so they are positionals on the root
// command rather than cobra subcommands.
var rootCmd = &cobra.Command{
	Use:   "glitter <action> [arguments...]",
	Short: "Config-driven git workflow wrapper",
	Long: `glitter wraps everyday git workflows behind a .glitterrc: guided commits
with a templated message, custom tasks, and hooks that run before them.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          dispatchRunE,
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&flagRC, "rc", "", "path to the .glitterrc file (default: auto-detect)")
	flags.StringVarP(&flagBranch, "branch", "b", "", "branch to pull from and push to")
	flags.StringVar(&flagVerbosity, "verbosity", "info", "log verbosity: quiet, info, debug")

	registerTriState(flags, &flagDry, "dry", "d", "print the commands without running them")
	registerTriState(flags, &flagNoHost, "nohost", "", "skip host integration: no pull, upstream created on push")
	registerTriState(flags, &flagRaw, "raw", "r", "use the arguments as the commit message, bypassing the template")
	registerTriState(flags, &flagNoVerify, "no-verify", "n", "skip the configured hooks")

	flags.SetNormalizeFunc(normalizeFlagName)
}

// registerTriState binds a tri-state flag so a bare mention means true
// and an explicit =false survives as an explicit value.
func registerTriState(flags *pflag.FlagSet, value *config.TriState, name, shorthand, usage string) {
	flags.VarP(value, name, shorthand, usage)
	flags.Lookup(name).NoOptDefVal = "true"
}

// normalizeFlagName maps the short long-form aliases onto their flags.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "br":
		name = "branch"
	case "nh":
		name = "nohost"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command. A failing external command propagates
// its own exit status; every other error exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.WriteError(os.Stderr, err)

		var cmdErr *runner.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitStatus > 0 {
			os.Exit(cmdErr.ExitStatus)
		}
		os.Exit(1)
	}
}
