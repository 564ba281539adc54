package output

import (
	"fmt"
	"io"

	"github.com/glitterhq/glitter/internal/config"
)

// WriteActions renders the action listing: builtin actions, custom tasks
// with their command lists, and configured hooks.
func WriteActions(w io.Writer, builtins []string, rc *config.GlitterRc) {
	fmt.Fprintln(w, headingStyle.Render("builtin actions"))
	for _, name := range builtins {
		fmt.Fprintf(w, "  %s\n", name)
	}

	if len(rc.CustomTasks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("custom tasks"))
		for _, task := range rc.CustomTasks {
			fmt.Fprintf(w, "  %s\n", taskStyle.Render(task.Name))
			for _, command := range task.Execute {
				fmt.Fprintf(w, "    %s\n", command)
			}
		}
	}

	if len(rc.Hooks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("hooks"))
		for _, hook := range rc.Hooks {
			fmt.Fprintf(w, "  %s\n", hookStyle.Render(hook))
		}
	}
}
