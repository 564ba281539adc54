// Package output renders glitter's user-facing terminal output.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions.
var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	dryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	taskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	hookStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// WriteCommand echoes an external command about to run.
func WriteCommand(w io.Writer, command string) {
	fmt.Fprintf(w, "%s %s\n", promptStyle.Render("$"), commandStyle.Render(command))
}

// WriteDryCommand echoes a command that a dry run skipped.
func WriteDryCommand(w io.Writer, command string) {
	fmt.Fprintf(w, "%s %s\n", promptStyle.Render("$"), dryStyle.Render(command))
}

// WriteWarning renders a warning line.
func WriteWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", warnStyle.Render("warning:"), message)
}

// WriteError renders an error line.
func WriteError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
