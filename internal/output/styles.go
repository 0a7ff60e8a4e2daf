package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Summary describes a finished scaffold for display.
type Summary struct {
	Root     string
	Files    []string
	Warnings []string
}

// PrintSummary writes the created files and any warnings to w.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Created project at %s/", s.Root)))
	for _, f := range s.Files {
		fmt.Fprintf(w, "  %s\n", fileStyle.Render(f))
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Warnings:"))
		for _, warn := range s.Warnings {
			fmt.Fprintf(w, "  - %s\n", warningStyle.Render(warn))
		}
	}
}

// PrintNextSteps writes numbered follow-up hints to w.
func PrintNextSteps(w io.Writer, steps ...string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Next steps:"))
	for i, step := range steps {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), step)
	}
}
