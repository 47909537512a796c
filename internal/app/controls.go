package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	controlsTitleStyle = lipgloss.NewStyle().Bold(true)
	controlsKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(16)
)

var controls = [][2]string{
	{"WASD / Arrows", "Move"},
	{"G", "Toggle grid"},
	{"SPACE", "Toggle full screen"},
	{"ESC", "Quit"},
}

// ControlsHint is the one-time help text printed at startup.
func ControlsHint() string {
	var sb strings.Builder
	sb.WriteString(controlsTitleStyle.Render("- Controls..."))
	sb.WriteString("\n")
	for _, c := range controls {
		sb.WriteString("  ")
		sb.WriteString(controlsKeyStyle.Render(c[0]))
		sb.WriteString(c[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

func PrintControls(w io.Writer) error {
	if _, err := fmt.Fprint(w, ControlsHint()); err != nil {
		return fmt.Errorf("failed to print controls: %w", err)
	}
	return nil
}
