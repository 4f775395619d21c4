package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header renders title inside an asterisk-bordered box width columns wide.
// The title is word-wrapped and centered with two columns of padding on
// each side, with one blank row above and below it.
func Header(title string, width int) string {
	inner := width - 4

	body := lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Render(title)
	lines := strings.Split(body, "\n")

	const start = 2
	height := len(lines) + 2*start

	border := strings.Repeat("*", width)
	blank := "*" + strings.Repeat(" ", width-2) + "*"

	var b strings.Builder
	for row := 0; row < height; row++ {
		switch {
		case row == 0 || row == height-1:
			b.WriteString(border)
		case row >= start && row < start+len(lines):
			b.WriteString("* " + lines[row-start] + " *")
		default:
			b.WriteString(blank)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}
