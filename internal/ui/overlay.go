package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// compositeOverlay centers overlay on top of a dimmed copy of background.
// The result always has at least height lines, each padded to width.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimLines(strings.Split(background, "\n"), width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = theme.DimmedStyle.Render(strings.Repeat(" ", startX)) +
			line +
			theme.DimmedStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// dimLines strips the colors of every line, dims it and pads it to width
func dimLines(lines []string, width, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		dimmed := theme.DimmedStyle.Render(stripAnsi(line))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// End of escape sequence at 'm' (SGR) or other terminator
			if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}

	return result.String()
}
