package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay formats an error for a window of maxWidth cells.
// The message is wrapped to at most maxErrorLines lines, prefixed with "Error: "
// and truncated with "..." when it does not fit.
func formatErrorForDisplay(err error, maxWidth int) []string {
	if err == nil {
		return nil
	}
	message := err.Error()
	if message == "" {
		message = "unknown error"
	}
	maxWidth = max(maxWidth, 10)

	lines := wrapWords(errorPrefix+message, maxWidth)
	if len(lines) <= maxErrorLines {
		return lines
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	if runewidth.StringWidth(last)+len(truncationMark) > maxWidth {
		last = runewidth.Truncate(last, maxWidth-len(truncationMark), "")
	}
	lines[maxErrorLines-1] = last + truncationMark
	return lines
}

// wrapWords breaks text into lines of at most width cells on word boundaries.
// Words longer than width are hard-split. Empty text yields one empty line.
func wrapWords(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0
	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			if currentWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}
		wordWidth := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+wordWidth > width {
			flush()
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	if currentWidth > 0 {
		flush()
	}
	return lines
}

// wrapLine hard-wraps a line at width cells, keeping spacing intact
func wrapLine(line string, width int) []string {
	if width <= 0 {
		return nil
	}
	if line == "" {
		return []string{""}
	}
	var out []string
	for runewidth.StringWidth(line) > width {
		head := runewidth.Truncate(line, width, "")
		if head == "" {
			head = string([]rune(line)[:1])
		}
		out = append(out, head)
		line = line[len(head):]
	}
	return append(out, line)
}
