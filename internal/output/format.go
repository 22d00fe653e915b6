// Package output provides terminal formatting for timeline reports.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Blue      = "\033[34m"
	Magenta   = "\033[35m"
	Cyan      = "\033[36m"
	White     = "\033[37m"
	Gray      = "\033[90m"
	BoldGreen = "\033[1;32m"
	BoldBlue  = "\033[1;34m"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

var useColor = true

// SetColor turns colored output on or off. Color is still only emitted
// when stdout is a terminal.
func SetColor(enabled bool) {
	useColor = enabled
}

// IsColorEnabled returns whether color output is enabled.
func IsColorEnabled() bool {
	return useColor && isTerminal()
}

// isTerminal checks if stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or DefaultWidth when it is
// not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Color applies a color to text if color is enabled.
func Color(text, color string) string {
	if !IsColorEnabled() {
		return text
	}
	return color + text + Reset
}

// StatusColor returns the appropriate color for a status.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return Green
	case "in-progress":
		return Blue
	case "pending":
		return Gray
	default:
		return White
	}
}

// percentColor picks green/yellow/red by completion.
func percentColor(percent int) string {
	switch {
	case percent >= 80:
		return Green
	case percent >= 50:
		return Yellow
	default:
		return Red
	}
}

// ProgressBar creates a visual progress bar.
func ProgressBar(percent int, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Color("["+bar+"]", percentColor(percent))
}

// Header creates a formatted header line.
func Header(text string, width int) string {
	return Color(rule(text, "=", width), Bold)
}

// SubHeader creates a formatted subheader line.
func SubHeader(text string, width int) string {
	return Color(rule(text, "-", width), Dim)
}

func rule(text, fill string, width int) string {
	textWidth := runewidth.StringWidth(text)
	padding := (width - textWidth - 2) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat(fill, padding) + " " + text + " " + strings.Repeat(fill, padding)
	if w := runewidth.StringWidth(line); w < width {
		line += strings.Repeat(fill, width-w)
	}
	return line
}

// StatusIcon returns a colored icon for a status.
func StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return Color("✓", Green)
	case "in-progress":
		return Color("◷", Blue)
	case "pending":
		return Color("○", Gray)
	default:
		return "?"
	}
}

// FormatPercent formats a whole-number percentage with color.
func FormatPercent(percent int) string {
	return Color(fmt.Sprintf("%d%%", percent), percentColor(percent))
}

// PadRight pads text to a minimum display width.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft pads text to a minimum display width.
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}
