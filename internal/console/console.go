// Package console provides the terminal styling used by the CLI: the
// bracketed status prefixes and the progress spinner. When colour is
// disabled the helpers degrade to plain text.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)

	// noColor switches every helper to plain text.
	noColor bool
)

// SetNoColor disables styling, e.g. when stdout is not a terminal.
func SetNoColor(v bool) { noColor = v }

// Info returns the "[*] " informational prefix.
func Info() string { return prefix(infoStyle, "[*] ") }

// Success returns the "[$] " result prefix.
func Success() string { return prefix(successStyle, "[$] ") }

// Warn returns the "[!] " warning prefix.
func Warn() string { return prefix(warnStyle, "[!] ") }

// Bold renders s in bold.
func Bold(s string) string {
	if noColor {
		return s
	}
	return boldStyle.Render(s)
}

// Spinner renders one spinner frame.
func Spinner(frame byte) string {
	s := fmt.Sprintf("[%c]", frame)
	if noColor {
		return s
	}
	return spinnerStyle.Render(s)
}

func prefix(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s[:len(s)-1]) + " "
}
