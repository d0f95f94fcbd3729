// Package tui provides terminal output components for wic.
//
// All colors use AdaptiveColor for light/dark terminal support. Call
// CheckNoColor() before rendering styled text so the NO_COLOR environment
// variable and dumb terminals are respected.
package tui

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for informational text and headings.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success messages.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for warnings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error messages.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: lipgloss.NewStyle(),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// padRight pads a string to the right to reach the target width.
// Uses rune count for proper width calculation with non-ASCII text.
func padRight(s string, width int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runeCount)
}
