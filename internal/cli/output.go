package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tacogips/pagegen/internal/template/model"
)

// Styles
var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// render applies style unless color is disabled.
func render(style lipgloss.Style, text string) string {
	if globalNoColor {
		return text
	}
	return style.Render(text)
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", render(successStyle, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", render(warningStyle, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", render(errorStyle, "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", render(progressStyle, "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", render(headerStyle, "=== "+title+" ==="))
}

// printWarnings prints generation warnings, one actionable line each.
func printWarnings(warnings []model.Warning) {
	for _, w := range warnings {
		printWarning(w.String())
	}
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// plural returns "n word" or "n words".
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
