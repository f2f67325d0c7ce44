package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for status markers.
type Theme struct {
	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DefaultTheme is the default color scheme.
var DefaultTheme = Theme{
	Success: lipgloss.Color("#00ff9f"),
	Error:   lipgloss.Color("#ff5c57"),
	Info:    lipgloss.Color("#57c7ff"),
}

var (
	successMark = lipgloss.NewStyle().Foreground(DefaultTheme.Success).Render("✓")
	errorMark   = lipgloss.NewStyle().Foreground(DefaultTheme.Error).Render("Error:")
	infoMark    = lipgloss.NewStyle().Foreground(DefaultTheme.Info).Render("ℹ")
)

// PrintSuccess prints a success message with a checkmark.
func PrintSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", successMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark, fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message.
func PrintInfo(format string, args ...any) {
	fmt.Printf("%s %s\n", infoMark, fmt.Sprintf(format, args...))
}

// PrintVerbose prints to stderr when verbose mode is enabled.
func PrintVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// OutputBytes writes binary data to a file.
func OutputBytes(data []byte, path string) error {
	if path == "" {
		return fmt.Errorf("output file path is required for binary data")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
