package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Color codes using ANSI escape sequences
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// colorsEnabled is false when the NO_COLOR environment variable is set
var colorsEnabled = os.Getenv("NO_COLOR") == ""

// colorize wraps text with ANSI color codes if colors are enabled
func colorize(text, color string) string {
	if !colorsEnabled {
		return text
	}
	return color + text + colorReset
}

// success prints a success message with a green checkmark
func success(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n", colorize("✓", colorGreen), msg) // Ignore write errors - main operation succeeded
}

// failure prints an error message with a red X
func failure(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s Error: %s\n", colorize("✗", colorRed), msg)
}

// writeJSON encodes v to w, indented unless compact is set.
func writeJSON(w io.Writer, v interface{}, compact bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
