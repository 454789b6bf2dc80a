// internal/util/util.go
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
)

// WriteFile writes data to path with 0o644 permissions, creating parent
// directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// TruncateWidth shortens text to at most width terminal cells, appending
// an ellipsis when it had to cut.
func TruncateWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// PadRight truncates or pads text with spaces to exactly width cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(TruncateWidth(text, width), width)
}

// PadLeft truncates or left-pads text with spaces to exactly width cells.
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(TruncateWidth(text, width), width)
}

// Width reports the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}
