package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// saveScreenshot writes the screen as plain text to
// ~/.arcade/screenshots/<game>_<timestamp>.txt and returns the path.
func saveScreenshot(screen *core.Screen, gameID string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", gameID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
