package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If DELTAV_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.deltav/logs/deltav.log
func GetLogFilePath() string {
	if customPath := os.Getenv("DELTAV_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "deltav.log"
	}

	return filepath.Join(homeDir, ".deltav", "logs", "deltav.log")
}
