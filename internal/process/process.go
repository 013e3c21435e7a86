// Package process checks whether the game is running, so the installer can
// warn before overwriting a DLL the process may have loaded.
package process

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alvindimas05/tnsm-installer/internal/paths"
)

// GameExecutable is the process name the checks look for.
const GameExecutable = "Sky.exe"

// IsGameRunning checks if the game executable is running at all.
func IsGameRunning() bool {
	cmd := exec.Command("tasklist", "/FI", "IMAGENAME eq "+GameExecutable, "/FO", "CSV", "/NH")
	output, err := cmd.Output()
	if err != nil {
		return false
	}

	return strings.Contains(strings.ToLower(string(output)), strings.ToLower(GameExecutable))
}

// IsGameRunningInDir checks if the game executable is running from the
// specified directory.
func IsGameRunningInDir(targetDir string) bool {
	expectedPath := paths.CleanLower(filepath.Join(targetDir, GameExecutable))

	// WMIC reports full executable paths, one "ExecutablePath=..." line per process
	cmd := exec.Command("wmic", "process", "where", "name='"+GameExecutable+"'", "get", "ExecutablePath", "/format:list")
	output, err := cmd.Output()
	if err != nil {
		return false
	}

	lines := strings.Split(string(output), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "ExecutablePath=") {
			processPath := paths.CleanLower(strings.TrimPrefix(line, "ExecutablePath="))

			if processPath == expectedPath {
				return true
			}
		}
	}

	return false
}
