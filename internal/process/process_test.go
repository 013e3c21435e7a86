package process

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestIsGameRunning_Integration tests game process detection
// Note: This is an integration test that uses actual system commands
func TestIsGameRunning_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// The game is almost certainly not running on a test machine; just
	// verify the function doesn't panic
	result := IsGameRunning()
	t.Logf("IsGameRunning() = %v", result)
}

// TestIsGameRunningInDir_NonexistentDir tests with nonexistent directory
func TestIsGameRunningInDir_NonexistentDir(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	result := IsGameRunningInDir(filepath.Join("nonexistent", "directory"))
	if result {
		t.Error("IsGameRunningInDir() should return false for nonexistent directory")
	}
}

// TestProcessPathCleaning tests the path normalization used for comparison
func TestProcessPathCleaning(t *testing.T) {
	tests := []struct {
		name      string
		targetDir string
	}{
		{
			name:      "standard path",
			targetDir: filepath.Join("Users", "Test", "Sky"),
		},
		{
			name:      "path with redundant elements",
			targetDir: filepath.Join("Users", "Test", ".", "Sky"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectedPath := filepath.Join(tt.targetDir, GameExecutable)
			expectedPath = strings.ToLower(filepath.Clean(expectedPath))

			if !strings.HasSuffix(expectedPath, strings.ToLower(GameExecutable)) {
				t.Errorf("normalized path %q does not end with the executable name", expectedPath)
			}
			if strings.Contains(expectedPath, strings.ToUpper(GameExecutable)) {
				t.Errorf("normalized path %q was not case folded", expectedPath)
			}
		})
	}
}
