package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CleanLower returns a cleaned, lowercase path for case-insensitive comparison
func CleanLower(p string) string {
	return strings.ToLower(filepath.Clean(p))
}

// Prober answers existence checks against the filesystem. The indirection
// keeps detection logic testable without touching real drive roots.
type Prober interface {
	Exists(path string) bool
}

// OSProber probes the real filesystem.
type OSProber struct{}

// Exists reports whether path exists on disk.
func (OSProber) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// BaseEquals reports whether the final path component equals name,
// case-insensitively (the game ships on a case-insensitive filesystem).
func BaseEquals(p, name string) bool {
	return filepath.Base(CleanLower(p)) == strings.ToLower(name)
}

// EnsureWithin resolves targetPath and verifies it stays under basePath
// (path traversal protection). Returns the absolute target.
func EnsureWithin(basePath, targetPath string) (string, error) {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base path: %w", err)
	}

	absTarget, err := filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target path: %w", err)
	}

	if !strings.HasPrefix(absTarget, absBase) {
		return "", fmt.Errorf("path traversal attempt detected")
	}

	return absTarget, nil
}
