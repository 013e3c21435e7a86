package paths

import (
	"os"
	"path/filepath"
	"testing"
)

// TestCleanLower tests case folding for comparison
func TestCleanLower(t *testing.T) {
	a := CleanLower(filepath.Join("A", "B", "Game"))
	b := CleanLower(filepath.Join("a", "b", "game"))
	if a != b {
		t.Errorf("CleanLower() mismatch: %q vs %q", a, b)
	}
}

// TestEnsureWithin tests path traversal protection
func TestEnsureWithin(t *testing.T) {
	tempBase := t.TempDir()

	tests := []struct {
		name    string
		target  string
		wantErr bool
	}{
		{
			name:    "file in base",
			target:  filepath.Join(tempBase, "file.txt"),
			wantErr: false,
		},
		{
			name:    "file in subdirectory",
			target:  filepath.Join(tempBase, "sub", "file.txt"),
			wantErr: false,
		},
		{
			name:    "attempt to escape via ..",
			target:  filepath.Join(tempBase, "..", "outside.txt"),
			wantErr: true,
		},
		{
			name:    "attempt to use temp root",
			target:  filepath.Join(os.TempDir(), "outside.txt"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnsureWithin(tempBase, tt.target)

			if tt.wantErr {
				if err == nil {
					t.Errorf("EnsureWithin() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("EnsureWithin() unexpected error: %v", err)
			}
			if got == "" {
				t.Error("EnsureWithin() returned empty path")
			}
		})
	}
}

// TestOSProber tests existence checks against the real filesystem
func TestOSProber(t *testing.T) {
	tempDir := t.TempDir()
	prober := OSProber{}

	if !prober.Exists(tempDir) {
		t.Error("Exists() = false for existing directory")
	}
	if prober.Exists(filepath.Join(tempDir, "nope")) {
		t.Error("Exists() = true for missing path")
	}

	file := filepath.Join(tempDir, "marker.exe")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create marker file: %v", err)
	}
	if !prober.Exists(file) {
		t.Error("Exists() = false for existing file")
	}
}
