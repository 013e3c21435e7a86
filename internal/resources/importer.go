// Package resources mirrors a user-selected folder into the game's
// resources subdirectory. The copy is synchronous and fail-fast: the first
// entry that cannot be copied aborts the whole import with that entry's
// error. Symlinked entries are skipped.
package resources

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alvindimas05/tnsm-installer/internal/paths"
)

// Import copies every entry under sourceDir into
// targetDir/resourcesDirName, creating directories as needed and
// overwriting existing files of the same name. It returns the number of
// files copied.
func Import(sourceDir, targetDir, resourcesDirName string) (int, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read source folder: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("source is not a directory: %s", sourceDir)
	}

	destRoot := filepath.Join(targetDir, resourcesDirName)
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return 0, fmt.Errorf("failed to create resources directory: %w", err)
	}

	copied := 0
	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		if rel == "." {
			return nil
		}

		destPath, err := paths.EnsureWithin(destRoot, filepath.Join(destRoot, rel))
		if err != nil {
			return err
		}

		if d.IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", rel, err)
			}
			return nil
		}

		if err := copyFile(path, destPath); err != nil {
			return fmt.Errorf("failed to copy %s: %w", rel, err)
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, err
	}

	return copied, nil
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dest, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return err
	}

	return dest.Close()
}
