// Package installer fetches the mod asset and places it into the game
// directory. The fetch runs off the UI goroutine; completion is delivered
// exactly once through a status.Reporter.
package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alvindimas05/tnsm-installer/internal/download"
	"github.com/alvindimas05/tnsm-installer/internal/status"
)

// SuccessMessage is shown when the asset has been written.
const SuccessMessage = "Mod installed successfully! Launch the game to use it."

// Install downloads the asset from url and writes it to
// targetDir/assetFilename, creating or truncating as needed. The download
// goes to a temp file first so a failure at any stage leaves nothing under
// the target directory. Each stage fails with its own message: download,
// read, write.
func Install(url, targetDir, assetFilename string) error {
	tempPath, err := download.ToTemp(url, "tnsm-")
	if err != nil {
		return err
	}
	defer os.Remove(tempPath)

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return fmt.Errorf("failed to read downloaded asset: %w", err)
	}

	destPath := filepath.Join(targetDir, assetFilename)
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", assetFilename, err)
	}

	return nil
}

// Run starts Install in the background and reports the outcome through the
// reporter. It returns the operation ID immediately; the caller is expected
// to have set its in-progress flag before calling.
func Run(url, targetDir, assetFilename string, reporter *status.Reporter) string {
	id := uuid.NewString()

	go func() {
		if err := Install(url, targetDir, assetFilename); err != nil {
			reporter.Report(status.Outcome{
				ID:      id,
				Kind:    status.Error,
				Message: fmt.Sprintf("Installation failed: %v", err),
			})
			return
		}
		reporter.Report(status.Outcome{
			ID:      id,
			Kind:    status.Success,
			Message: SuccessMessage,
		})
	}()

	return id
}
