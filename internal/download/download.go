package download

import (
	"fmt"
	"os"

	"github.com/cavaliergopher/grab/v3"
)

var client = grab.NewClient()

// File downloads a file from url to the target path. Non-2xx responses are
// failures; an error page is not installable content.
func File(url, targetPath string) error {
	req, err := grab.NewRequest(targetPath, url)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.NoResume = true // Always overwrite, never resume

	resp := client.Do(req)
	if err := resp.Err(); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	return nil
}

// ToTemp downloads a file to a temporary location and returns the path.
// The temp file is removed on failure so a failed download leaves nothing
// behind.
func ToTemp(url, prefix string) (string, error) {
	tempFile, err := os.CreateTemp("", prefix+"*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := File(url, tempPath); err != nil {
		_ = os.Remove(tempPath) // Best effort cleanup
		return "", err
	}

	return tempPath, nil
}
