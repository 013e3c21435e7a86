package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// GameTree describes a fake on-disk Steam layout for resolution tests
type GameTree struct {
	SteamRoot string
	GameDir   string
}

// CreateGameTree builds a Steam root containing the game directory with its
// marker executable under baseDir
func CreateGameTree(t *testing.T, baseDir string) GameTree {
	t.Helper()

	steamRoot := filepath.Join(baseDir, "Steam")
	gameDir := filepath.Join(steamRoot, "steamapps", "common", "Sky Children of the Light")

	if err := os.MkdirAll(gameDir, 0755); err != nil {
		t.Fatalf("failed to create game tree: %v", err)
	}
	WriteFile(t, filepath.Join(gameDir, "Sky.exe"), "fake game binary")

	return GameTree{SteamRoot: steamRoot, GameDir: gameDir}
}

// CreateBareSteamRoot builds a Steam root whose library does not contain
// the game
func CreateBareSteamRoot(t *testing.T, baseDir string) string {
	t.Helper()

	steamRoot := filepath.Join(baseDir, "Steam")
	if err := os.MkdirAll(filepath.Join(steamRoot, "steamapps", "common"), 0755); err != nil {
		t.Fatalf("failed to create steam root: %v", err)
	}
	return steamRoot
}
