package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alvindimas05/tnsm-installer/internal/config"
	"github.com/alvindimas05/tnsm-installer/internal/session"
	"github.com/alvindimas05/tnsm-installer/internal/status"
	installertest "github.com/alvindimas05/tnsm-installer/testing"
)

// TestEnvironment bundles a fake Steam layout with a session resolving
// against it
type TestEnvironment struct {
	T       *testing.T
	BaseDir string
	Tree    installertest.GameTree
	Session *session.Session
}

// SetupTestEnvironment creates a game tree on disk and a session whose
// candidate lists point at it
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	baseDir := t.TempDir()
	tree := installertest.CreateGameTree(t, baseDir)

	cfg := config.Default()
	cfg.SteamRoots = []string{tree.SteamRoot}
	cfg.GameDirRelative = filepath.Join("steamapps", "common", "Sky Children of the Light")
	cfg.GameDirFallbacks = nil

	return &TestEnvironment{
		T:       t,
		BaseDir: baseDir,
		Tree:    tree,
		Session: session.New(cfg, nil),
	}
}

// WaitForOutcome polls the session until the pending install reports
func (env *TestEnvironment) WaitForOutcome() status.Outcome {
	env.T.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if o, ok := env.Session.PollInstall(); ok {
			return o
		}
		time.Sleep(10 * time.Millisecond)
	}
	env.T.Fatal("no install outcome within deadline")
	return status.Outcome{}
}
