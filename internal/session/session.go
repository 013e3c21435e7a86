// Package session holds the mutable state behind the installer window:
// the resolved target, the current status line, and the single pending
// install. All methods are safe for concurrent use; the UI goroutine calls
// them directly and the install itself runs elsewhere.
package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alvindimas05/tnsm-installer/internal/config"
	"github.com/alvindimas05/tnsm-installer/internal/installer"
	"github.com/alvindimas05/tnsm-installer/internal/paths"
	"github.com/alvindimas05/tnsm-installer/internal/resources"
	"github.com/alvindimas05/tnsm-installer/internal/status"
)

const (
	readyMessage      = "Ready to install."
	installingMessage = "Downloading and installing..."
	needsInputMessage = "Steam not found. Enter the Steam or game folder below."
	gameRunningNote   = " Close the game before launching it again."
)

// Status is a renderable status line.
type Status struct {
	Kind status.Kind
	Text string
}

// Session coordinates path resolution, the pending install, and resource
// imports. At most one install is in flight at a time; the in-progress flag
// is set before the background task starts and cleared only when its outcome
// has been polled.
type Session struct {
	mu sync.Mutex

	cfg      config.Config
	resolver *paths.Resolver

	launcherRoot string
	target       string

	line Status

	installing bool
	pending    *status.Reporter

	// gameRunning, when set, is consulted before an install to warn about
	// overwriting a loaded DLL.
	gameRunning func() bool
}

// New creates a session over the given configuration. A nil prober probes
// the real filesystem.
func New(cfg config.Config, prober paths.Prober) *Session {
	return &Session{
		cfg:      cfg,
		resolver: paths.NewResolver(cfg, prober),
		line:     Status{Kind: status.Info, Text: readyMessage},
	}
}

// SetGameRunningCheck installs the predicate used to warn when the game is
// already running at install time.
func (s *Session) SetGameRunningCheck(check func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameRunning = check
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Detect runs automatic resolution and updates the session state and status
// line from the result.
func (s *Session) Detect() paths.Resolution {
	res := s.resolver.Detect()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(res)
	return res
}

// ApplyHint classifies a user-supplied path. An invalid hint updates the
// status line but leaves any previously resolved target in place.
func (s *Session) ApplyHint(hint string) paths.Resolution {
	res := s.resolver.Classify(hint)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(res)
	return res
}

// apply folds a resolution into the session. Callers hold the mutex.
func (s *Session) apply(res paths.Resolution) {
	if res.LauncherRoot != "" {
		s.launcherRoot = res.LauncherRoot
	}

	switch res.State {
	case paths.StateFound:
		s.target = res.Target
		s.line = Status{Kind: status.Success, Text: "Game found: " + res.Target}
	case paths.StateNeedsInput:
		s.line = Status{Kind: status.Warning, Text: needsInputMessage}
	case paths.StateInvalid:
		s.line = Status{Kind: status.Error, Text: "Invalid path: " + res.Reason + "."}
	}
}

// Target returns the resolved installation directory, if any.
func (s *Session) Target() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, s.target != ""
}

// StatusLine returns the current status line.
func (s *Session) StatusLine() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.line
}

// Installing reports whether an install is in flight.
func (s *Session) Installing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.installing
}

// BeginInstall validates preconditions and starts the background install.
// Precondition failures are returned synchronously and nothing is started.
// A second call while an install is in flight is rejected.
func (s *Session) BeginInstall(url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.installing {
		return "", fmt.Errorf("an install is already in progress")
	}

	url = strings.TrimSpace(url)
	if url == "" {
		s.line = Status{Kind: status.Error, Text: "Please enter a download URL first."}
		return "", fmt.Errorf("no download URL provided")
	}
	if s.target == "" {
		s.line = Status{Kind: status.Error, Text: "Game directory not found. Cannot install."}
		return "", fmt.Errorf("no installation directory resolved")
	}

	text := installingMessage
	if s.gameRunning != nil && s.gameRunning() {
		text += gameRunningNote
	}

	s.installing = true
	s.pending = status.NewReporter()
	s.line = Status{Kind: status.Info, Text: text}

	return installer.Run(url, s.target, s.cfg.AssetFilename, s.pending), nil
}

// PollInstall checks for the pending install's outcome without blocking.
// When one arrives the in-progress flag clears and the status line takes the
// outcome's kind and message.
func (s *Session) PollInstall() (status.Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return status.Outcome{}, false
	}

	o, ok := s.pending.Poll()
	if !ok {
		return status.Outcome{}, false
	}

	s.installing = false
	s.pending = nil
	s.line = Status{Kind: o.Kind, Text: o.Message}
	return o, true
}

// ImportResources mirrors sourceDir into the game's resources subdirectory.
// It runs synchronously and requires a resolved target.
func (s *Session) ImportResources(sourceDir string) (int, error) {
	s.mu.Lock()
	target := s.target
	s.mu.Unlock()

	if target == "" {
		return 0, fmt.Errorf("no installation directory resolved")
	}

	return resources.Import(sourceDir, target, s.cfg.ResourcesDirName)
}
