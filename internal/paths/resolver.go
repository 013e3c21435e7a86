package paths

import (
	"path/filepath"
	"strings"

	"github.com/alvindimas05/tnsm-installer/internal/config"
)

// State is the outcome of a resolution attempt.
type State int

const (
	// StateFound means an installation target was located.
	StateFound State = iota
	// StateNeedsInput means no candidate matched and a hint is required.
	StateNeedsInput
	// StateInvalid means a supplied hint matched neither a launcher root
	// nor an installation directory.
	StateInvalid
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateFound:
		return "found"
	case StateNeedsInput:
		return "needs-input"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Resolution carries the result of detection or hint classification.
// LauncherRoot may be set even when State is NeedsInput (launcher located,
// game not), and Target is only set when State is Found.
type Resolution struct {
	State        State
	LauncherRoot string
	Target       string
	Reason       string
}

// Resolver locates the game installation directory from candidate lists.
// Existence is re-checked on every call; nothing is cached as a guarantee.
type Resolver struct {
	cfg    config.Config
	prober Prober
}

// NewResolver creates a resolver over the given candidate configuration.
// A nil prober defaults to the real filesystem.
func NewResolver(cfg config.Config, prober Prober) *Resolver {
	if prober == nil {
		prober = OSProber{}
	}
	return &Resolver{cfg: cfg, prober: prober}
}

// Detect probes the fixed launcher root candidates in order. The first root
// that exists wins and sub-resolution runs from it. No root existing is a
// normal negative result, not an error.
func (r *Resolver) Detect() Resolution {
	for _, root := range r.cfg.SteamRoots {
		if r.prober.Exists(root) {
			return r.FromLauncherRoot(root)
		}
	}
	return Resolution{State: StateNeedsInput, Reason: "launcher directory not found"}
}

// FromLauncherRoot derives the installation target from a launcher root:
// the root-relative candidate first, then the absolute fallbacks on
// alternate volumes. First existing candidate wins.
func (r *Resolver) FromLauncherRoot(root string) Resolution {
	candidates := make([]string, 0, len(r.cfg.GameDirFallbacks)+1)
	candidates = append(candidates, filepath.Join(root, r.cfg.GameDirRelative))
	candidates = append(candidates, r.cfg.GameDirFallbacks...)

	for _, dir := range candidates {
		if r.prober.Exists(dir) {
			return Resolution{State: StateFound, LauncherRoot: root, Target: dir}
		}
	}

	return Resolution{
		State:        StateNeedsInput,
		LauncherRoot: root,
		Reason:       "game not found under launcher directories",
	}
}

// Classify resolves a user-supplied hint (typed path or picked folder).
// A hint containing the launcher marker subdirectory is treated as a
// launcher root and sub-resolution runs from it; a hint that exists and
// carries the game marker file or the well-known folder name is accepted
// directly; anything else is invalid.
func (r *Resolver) Classify(hint string) Resolution {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return Resolution{State: StateInvalid, Reason: "no path provided"}
	}

	if r.prober.Exists(filepath.Join(hint, r.cfg.LauncherMarker)) {
		return r.FromLauncherRoot(hint)
	}

	if r.prober.Exists(hint) {
		if r.prober.Exists(filepath.Join(hint, r.cfg.GameMarkerFile)) || BaseEquals(hint, r.cfg.GameFolderName) {
			return Resolution{State: StateFound, Target: hint}
		}
	}

	return Resolution{
		State:  StateInvalid,
		Reason: "path is neither a launcher directory nor the game directory",
	}
}
