package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alvindimas05/tnsm-installer/internal/config"
)

// fakeProber reports existence from a fixed set of paths
type fakeProber struct {
	existing map[string]bool
}

func newFakeProber(paths ...string) *fakeProber {
	p := &fakeProber{existing: make(map[string]bool)}
	for _, path := range paths {
		p.existing[path] = true
	}
	return p
}

func (p *fakeProber) Exists(path string) bool {
	return p.existing[path]
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.SteamRoots = []string{
		filepath.Join("steam", "primary"),
		filepath.Join("steam", "secondary"),
	}
	cfg.GameDirRelative = filepath.Join("steamapps", "common", "Sky Children of the Light")
	cfg.GameDirFallbacks = []string{
		filepath.Join("lib-d", "steamapps", "common", "Sky Children of the Light"),
		filepath.Join("lib-e", "steamapps", "common", "Sky Children of the Light"),
	}
	return cfg
}

// TestDetect tests root probing and sub-resolution against a fake filesystem
func TestDetect(t *testing.T) {
	cfg := testConfig()
	primary := cfg.SteamRoots[0]
	secondary := cfg.SteamRoots[1]
	primaryGame := filepath.Join(primary, cfg.GameDirRelative)
	secondaryGame := filepath.Join(secondary, cfg.GameDirRelative)

	tests := []struct {
		name         string
		existing     []string
		wantState    State
		wantRoot     string
		wantTarget   string
	}{
		{
			name:       "game under first root",
			existing:   []string{primary, primaryGame},
			wantState:  StateFound,
			wantRoot:   primary,
			wantTarget: primaryGame,
		},
		{
			name:       "first root wins even when second also matches",
			existing:   []string{primary, primaryGame, secondary, secondaryGame},
			wantState:  StateFound,
			wantRoot:   primary,
			wantTarget: primaryGame,
		},
		{
			name:       "second root when first missing",
			existing:   []string{secondary, secondaryGame},
			wantState:  StateFound,
			wantRoot:   secondary,
			wantTarget: secondaryGame,
		},
		{
			name:       "fallback volume when root has no game",
			existing:   []string{primary, cfg.GameDirFallbacks[1]},
			wantState:  StateFound,
			wantRoot:   primary,
			wantTarget: cfg.GameDirFallbacks[1],
		},
		{
			name:       "fallback order respected",
			existing:   []string{primary, cfg.GameDirFallbacks[0], cfg.GameDirFallbacks[1]},
			wantState:  StateFound,
			wantRoot:   primary,
			wantTarget: cfg.GameDirFallbacks[0],
		},
		{
			name:      "root found but game missing",
			existing:  []string{primary},
			wantState: StateNeedsInput,
			wantRoot:  primary,
		},
		{
			name:      "nothing exists",
			existing:  nil,
			wantState: StateNeedsInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(cfg, newFakeProber(tt.existing...))
			got := r.Detect()

			if got.State != tt.wantState {
				t.Errorf("Detect() state = %v, want %v", got.State, tt.wantState)
			}
			if got.LauncherRoot != tt.wantRoot {
				t.Errorf("Detect() root = %q, want %q", got.LauncherRoot, tt.wantRoot)
			}
			if got.Target != tt.wantTarget {
				t.Errorf("Detect() target = %q, want %q", got.Target, tt.wantTarget)
			}
		})
	}
}

// TestClassify tests hint classification per the three shapes
func TestClassify(t *testing.T) {
	cfg := testConfig()

	launcherHint := filepath.Join("somewhere", "Steam")
	gameHint := filepath.Join("somewhere", "games", "sky")
	namedHint := filepath.Join("somewhere", "Sky Children of the Light")

	tests := []struct {
		name       string
		hint       string
		existing   []string
		wantState  State
		wantTarget string
	}{
		{
			name: "launcher-shaped hint runs sub-resolution",
			hint: launcherHint,
			existing: []string{
				filepath.Join(launcherHint, cfg.LauncherMarker),
				filepath.Join(launcherHint, cfg.GameDirRelative),
			},
			wantState:  StateFound,
			wantTarget: filepath.Join(launcherHint, cfg.GameDirRelative),
		},
		{
			name: "launcher-shaped hint without game needs input",
			hint: launcherHint,
			existing: []string{
				filepath.Join(launcherHint, cfg.LauncherMarker),
			},
			wantState: StateNeedsInput,
		},
		{
			name: "game hint accepted via marker file",
			hint: gameHint,
			existing: []string{
				gameHint,
				filepath.Join(gameHint, cfg.GameMarkerFile),
			},
			wantState:  StateFound,
			wantTarget: gameHint,
		},
		{
			name:       "game hint accepted via folder name",
			hint:       namedHint,
			existing:   []string{namedHint},
			wantState:  StateFound,
			wantTarget: namedHint,
		},
		{
			name:      "existing dir without marker or name is invalid",
			hint:      gameHint,
			existing:  []string{gameHint},
			wantState: StateInvalid,
		},
		{
			name:      "nonexistent hint is invalid",
			hint:      gameHint,
			existing:  nil,
			wantState: StateInvalid,
		},
		{
			name:      "empty hint is invalid",
			hint:      "   ",
			existing:  nil,
			wantState: StateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(cfg, newFakeProber(tt.existing...))
			got := r.Classify(tt.hint)

			if got.State != tt.wantState {
				t.Errorf("Classify(%q) state = %v, want %v", tt.hint, got.State, tt.wantState)
			}
			if got.Target != tt.wantTarget {
				t.Errorf("Classify(%q) target = %q, want %q", tt.hint, got.Target, tt.wantTarget)
			}
			if tt.wantState == StateInvalid && got.Reason == "" {
				t.Error("Classify() invalid result should carry a reason")
			}
		})
	}
}

// TestDetect_RealFilesystem exercises OSProber against temp directories
func TestDetect_RealFilesystem(t *testing.T) {
	tempDir := t.TempDir()

	root := filepath.Join(tempDir, "Steam")
	gameDir := filepath.Join(root, "steamapps", "common", "Sky Children of the Light")
	if err := os.MkdirAll(gameDir, 0755); err != nil {
		t.Fatalf("failed to create game dir: %v", err)
	}

	cfg := config.Default()
	cfg.SteamRoots = []string{filepath.Join(tempDir, "missing"), root}
	cfg.GameDirRelative = filepath.Join("steamapps", "common", "Sky Children of the Light")
	cfg.GameDirFallbacks = nil

	r := NewResolver(cfg, nil)
	got := r.Detect()

	if got.State != StateFound {
		t.Fatalf("Detect() state = %v, want StateFound", got.State)
	}
	if got.Target != gameDir {
		t.Errorf("Detect() target = %q, want %q", got.Target, gameDir)
	}
	if got.LauncherRoot != root {
		t.Errorf("Detect() root = %q, want %q", got.LauncherRoot, root)
	}
}

// TestBaseEquals tests case-insensitive folder name matching
func TestBaseEquals(t *testing.T) {
	tests := []struct {
		path string
		name string
		want bool
	}{
		{filepath.Join("a", "Sky Children of the Light"), "Sky Children of the Light", true},
		{filepath.Join("a", "sky children of the light"), "Sky Children of the Light", true},
		{filepath.Join("a", "Sky Children of the Light") + string(filepath.Separator), "Sky Children of the Light", true},
		{filepath.Join("a", "SkyChildren"), "Sky Children of the Light", false},
		{"Sky Children of the Light", "Sky Children of the Light", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := BaseEquals(tt.path, tt.name); got != tt.want {
				t.Errorf("BaseEquals(%q, %q) = %v, want %v", tt.path, tt.name, got, tt.want)
			}
		})
	}
}
