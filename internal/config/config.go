package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFile is the optional override file looked up beside the executable.
const ConfigFile = "installer.json"

// Config holds the detection lists and fixed names the installer works with.
// Everything here has a baked-in default; a JSON file can override any field
// so the candidate lists are data, not literals in the detection logic.
type Config struct {
	// SteamRoots are probed in order to find a Steam installation.
	SteamRoots []string `json:"steam_roots"`

	// GameDirRelative is joined onto a found Steam root.
	GameDirRelative string `json:"game_dir_relative"`

	// GameDirFallbacks are absolute candidates on alternate volumes,
	// probed after the root-derived path.
	GameDirFallbacks []string `json:"game_dir_fallbacks"`

	// LauncherMarker is the subdirectory that identifies a Steam root.
	LauncherMarker string `json:"launcher_marker"`

	// GameMarkerFile identifies a directory as the game installation.
	GameMarkerFile string `json:"game_marker_file"`

	// GameFolderName is the well-known name of the game directory.
	GameFolderName string `json:"game_folder_name"`

	// AssetURL is the release asset to download.
	AssetURL string `json:"asset_url"`

	// AssetFilename is the name the asset is written under inside the
	// game directory.
	AssetFilename string `json:"asset_filename"`

	// ResourcesDirName is the subdirectory resource imports are mirrored into.
	ResourcesDirName string `json:"resources_dir_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SteamRoots: []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		},
		GameDirRelative: `steamapps\common\Sky Children of the Light`,
		GameDirFallbacks: []string{
			`D:\SteamLibrary\steamapps\common\Sky Children of the Light`,
			`E:\SteamLibrary\steamapps\common\Sky Children of the Light`,
		},
		LauncherMarker:   "steamapps",
		GameMarkerFile:   "Sky.exe",
		GameFolderName:   "Sky Children of the Light",
		AssetURL:         "https://github.com/alvindimas05/ThatNoobSkyMod/releases/latest/download/TNSM.dll",
		AssetFilename:    "powrprof.dll",
		ResourcesDirName: "mods",
	}
}

// Load reads configuration from path, falling back to defaults for any field
// the file omits. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
