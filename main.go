package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/alvindimas05/tnsm-installer/internal/audio"
	"github.com/alvindimas05/tnsm-installer/internal/config"
	"github.com/alvindimas05/tnsm-installer/internal/process"
	"github.com/alvindimas05/tnsm-installer/internal/release"
	"github.com/alvindimas05/tnsm-installer/internal/session"
	"github.com/alvindimas05/tnsm-installer/internal/ui"
	"github.com/alvindimas05/tnsm-installer/internal/version"
)

const (
	modOwner = "alvindimas05"
	modRepo  = "ThatNoobSkyMod"
)

func main() {
	// Global panic handler to keep crashes readable
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nOops, something broke: %v\n", r)
			fmt.Fprintln(os.Stderr, "Let the developers know what happened.")
			os.Exit(1)
		}
	}()

	// Configure log package to not include file paths
	log.SetFlags(0)

	var quietFlag, versionFlag bool
	flag.BoolVar(&quietFlag, "quiet", false, "Suppress sound feedback")
	flag.BoolVar(&versionFlag, "version", false, "Show installer version and exit")
	flag.Parse()

	if versionFlag {
		fmt.Printf("TNSM Installer %s\n", version.Current)
		return
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Printf("warning: %v, continuing with defaults", err)
	}

	audio.Init(quietFlag, log.Printf)

	sess := session.New(cfg, nil)
	sess.SetGameRunningCheck(func() bool {
		if target, ok := sess.Target(); ok {
			return process.IsGameRunningInDir(target)
		}
		return process.IsGameRunning()
	})
	sess.Detect()

	releases := release.NewClient(modOwner, modRepo, nil)

	ui.New(sess, releases).Run()
}

// configPath looks for the override file beside the executable so the
// installer works the same no matter where it is launched from.
func configPath() string {
	exe, err := os.Executable()
	if err != nil {
		return config.ConfigFile
	}
	return filepath.Join(filepath.Dir(exe), config.ConfigFile)
}
