// Package ui builds the installer window. All state lives in the session;
// the window renders its status line, forwards button presses, and polls
// for the pending install's outcome on a fixed tick.
package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	nativedialogs "github.com/sqweek/dialog"

	"github.com/alvindimas05/tnsm-installer/internal/audio"
	"github.com/alvindimas05/tnsm-installer/internal/release"
	"github.com/alvindimas05/tnsm-installer/internal/session"
	"github.com/alvindimas05/tnsm-installer/internal/shell"
	"github.com/alvindimas05/tnsm-installer/internal/sounds"
	"github.com/alvindimas05/tnsm-installer/internal/status"
	"github.com/alvindimas05/tnsm-installer/internal/version"
)

const (
	appTitle     = "TNSM Installer"
	pollInterval = 250 * time.Millisecond
)

// Window wires the session to the Fyne widgets.
type Window struct {
	sess     *session.Session
	releases *release.Client
	fyneApp  fyne.App
	win      fyne.Window
	ticker   *time.Ticker

	statusLabel  *widget.Label
	releaseLabel *widget.Label
	pathEntry    *widget.Entry
	targetLabel  *widget.Label
	importLabel  *widget.Label

	installButton *widget.Button
	importButton  *widget.Button
	openButton    *widget.Button
}

// New creates the installer window over the given session. The release
// client may be nil; the latest-release line is then omitted.
func New(sess *session.Session, releases *release.Client) *Window {
	w := &Window{
		sess:     sess,
		releases: releases,
		fyneApp:  app.New(),
	}
	w.fyneApp.Settings().SetTheme(theme.DarkTheme())
	w.win = w.fyneApp.NewWindow(appTitle)
	w.win.Resize(fyne.NewSize(520, 420))

	w.buildContent()
	return w
}

// Run shows the window and blocks until it closes.
func (w *Window) Run() {
	w.refreshFromSession()
	w.fetchLatestRelease()

	w.ticker = time.NewTicker(pollInterval)
	go func() {
		for range w.ticker.C {
			w.tick()
		}
	}()

	w.win.ShowAndRun()
	w.ticker.Stop()
}

func (w *Window) buildContent() {
	title := widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	w.releaseLabel = widget.NewLabel("")
	w.statusLabel = widget.NewLabel("")
	w.statusLabel.Wrapping = fyne.TextWrapWord
	w.targetLabel = widget.NewLabel("Game folder: not found yet")
	w.targetLabel.Wrapping = fyne.TextWrapWord

	w.pathEntry = widget.NewEntry()
	w.pathEntry.SetPlaceHolder("Steam folder or game folder")
	browseButton := widget.NewButtonWithIcon("Browse", theme.FolderOpenIcon(), func() {
		dir, err := nativedialogs.Directory().Title("Select Steam or game folder").Browse()
		if err == nil && dir != "" {
			w.pathEntry.SetText(dir)
			w.applyHint()
		}
	})
	applyButton := widget.NewButton("Apply", w.applyHint)
	pathContainer := container.NewBorder(nil, nil, nil,
		container.NewHBox(browseButton, applyButton), w.pathEntry)

	w.installButton = widget.NewButton("Install Mod", w.startInstall)

	w.importLabel = widget.NewLabel("")
	w.importLabel.Wrapping = fyne.TextWrapWord
	w.importButton = widget.NewButton("Import Resources", w.importResources)

	w.openButton = widget.NewButton("Open Game Folder", w.openGameFolder)

	exitButton := widget.NewButton("Exit", func() {
		w.fyneApp.Quit()
	})

	content := container.NewVBox(
		title,
		container.NewCenter(w.releaseLabel),
		widget.NewSeparator(),
		w.statusLabel,
		w.targetLabel,
		pathContainer,
		widget.NewSeparator(),
		w.installButton,
		widget.NewSeparator(),
		w.importButton,
		w.importLabel,
		widget.NewSeparator(),
		container.NewHBox(layout.NewSpacer(), w.openButton, exitButton, layout.NewSpacer()),
	)

	w.win.SetContent(container.NewPadded(content))
}

// tick runs once per poll interval on a background goroutine.
func (w *Window) tick() {
	if o, ok := w.sess.PollInstall(); ok {
		switch o.Kind {
		case status.Success:
			audio.PlayAsync(sounds.Success(), 0)
		case status.Error:
			audio.PlayAsync(sounds.Failure(), 0)
		}
		w.refreshFromSession()
	}
}

// refreshFromSession re-renders the status line, target label, and button
// enablement from session state.
func (w *Window) refreshFromSession() {
	line := w.sess.StatusLine()
	w.statusLabel.SetText(line.Text)
	w.statusLabel.Importance = importanceFor(line.Kind)
	w.statusLabel.Refresh()

	if target, ok := w.sess.Target(); ok {
		w.targetLabel.SetText("Game folder: " + target)
	} else {
		w.targetLabel.SetText("Game folder: not found yet")
	}

	if w.sess.Installing() {
		w.installButton.Disable()
	} else {
		w.installButton.Enable()
	}
}

func importanceFor(kind status.Kind) widget.Importance {
	switch kind {
	case status.Success:
		return widget.SuccessImportance
	case status.Warning:
		return widget.WarningImportance
	case status.Error:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// fetchLatestRelease fills the release line in the background. A failed
// lookup is informational only.
func (w *Window) fetchLatestRelease() {
	if w.releases == nil {
		return
	}

	go func() {
		tag, err := w.releases.GetLatestTag()
		if err != nil {
			w.releaseLabel.SetText("Latest release: unavailable")
			return
		}
		if v, err := version.ParseTag(tag); err == nil {
			tag = "v" + v.String()
		}
		w.releaseLabel.SetText("Latest release: " + tag)
	}()
}

func (w *Window) applyHint() {
	audio.PlayAsync(sounds.Select(), 0)
	w.sess.ApplyHint(w.pathEntry.Text)
	w.refreshFromSession()
}

func (w *Window) startInstall() {
	audio.PlayAsync(sounds.Select(), 0)
	w.sess.BeginInstall(w.sess.Config().AssetURL)
	w.refreshFromSession()
}

func (w *Window) importResources() {
	if _, ok := w.sess.Target(); !ok {
		w.importLabel.SetText("Find the game folder before importing resources.")
		w.importLabel.Importance = widget.DangerImportance
		w.importLabel.Refresh()
		return
	}

	dir, err := nativedialogs.Directory().Title("Select resources folder").Browse()
	if err != nil || dir == "" {
		return
	}

	audio.PlayAsync(sounds.Select(), 0)
	w.importLabel.SetText("Importing resources...")
	w.importLabel.Importance = widget.MediumImportance
	w.importLabel.Refresh()
	w.importButton.Disable()

	go func() {
		defer w.importButton.Enable()

		copied, err := w.sess.ImportResources(dir)
		if err != nil {
			w.importLabel.SetText(fmt.Sprintf("Import failed: %v", err))
			w.importLabel.Importance = widget.DangerImportance
		} else {
			w.importLabel.SetText(fmt.Sprintf("Imported %d files into the game's resources folder.", copied))
			w.importLabel.Importance = widget.SuccessImportance
		}
		w.importLabel.Refresh()
	}()
}

func (w *Window) openGameFolder() {
	target, ok := w.sess.Target()
	if !ok {
		return
	}
	if err := shell.OpenFolder(target); err != nil {
		w.statusLabel.SetText(fmt.Sprintf("Could not open folder: %v", err))
		w.statusLabel.Importance = widget.DangerImportance
		w.statusLabel.Refresh()
	}
}
