// Package main provides the entry point for the Slick Viewer application.
package main

import (
	"log"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/lucacicada/slick-viewer/internal/app"
	"github.com/lucacicada/slick-viewer/internal/version"
	"github.com/lucacicada/slick-viewer/internal/viewport"
	"github.com/lucacicada/slick-viewer/ui/mainwindow"
	"github.com/lucacicada/slick-viewer/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", version.AppName, version.Version)

	appPrefs := prefs.Load()

	opts := viewport.DefaultOptions()
	opts.Padding = appPrefs.Float(prefs.KeyFitPadding, opts.Padding)
	opts.Actions = map[string]viewport.ActionConfig{
		viewport.ActionPan:        {Enabled: appPrefs.Bool(prefs.KeyPanEnabled, true)},
		viewport.ActionRotate:     {Enabled: appPrefs.Bool(prefs.KeyRotateEnabled, true)},
		viewport.ActionAreaSelect: {Enabled: appPrefs.Bool(prefs.KeySelectEnabled, true)},
	}

	fyneApp := fyneapp.NewWithID("com.lucacicada.slick-viewer")
	fyneApp.Settings().SetTheme(&app.ViewerTheme{})

	state := app.NewState(opts)
	win := mainwindow.New(fyneApp, state, appPrefs)

	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := state.LoadMedia(path); err != nil {
			log.Printf("Failed to load %s: %v", path, err)
		}
	}

	// Development convenience: restart automatically when a newer binary
	// appears on disk.
	if reloader := app.NewHotReloader(2 * time.Second); reloader != nil {
		reloader.OnNewBinary(func() {
			log.Printf("New binary detected, restarting")
			if err := reloader.Restart(); err != nil {
				log.Printf("Restart failed: %v", err)
			}
		})
		reloader.Start()
		defer reloader.Stop()
	}

	win.ShowAndRun()
}
