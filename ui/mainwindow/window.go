// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/lucacicada/slick-viewer/internal/app"
	"github.com/lucacicada/slick-viewer/internal/media"
	"github.com/lucacicada/slick-viewer/internal/version"
	"github.com/lucacicada/slick-viewer/internal/viewport"
	"github.com/lucacicada/slick-viewer/ui/canvas"
	"github.com/lucacicada/slick-viewer/ui/prefs"
)

var mediaExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff",
	".mp4", ".webm", ".mkv", ".avi", ".mov", ".m4v",
}

// MainWindow is the application's main window.
type MainWindow struct {
	fyne.Window

	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	canvas    *canvas.ViewerCanvas
	statusBar *widget.Label

	// Keys currently held, used to flag auto-repeat events.
	heldKeys map[fyne.KeyName]bool
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(version.AppName)

	mw := &MainWindow{
		Window:   win,
		app:      fyneApp,
		state:    state,
		prefs:    p,
		heldKeys: make(map[fyne.KeyName]bool),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.setupKeyboard()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewViewerCanvas(mw.state)
	mw.statusBar = widget.NewLabel("No media")

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1024, 768))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Media...", mw.onOpenMedia),
		fyne.NewMenuItem("Close Media", mw.onCloseMedia),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItem("Fit to Window", mw.onFit),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Rotate Left", mw.onRotateLeft),
		fyne.NewMenuItem("Rotate Right", mw.onRotateRight),
		fyne.NewMenuItem("Straighten", mw.onStraighten),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventMediaLoaded, func(data interface{}) {
		if m, ok := data.(*media.Media); ok {
			mw.SetTitle(version.AppName + " - " + filepath.Base(m.Path))
		}
		mw.updateStatus()
	})

	mw.state.On(app.EventMediaCleared, func(data interface{}) {
		mw.SetTitle(version.AppName)
		mw.updateStatus()
	})

	mw.state.On(app.EventViewChanged, func(data interface{}) {
		mw.updateStatus()
	})
}

// setupKeyboard wires raw key events into the shortcut dispatcher.
func (mw *MainWindow) setupKeyboard() {
	dc, ok := mw.Canvas().(desktop.Canvas)
	if !ok {
		return
	}

	dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
		mw.trackModifier(ev.Name, true)

		key := shortcutKeyName(ev.Name)
		if key == "" {
			return
		}
		repeat := mw.heldKeys[ev.Name]
		mw.heldKeys[ev.Name] = true
		mw.state.Dispatcher.KeyDown(viewport.KeyEvent{Key: key, Repeat: repeat})
	})

	dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
		mw.trackModifier(ev.Name, false)
		delete(mw.heldKeys, ev.Name)
	})
}

// trackModifier mirrors shift/ctrl state to the canvas, which needs it
// because Fyne wheel events carry no modifier information.
func (mw *MainWindow) trackModifier(name fyne.KeyName, down bool) {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		mw.heldKeys[desktop.KeyShiftLeft] = down
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		mw.heldKeys[desktop.KeyControlLeft] = down
	default:
		return
	}
	mw.canvas.SetModifierState(
		mw.heldKeys[desktop.KeyShiftLeft],
		mw.heldKeys[desktop.KeyControlLeft])
}

// shortcutKeyName maps Fyne key names onto dispatcher key strings.
// Unmapped keys return "".
func shortcutKeyName(name fyne.KeyName) string {
	switch name {
	case fyne.KeyPlus:
		return "+"
	case fyne.KeyEqual:
		return "="
	case fyne.KeyMinus:
		return "-"
	case fyne.Key0:
		return "0"
	case fyne.KeyLeftBracket:
		return "["
	case fyne.KeyRightBracket:
		return "]"
	case fyne.KeyS:
		return "s"
	case fyne.KeyUp:
		return "ArrowUp"
	case fyne.KeyDown:
		return "ArrowDown"
	case fyne.KeyLeft:
		return "ArrowLeft"
	case fyne.KeyRight:
		return "ArrowRight"
	}
	return ""
}

// updateStatus refreshes the status bar readout.
func (mw *MainWindow) updateStatus() {
	m := mw.state.CurrentMedia()
	if m == nil {
		mw.statusBar.SetText("No media")
		return
	}

	v := mw.state.Viewport
	text := fmt.Sprintf("%s  %dx%d  %.0f%%  %.1f°",
		m.Kind, m.Width(), m.Height(),
		v.ScaleFactor()*100, v.RotationDegrees())
	if m.Kind == media.KindVideo && m.FPS > 0 {
		text += fmt.Sprintf("  %.3g fps", m.FPS)
	}
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
	_ = mw.prefs.Save()
}

// Menu action handlers

func (mw *MainWindow) onOpenMedia() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.LoadMedia(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(mediaExtensions))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onCloseMedia() {
	mw.state.ClearMedia()
}

func (mw *MainWindow) onZoomIn() {
	mw.state.Viewport.Zoom(1.1)
}

func (mw *MainWindow) onZoomOut() {
	mw.state.Viewport.Zoom(0.9)
}

func (mw *MainWindow) onFit() {
	mw.state.Viewport.Fit(mw.state.Options.Padding)
}

func (mw *MainWindow) onRotateLeft() {
	mw.state.Viewport.Rotate(-15)
}

func (mw *MainWindow) onRotateRight() {
	mw.state.Viewport.Rotate(15)
}

func (mw *MainWindow) onStraighten() {
	mw.state.Viewport.RotateExact(0)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+version.AppName,
		fmt.Sprintf("%s v%s\n\n"+
			"A fast image and video viewer.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.AppName, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
