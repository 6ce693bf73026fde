package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/dixieflatline76/Resizer/asset"
	"github.com/dixieflatline76/Resizer/config"
	"github.com/dixieflatline76/Resizer/util"
	"github.com/dixieflatline76/Resizer/util/log"
)

// ResizerApp represents the application.
type ResizerApp struct {
	app      fyne.App
	assetMgr *asset.Manager
	main     *ImageResizerWindow
}

// NewResizerApp creates the Fyne application and its main window.
func NewResizerApp() *ResizerApp {
	return newResizerApp(app.NewWithID(config.AppID), nil)
}

// newResizerApp wires a window into a; a nil picker selects the platform picker.
func newResizerApp(a fyne.App, picker FilePicker) *ResizerApp {
	home := util.HomeDir()
	if picker == nil {
		picker = NewFilePicker(home)
	}
	ra := &ResizerApp{
		app:      a,
		assetMgr: asset.NewManager(),
		main:     NewImageResizerWindow(a, picker, home),
	}

	if icon, err := ra.assetMgr.GetIcon("app.png"); err == nil {
		a.SetIcon(icon)
	}
	ra.main.window.SetMainMenu(ra.createMainMenu())
	ra.main.window.SetMaster()
	return ra
}

// Menu shortcuts reach the window even while an entry holds the focus.
var (
	openShortcut   = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	resizeShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault}
	saveShortcut   = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
)

func (ra *ResizerApp) createMainMenu() *fyne.MainMenu {
	w := ra.main
	open := fyne.NewMenuItem("Open…", w.LoadFromDialog)
	open.Shortcut = openShortcut
	save := fyne.NewMenuItem("Save…", w.SaveIfEnabled)
	save.Shortcut = saveShortcut
	resize := fyne.NewMenuItem("Resize", w.ResizeIfEnabled)
	resize.Shortcut = resizeShortcut
	about := fyne.NewMenuItem("About "+config.AppName, ra.showAbout)
	return fyne.NewMainMenu(
		fyne.NewMenu("File", open, save),
		fyne.NewMenu("Image", resize),
		fyne.NewMenu("Help", about),
	)
}

func (ra *ResizerApp) showAbout() {
	text, err := ra.assetMgr.GetText("about.txt")
	if err != nil {
		text = config.AppName
	}
	title := fmt.Sprintf("%s %s", config.AppName, config.AppVersion)
	dialog.ShowInformation(title, text, ra.main.window)
}

// Window returns the main window.
func (ra *ResizerApp) Window() *ImageResizerWindow {
	return ra.main
}

// Start shows the main window, optionally loading initialPath, and runs the event loop.
func (ra *ResizerApp) Start(initialPath string) {
	log.Printf("Starting %s %s", config.AppName, config.AppVersion)
	ra.main.Show()
	if initialPath != "" {
		ra.main.LoadPath(initialPath)
	}
	ra.app.Run()
	log.Printf("%s stopped", config.AppName)
}
