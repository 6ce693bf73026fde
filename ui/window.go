package ui

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Resizer/config"
	"github.com/dixieflatline76/Resizer/pkg/resizer"
	"github.com/dixieflatline76/Resizer/util"
	"github.com/dixieflatline76/Resizer/util/log"
)

const placeholderHint = "To start, choose an image file."

// ImageResizerWindow is the main window: path field, viewport, dimension
// fields and the resize/save actions, all driven by one Session.
type ImageResizerWindow struct {
	window    fyne.Window
	session   *resizer.Session
	processor *resizer.Processor
	picker    FilePicker
	home      string

	pathEntry    *completionEntry
	browseButton *widget.Button
	viewport     *viewport
	widthEntry   *commitEntry
	heightEntry  *commitEntry
	ratioCheck   *widget.Check
	resizeButton *widget.Button
	saveButton   *widget.Button
	status       *statusBar
}

// NewImageResizerWindow builds the window. Dialogs and relative paths are rooted at home.
func NewImageResizerWindow(a fyne.App, picker FilePicker, home string) *ImageResizerWindow {
	w := &ImageResizerWindow{
		window:    a.NewWindow(config.AppName),
		session:   resizer.NewSession(),
		processor: resizer.NewProcessor(),
		picker:    picker,
		home:      home,
		viewport:  newViewport(placeholderHint),
		status:    newStatusBar(),
	}

	w.pathEntry = newCompletionEntry(resizer.NewCompleter(home, config.ImageExtensions, config.MaxCompletions))
	w.pathEntry.SetPlaceHolder("Path to a .png or .jpg file")
	w.pathEntry.OnCommitted = func(string) { w.LoadFromPathField() }

	w.browseButton = widget.NewButtonWithIcon("Browse…", theme.FolderOpenIcon(), w.LoadFromDialog)

	w.widthEntry = newCommitEntry()
	w.widthEntry.OnCommitted = func(string) { w.OnWidthCommitted() }
	w.heightEntry = newCommitEntry()
	w.heightEntry.OnCommitted = func(string) { w.OnHeightCommitted() }

	w.ratioCheck = widget.NewCheck("Keep aspect ratio", nil)
	w.ratioCheck.SetChecked(w.session.AspectLock)
	w.ratioCheck.OnChanged = func(checked bool) {
		w.session.AspectLock = checked
		log.Debugf("Aspect lock set to %v", checked)
	}

	w.resizeButton = widget.NewButtonWithIcon("Resize", theme.ViewFullScreenIcon(), w.Resize)
	w.resizeButton.Importance = widget.HighImportance
	w.saveButton = widget.NewButtonWithIcon("Save…", theme.DocumentSaveIcon(), w.Save)

	w.setControlsEnabled(false)
	w.window.SetContent(w.buildContent())
	w.window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	return w
}

func (w *ImageResizerWindow) buildContent() fyne.CanvasObject {
	pathRow := container.NewBorder(nil, nil, nil, w.browseButton, w.pathEntry)

	dims := container.New(layout.NewFormLayout(),
		widget.NewLabel("Width"), w.widthEntry,
		widget.NewLabel("Height"), w.heightEntry,
	)
	actions := container.NewVBox(
		w.ratioCheck,
		container.NewHBox(layout.NewSpacer(), w.resizeButton, w.saveButton),
	)
	controls := NewSplitRow(dims, actions, 0.4)

	bottom := container.NewVBox(widget.NewSeparator(), controls, w.status.label)
	return container.NewBorder(pathRow, bottom, nil, nil, w.viewport.content)
}

// Window returns the underlying Fyne window.
func (w *ImageResizerWindow) Window() fyne.Window {
	return w.window
}

// Show displays the window with the path field focused.
func (w *ImageResizerWindow) Show() {
	w.window.Show()
	w.window.Canvas().Focus(w.pathEntry)
}

// LoadFromDialog asks for an image file and loads it.
func (w *ImageResizerWindow) LoadFromDialog() {
	w.picker.PickOpen(w.window, func(path string) {
		w.pathEntry.Accept(path)
		w.loadImage(path)
	})
}

// LoadFromPathField loads the image named in the path field.
func (w *ImageResizerWindow) LoadFromPathField() {
	text := w.pathEntry.Text
	w.pathEntry.committed = text
	w.loadImage(util.ResolvePath(text, w.home))
}

// LoadPath puts path in the path field and loads it.
func (w *ImageResizerWindow) LoadPath(path string) {
	w.pathEntry.Accept(path)
	w.LoadFromPathField()
}

func (w *ImageResizerWindow) loadImage(path string) {
	img, err := w.processor.Load(path)
	if err != nil {
		log.Printf("Failed to load %q: %v", path, err)
		w.status.ShowMessage(loadErrorMessage(err), config.ValidationMessageDuration)
		return
	}
	w.session.SetSource(path, img)
	w.window.SetTitle(fmt.Sprintf("%s - %s", filepath.Base(path), config.AppName))
	w.displayImage(img)
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, resizer.ErrNotFound):
		return "This file does not exist"
	case errors.Is(err, resizer.ErrIsDirectory):
		return "This file is a directory"
	case errors.Is(err, resizer.ErrDecodeFailure):
		return "This file is not a readable image"
	default:
		return fmt.Sprintf("Cannot open file: %v", err)
	}
}

// displayImage shows img, enables the controls and fills in its size.
func (w *ImageResizerWindow) displayImage(img image.Image) {
	w.viewport.SetImage(img)
	w.setControlsEnabled(true)

	b := img.Bounds()
	w.widthEntry.Accept(strconv.Itoa(b.Dx()))
	w.heightEntry.Accept(strconv.Itoa(b.Dy()))
}

func (w *ImageResizerWindow) setControlsEnabled(enabled bool) {
	for _, d := range []fyne.Disableable{w.widthEntry, w.heightEntry, w.ratioCheck, w.resizeButton, w.saveButton} {
		if enabled {
			d.Enable()
		} else {
			d.Disable()
		}
	}
}

// OnWidthCommitted validates the width field and updates the height when the ratio is locked.
func (w *ImageResizerWindow) OnWidthCommitted() {
	w.commitDimension(resizer.AxisWidth, w.widthEntry, w.heightEntry)
}

// OnHeightCommitted validates the height field and updates the width when the ratio is locked.
func (w *ImageResizerWindow) OnHeightCommitted() {
	w.commitDimension(resizer.AxisHeight, w.heightEntry, w.widthEntry)
}

// commitDimension settles field and reports whether its text was taken as typed.
func (w *ImageResizerWindow) commitDimension(axis resizer.Axis, field, other *commitEntry) bool {
	c, err := w.session.CommitDimension(axis, field.Text)
	if err != nil {
		field.Revert()
		if errors.Is(err, resizer.ErrInvalidNumber) {
			w.status.ShowMessage(fmt.Sprintf("%s must be a whole number of pixels", axisLabel(axis)), config.ValidationMessageDuration)
		}
		return false
	}

	field.Accept(strconv.Itoa(c.Value))
	switch c.Clamp {
	case resizer.ClampMax:
		w.status.ShowMessage(fmt.Sprintf("%s value needs to be at most the image %s (%d)", axisLabel(axis), axis, c.Value), config.ValidationMessageDuration)
		return false
	case resizer.ClampMin:
		w.status.ShowMessage(fmt.Sprintf("%s value needs to be at least 1", axisLabel(axis)), config.ValidationMessageDuration)
		return false
	}
	if c.Linked > 0 {
		other.Accept(strconv.Itoa(c.Linked))
	}
	return true
}

// commitPending settles edits still open in the dimension fields. Menu
// shortcuts can fire while one of them has the focus.
func (w *ImageResizerWindow) commitPending() bool {
	ok := true
	if w.widthEntry.Pending() {
		ok = w.commitDimension(resizer.AxisWidth, w.widthEntry, w.heightEntry)
	}
	if w.heightEntry.Pending() {
		ok = w.commitDimension(resizer.AxisHeight, w.heightEntry, w.widthEntry) && ok
	}
	return ok
}

func axisLabel(a resizer.Axis) string {
	if a == resizer.AxisHeight {
		return "Height"
	}
	return "Width"
}

// Resize scales the source image to the size in the dimension fields.
// A pending edit that had to be corrected cancels the resize.
func (w *ImageResizerWindow) Resize() {
	if !w.commitPending() {
		return
	}
	width, werr := resizer.ParseDimension(w.widthEntry.Text)
	height, herr := resizer.ParseDimension(w.heightEntry.Text)
	if werr != nil || herr != nil {
		w.status.ShowMessage("Width and height must be whole numbers of pixels", config.ValidationMessageDuration)
		return
	}

	out, err := w.session.Resize(w.processor, width, height)
	if err != nil {
		log.Printf("Resize failed: %v", err)
		w.status.ShowMessage(fmt.Sprintf("Cannot resize: %v", err), config.ValidationMessageDuration)
		return
	}
	log.Printf("Resized %s to %dx%d (%s)", w.session.Path, out.Bounds().Dx(), out.Bounds().Dy(), w.session.Mode())
	w.saveButton.Enable()
	w.displayImage(out)
}

// Save asks for a destination and writes the resized image there.
func (w *ImageResizerWindow) Save() {
	if w.session.Resized == nil {
		w.status.ShowMessage("Nothing to save yet: resize the image first", config.SaveMessageDuration)
		return
	}
	w.picker.PickSave(w.window, func(path string, out io.WriteCloser) {
		var err error
		if out != nil {
			err = w.session.SaveTo(w.processor, out, path)
		} else {
			err = w.session.Save(w.processor, path)
		}
		if err != nil {
			log.Printf("Save to %q failed: %v", path, err)
			w.status.ShowMessage(fmt.Sprintf("Could not save image to %s", path), config.SaveMessageDuration)
			return
		}
		w.status.ShowMessage(fmt.Sprintf("Resized image saved to %s", path), config.SaveMessageDuration)
	})
}

// ResizeIfEnabled runs Resize once the resize action is available.
func (w *ImageResizerWindow) ResizeIfEnabled() {
	if !w.resizeButton.Disabled() {
		w.Resize()
	}
}

// SaveIfEnabled runs Save once the save action is available.
func (w *ImageResizerWindow) SaveIfEnabled() {
	if !w.saveButton.Disabled() {
		w.Save()
	}
}
