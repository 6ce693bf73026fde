package ui

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/Resizer/config"
	"github.com/dixieflatline76/Resizer/util/log"
)

// FilePicker asks the user for a file to open or a destination to save to.
// onChosen runs on the UI thread and only when the user confirmed a path.
// A save picker whose dialog already opened the destination hands over that
// writer, and onChosen must close it; out is nil otherwise.
type FilePicker interface {
	PickOpen(parent fyne.Window, onChosen func(path string))
	PickSave(parent fyne.Window, onChosen func(path string, out io.WriteCloser))
}

// fynePicker uses Fyne's built-in file dialogs.
type fynePicker struct {
	root string
}

func (p *fynePicker) PickOpen(parent fyne.Window, onChosen func(string)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Open dialog failed: %v", err)
			return
		}
		if r == nil {
			log.Debug("Open dialog cancelled")
			return
		}
		path := r.URI().Path()
		if cerr := r.Close(); cerr != nil {
			log.Printf("Failed to close %s: %v", path, cerr)
		}
		onChosen(path)
	}, parent)
	d.SetFilter(storage.NewExtensionFileFilter(config.ImageExtensions))
	p.locate(d)
	d.Resize(dialogSize(parent))
	d.Show()
}

// PickSave hands the dialog's writer straight to onChosen. The dialog has
// already created or truncated the file by then.
func (p *fynePicker) PickSave(parent fyne.Window, onChosen func(string, io.WriteCloser)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("Save dialog failed: %v", err)
			return
		}
		if w == nil {
			log.Debug("Save dialog cancelled")
			return
		}
		onChosen(w.URI().Path(), w)
	}, parent)
	d.SetFilter(storage.NewExtensionFileFilter(config.ImageExtensions))
	d.SetFileName(config.DefaultSaveName)
	p.locate(d)
	d.Resize(dialogSize(parent))
	d.Show()
}

func (p *fynePicker) locate(d *dialog.FileDialog) {
	lister, err := storage.ListerForURI(storage.NewFileURI(p.root))
	if err != nil {
		log.Printf("Cannot open %s in file dialog: %v", p.root, err)
		return
	}
	d.SetLocation(lister)
}

func dialogSize(parent fyne.Window) fyne.Size {
	s := parent.Canvas().Size()
	return fyne.NewSize(s.Width*0.9, s.Height*0.9)
}
