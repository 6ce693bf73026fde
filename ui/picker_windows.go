//go:build windows

package ui

import (
	"errors"
	"io"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/dixieflatline76/Resizer/config"
	"github.com/dixieflatline76/Resizer/util/log"
)

// NewFilePicker returns the platform file picker rooted at dir.
func NewFilePicker(dir string) FilePicker {
	return &nativePicker{root: dir, fallback: &fynePicker{root: dir}}
}

// nativePicker shows the Windows common item dialogs and falls back to Fyne's
// dialogs when they cannot be created.
type nativePicker struct {
	root     string
	fallback *fynePicker
}

func (p *nativePicker) dialogConfig(title, role string) cfd.DialogConfig {
	patterns := make([]string, len(config.ImageExtensions))
	for i, ext := range config.ImageExtensions {
		patterns[i] = "*" + ext
	}
	return cfd.DialogConfig{
		Title: title,
		Role:  role,
		FileFilters: []cfd.FileFilter{
			{DisplayName: config.ImageFilterLabel, Pattern: strings.Join(patterns, ";")},
		},
		DefaultExtension: strings.TrimPrefix(config.ImageExtensions[0], "."),
		Folder:           p.root,
	}
}

func (p *nativePicker) PickOpen(parent fyne.Window, onChosen func(string)) {
	cfg := p.dialogConfig("Choose File", "ResizerOpen")
	p.run(func() (string, error) { return cfdutil.ShowOpenFileDialog(cfg) }, func() {
		p.fallback.PickOpen(parent, onChosen)
	}, onChosen)
}

// PickSave leaves the destination untouched; the caller writes it by path.
func (p *nativePicker) PickSave(parent fyne.Window, onChosen func(string, io.WriteCloser)) {
	cfg := p.dialogConfig("Save File", "ResizerSave")
	cfg.FileName = config.DefaultSaveName
	p.run(func() (string, error) { return cfdutil.ShowSaveFileDialog(cfg) }, func() {
		p.fallback.PickSave(parent, onChosen)
	}, func(path string) { onChosen(path, nil) })
}

// run blocks on the COM dialog off the UI thread and reports back through fyne.Do.
func (p *nativePicker) run(show func() (string, error), fallback func(), onChosen func(string)) {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		path, err := show()
		fyne.Do(func() {
			switch {
			case errors.Is(err, cfd.ErrorCancelled):
				log.Debug("File dialog cancelled")
			case err != nil:
				log.Printf("Native file dialog failed, using fallback: %v", err)
				fallback()
			case path != "":
				onChosen(path)
			}
		})
	}()
}
