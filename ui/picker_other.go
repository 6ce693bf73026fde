//go:build !windows

package ui

// NewFilePicker returns the platform file picker rooted at dir.
func NewFilePicker(dir string) FilePicker {
	return &fynePicker{root: dir}
}
