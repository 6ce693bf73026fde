package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// splitLayout gives the first object a fixed share of the row width and the
// second object the rest.
type splitLayout struct {
	first  fyne.CanvasObject
	second fyne.CanvasObject
	ratio  float32
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	a, b := s.first.MinSize(), s.second.MinSize()
	return fyne.NewSize(a.Width+b.Width, fyne.Max(a.Height, b.Height))
}

// Layout arranges the objects.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	firstWidth := fyne.Max(size.Width*s.ratio, s.first.MinSize().Width)
	secondWidth := fyne.Max(size.Width-firstWidth, 0)

	s.first.Resize(fyne.NewSize(firstWidth, size.Height))
	s.first.Move(fyne.NewPos(0, 0))
	s.second.Resize(fyne.NewSize(secondWidth, size.Height))
	s.second.Move(fyne.NewPos(firstWidth, 0))
}

// NewSplitRow lays out first and second side by side, first taking ratio of the width.
func NewSplitRow(first, second fyne.CanvasObject, ratio float32) *fyne.Container {
	return container.New(&splitLayout{first: first, second: second, ratio: ratio}, first, second)
}
