package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// pannableImage draws an image at its pixel size and scrolls its parent on mouse drag.
type pannableImage struct {
	widget.BaseWidget

	raster *canvas.Image
	scroll *container.Scroll
}

func newPannableImage() *pannableImage {
	p := &pannableImage{raster: canvas.NewImageFromImage(nil)}
	p.raster.FillMode = canvas.ImageFillOriginal
	p.raster.ScaleMode = canvas.ImageScaleSmooth
	p.ExtendBaseWidget(p)
	return p
}

func (p *pannableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

func (p *pannableImage) setImage(img image.Image) {
	p.raster.Image = img
	size := fyne.NewSize(0, 0)
	if img != nil {
		b := img.Bounds()
		size = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	p.raster.SetMinSize(size)
	p.raster.Refresh()
	p.Refresh()
}

// Dragged pans the surrounding scroll container.
func (p *pannableImage) Dragged(ev *fyne.DragEvent) {
	if p.scroll == nil {
		return
	}
	off := p.scroll.Offset.Subtract(ev.Dragged)
	maxX := p.scroll.Content.Size().Width - p.scroll.Size().Width
	maxY := p.scroll.Content.Size().Height - p.scroll.Size().Height
	p.scroll.ScrollToOffset(fyne.NewPos(clamp(off.X, 0, maxX), clamp(off.Y, 0, maxY)))
}

func (p *pannableImage) DragEnd() {}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// viewport is the scrollable image area with a hint shown before the first image.
type viewport struct {
	image       *pannableImage
	scroll      *container.Scroll
	placeholder *widget.Label
	content     fyne.CanvasObject
}

func newViewport(hint string) *viewport {
	v := &viewport{image: newPannableImage()}
	v.scroll = container.NewScroll(container.NewCenter(v.image))
	v.image.scroll = v.scroll
	v.placeholder = widget.NewLabel(hint)
	v.placeholder.Alignment = fyne.TextAlignCenter
	v.content = container.NewStack(v.scroll, container.NewCenter(v.placeholder))
	return v
}

// SetImage shows img and scrolls back to the top-left corner.
func (v *viewport) SetImage(img image.Image) {
	v.placeholder.Hide()
	v.image.setImage(img)
	v.scroll.Offset = fyne.NewPos(0, 0)
	v.scroll.Refresh()
}

// Image returns the image currently shown.
func (v *viewport) Image() image.Image {
	return v.image.raster.Image
}
