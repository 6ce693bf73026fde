package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizerAppMenu(t *testing.T) {
	p := &stubPicker{}
	ra := newResizerApp(test.NewTempApp(t), p)
	require.NotNil(t, ra.Window())

	menu := ra.createMainMenu()
	require.Len(t, menu.Items, 3)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "Image", menu.Items[1].Label)
	assert.Equal(t, "Help", menu.Items[2].Label)

	open, save := menu.Items[0].Items[0], menu.Items[0].Items[1]
	resize := menu.Items[1].Items[0]

	open.Action()
	assert.Equal(t, 1, p.opens, "Open… shows the open dialog")

	save.Action()
	assert.Equal(t, 0, p.saves, "Save… is inert until an image is loaded")

	resize.Action()
	assert.Nil(t, ra.Window().session.Resized, "Resize is inert until an image is loaded")
}

func TestResizerAppMenuShortcuts(t *testing.T) {
	ra := newResizerApp(test.NewTempApp(t), &stubPicker{})
	menu := ra.createMainMenu()

	tests := []struct {
		item *fyne.MenuItem
		key  fyne.KeyName
	}{
		{menu.Items[0].Items[0], fyne.KeyO},
		{menu.Items[0].Items[1], fyne.KeyS},
		{menu.Items[1].Items[0], fyne.KeyR},
	}
	for _, tt := range tests {
		t.Run(tt.item.Label, func(t *testing.T) {
			s, ok := tt.item.Shortcut.(fyne.KeyboardShortcut)
			require.True(t, ok, "menu shortcuts fire even while a field has the focus")
			assert.Equal(t, tt.key, s.Key())
			assert.Equal(t, fyne.KeyModifierShortcutDefault, s.Mod())
		})
	}
}

func TestResizerAppMenuActsOnLoadedImage(t *testing.T) {
	p := &stubPicker{}
	ra := newResizerApp(test.NewTempApp(t), p)
	w := ra.Window()
	home := t.TempDir()
	w.LoadPath(writeFixture(t, home, "wide.png", 200, 100))
	menu := ra.createMainMenu()

	w.widthEntry.SetText("40")
	menu.Items[1].Items[0].Action()
	require.NotNil(t, w.session.Resized)
	assert.Equal(t, 40, w.session.Resized.Bounds().Dx())

	menu.Items[0].Items[1].Action()
	assert.Equal(t, 1, p.saves)
}
