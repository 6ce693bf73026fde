package ui

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Resizer/pkg/resizer"
)

const maxVisibleCompletions = 6

// completionEntry is the path field: a commitEntry that offers filesystem
// suggestions in a popup while the user types.
type completionEntry struct {
	commitEntry

	completer *resizer.Completer
	options   []string
	list      *suggestionList
	popup     *widget.PopUp
}

func newCompletionEntry(c *resizer.Completer) *completionEntry {
	e := &completionEntry{completer: c}
	e.ExtendBaseWidget(e)
	e.setup()
	e.OnChanged = e.textChanged
	return e
}

// FocusLost keeps the field uncommitted while a suggestion is being picked.
func (e *completionEntry) FocusLost() {
	if e.completionVisible() {
		e.Entry.FocusLost()
		return
	}
	e.commitEntry.FocusLost()
}

// TypedKey hides the suggestions on Escape and commits on Enter.
func (e *completionEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyEscape:
		if e.completionVisible() {
			e.hideCompletion()
			return
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		e.hideCompletion()
	}
	e.Entry.TypedKey(key)
}

// Options returns the current suggestions.
func (e *completionEntry) Options() []string {
	return e.options
}

func (e *completionEntry) textChanged(text string) {
	if e.quiet {
		return
	}
	e.options = e.completer.Complete(text)
	e.showCompletion()
}

func (e *completionEntry) completionVisible() bool {
	return e.popup != nil && e.popup.Visible()
}

// showCompletion opens the popup below the field and moves the focus into
// its list, which hands typing back to the field.
func (e *completionEntry) showCompletion() {
	if len(e.options) == 0 {
		e.hideCompletion()
		return
	}
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	c := app.Driver().CanvasForObject(e)
	if c == nil {
		return
	}

	if e.list == nil {
		e.list = newSuggestionList(e)
	}
	if e.popup == nil {
		e.popup = widget.NewPopUp(e.list, c)
	}

	rows := len(e.options)
	if rows > maxVisibleCompletions {
		rows = maxVisibleCompletions
	}
	itemHeight := widget.NewLabel("").MinSize().Height
	e.list.reset()
	e.popup.Resize(fyne.NewSize(e.Size().Width, itemHeight*float32(rows)))
	pos := app.Driver().AbsolutePositionForObject(e).Add(fyne.NewPos(0, e.Size().Height))
	e.popup.ShowAtPosition(pos)
	c.Focus(e.list)
}

func (e *completionEntry) hideCompletion() {
	if e.popup != nil {
		e.popup.Hide()
	}
}

// choose fills the field with a suggestion. Files are committed straight
// away; folders list their content.
func (e *completionEntry) choose(id widget.ListItemID) {
	if id < 0 || id >= len(e.options) {
		return
	}
	path := e.options[id]
	e.list.UnselectAll()
	e.hideCompletion()
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}

	isDir := strings.HasSuffix(path, string(filepath.Separator))
	e.quiet = !isDir
	e.SetText(path)
	e.quiet = false
	e.CursorColumn = len([]rune(path))
	e.Refresh()

	if !isDir {
		e.commit(true)
	}
}

// suggestionList holds the focus while the popup is open. Up and Down move
// the highlight, Enter picks it, Escape closes the popup and everything else
// goes to the entry.
type suggestionList struct {
	widget.List

	entry   *completionEntry
	current int
}

func newSuggestionList(e *completionEntry) *suggestionList {
	l := &suggestionList{entry: e, current: -1}
	l.Length = func() int { return len(e.options) }
	l.CreateItem = func() fyne.CanvasObject { return widget.NewLabel("") }
	l.UpdateItem = func(id widget.ListItemID, o fyne.CanvasObject) {
		if id >= len(e.options) {
			return
		}
		label := o.(*widget.Label)
		label.TextStyle.Bold = id == l.current
		label.SetText(e.options[id])
	}
	l.OnSelected = e.choose
	l.ExtendBaseWidget(l)
	return l
}

func (l *suggestionList) reset() {
	l.current = -1
	l.UnselectAll()
	l.ScrollTo(0)
	l.Refresh()
}

func (l *suggestionList) move(step int) {
	next := l.current + step
	if next < 0 || next >= len(l.entry.options) {
		return
	}
	l.current = next
	l.ScrollTo(next)
	l.Refresh()
}

// TypedKey navigates the suggestions or forwards the key to the entry.
func (l *suggestionList) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyDown:
		l.move(1)
	case fyne.KeyUp:
		l.move(-1)
	case fyne.KeyReturn, fyne.KeyEnter:
		if l.current < 0 {
			l.entry.TypedKey(key)
			return
		}
		l.entry.choose(l.current)
	case fyne.KeyEscape:
		l.entry.hideCompletion()
		if c := fyne.CurrentApp().Driver().CanvasForObject(l.entry); c != nil {
			c.Focus(l.entry)
		}
	default:
		l.entry.TypedKey(key)
	}
}

// TypedRune keeps typing into the entry.
func (l *suggestionList) TypedRune(r rune) {
	l.entry.TypedRune(r)
}

// TypedShortcut lets clipboard shortcuts reach the entry.
func (l *suggestionList) TypedShortcut(s fyne.Shortcut) {
	l.entry.TypedShortcut(s)
}
