package ui

import (
	"fyne.io/fyne/v2/widget"
)

// commitEntry is a single-line entry that reports when editing finishes:
// on Enter, or on focus loss when the text changed since the last accepted value.
type commitEntry struct {
	widget.Entry

	// OnCommitted receives the text when editing finishes. The handler calls
	// Accept or Revert to settle the field.
	OnCommitted func(string)

	committed string
	quiet     bool
}

func newCommitEntry() *commitEntry {
	e := &commitEntry{}
	e.ExtendBaseWidget(e)
	e.setup()
	return e
}

func (e *commitEntry) setup() {
	e.OnSubmitted = func(string) { e.commit(true) }
}

// FocusLost commits a changed value before handing over to the entry.
func (e *commitEntry) FocusLost() {
	e.Entry.FocusLost()
	e.commit(false)
}

func (e *commitEntry) commit(force bool) {
	if e.Disabled() || e.OnCommitted == nil {
		return
	}
	if !force && !e.Pending() {
		return
	}
	e.OnCommitted(e.Text)
}

// Pending reports whether the text differs from the last accepted value.
func (e *commitEntry) Pending() bool {
	return e.Text != e.committed
}

// Accept sets text as the settled value of the field.
func (e *commitEntry) Accept(text string) {
	e.committed = text
	if e.Text == text {
		return
	}
	e.quiet = true
	e.SetText(text)
	e.quiet = false
}

// Revert restores the last accepted value.
func (e *commitEntry) Revert() {
	e.Accept(e.committed)
}
