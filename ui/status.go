package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Resizer/util"
	"github.com/dixieflatline76/Resizer/util/log"
)

// statusBar shows one message at a time at the bottom of the window.
// Timed messages clear themselves unless a newer message replaced them.
type statusBar struct {
	label *widget.Label
	gen   *util.SafeCounter
}

func newStatusBar() *statusBar {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return &statusBar{label: label, gen: util.NewSafeInt()}
}

// ShowMessage displays msg for d.
func (s *statusBar) ShowMessage(msg string, d time.Duration) {
	g := s.gen.Increment()
	s.label.SetText(msg)
	log.Printf("Status: %s", msg)
	time.AfterFunc(d, func() {
		fyne.Do(func() { s.expire(g) })
	})
}

// Message returns the text currently shown.
func (s *statusBar) Message() string {
	return s.label.Text
}

func (s *statusBar) expire(g int) {
	if s.gen.Value() != g {
		return
	}
	s.label.SetText("")
}
