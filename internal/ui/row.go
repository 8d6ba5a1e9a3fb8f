package ui

import (
	"github.com/idilsaglam/duetodo/internal/view"
)

// RowLine draws a rendered row as "☐ text · due Jan 2, 2006".
// Overdue badges read "overdue ..." so the flag survives without colour.
func RowLine(r view.Row, width int) string {
	t := Current()
	box, text := t.Muted.Render(t.BoxUnchecked), r.Text
	if r.Checked {
		box, text = t.Success.Render(t.BoxChecked), t.Done.Render(r.Text)
	}
	line := box + " " + text
	if r.Due != nil {
		line += " " + Badge(*r.Due)
	}
	return Truncate(line, width)
}

// Badge draws a due-date badge.
func Badge(b view.Badge) string {
	t := Current()
	if b.Overdue {
		return t.Error.Render("· overdue " + b.Label)
	}
	return t.Muted.Render("· due " + b.Label)
}
