package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/duetodo/internal/ui"
	"github.com/idilsaglam/duetodo/internal/view"
)

// rowItem adapts a rendered row to bubbles/list.Item.
type rowItem struct {
	view.Row
}

func (i rowItem) FilterValue() string { return i.Text }

// rowDelegate draws one line per row; the row being edited shows the form.
type rowDelegate struct {
	m *Model
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	width := m.Width() - 2

	if d.m.editor.Editing(it.ID) {
		fmt.Fprint(w, prefix+d.m.editLine(width))
		return
	}
	fmt.Fprint(w, prefix+ui.RowLine(it.Row, width))
}
