package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/duetodo/internal/editmode"
	"github.com/idilsaglam/duetodo/internal/ui"
)

// ---- add form (input controller) ----

func (m *Model) openAdd() {
	m.adding = true
	m.addText.SetValue("")
	m.addDate.SetValue("")
	m.addFocus = editmode.FieldText
	m.focusAdd()
	m.resize()
}

func (m *Model) closeAdd() {
	m.adding = false
	m.addText.Blur()
	m.addDate.Blur()
	m.resize()
}

func (m *Model) focusAdd() {
	if m.addFocus == editmode.FieldText {
		m.addDate.Blur()
		m.addText.Focus()
	} else {
		m.addText.Blur()
		m.addDate.Focus()
	}
}

func (m *Model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeAdd()
		return nil
	case key.Matches(msg, m.keys.NextField):
		if m.addFocus == editmode.FieldText {
			m.addFocus = editmode.FieldDate
		} else {
			m.addFocus = editmode.FieldText
		}
		m.focusAdd()
		return nil
	case key.Matches(msg, m.keys.Submit):
		m.submitAdd()
		return nil
	}
	var cmd tea.Cmd
	if m.addFocus == editmode.FieldText {
		m.addText, cmd = m.addText.Update(msg)
	} else {
		m.addDate, cmd = m.addDate.Update(msg)
	}
	return cmd
}

// submitAdd ignores blank text; otherwise it adds, clears both fields and
// returns focus to the text field.
func (m *Model) submitAdd() {
	if strings.TrimSpace(m.addText.Value()) == "" {
		return
	}
	_, err := m.svc.Add(m.addText.Value(), m.addDate.Value())
	m.report(err)
	m.addText.SetValue("")
	m.addDate.SetValue("")
	m.addFocus = editmode.FieldText
	m.focusAdd()
	if n := len(m.list.Items()); n > 0 {
		m.list.Select(n - 1)
	}
}

func (m *Model) addView() string {
	t := ui.Current()
	bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
	title := t.Title.Render("Add todo") + t.Muted.Render("  enter save · tab next field · esc close")
	line := m.addText.View() + "  " + t.Muted.Render("due") + " " + m.addDate.View()
	return bar.Render(title + "\n" + line)
}

// ---- inline edit form ----

func (m *Model) loadEditForm() {
	text, due := m.editor.Form()
	m.editText.SetValue(text)
	m.editText.CursorEnd()
	m.editDate.SetValue(due)
	m.focusEdit()
}

func (m *Model) focusEdit() {
	if m.editor.Focus() == editmode.FieldText {
		m.editDate.Blur()
		m.editText.Focus()
	} else {
		m.editText.Blur()
		m.editDate.Focus()
	}
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.NextField) {
		m.editor.NextField()
		m.focusEdit()
		return nil
	}
	m.editor.SetText(m.editText.Value())
	m.editor.SetDueDate(m.editDate.Value())
	if handled, err := m.editor.HandleKey(msg.String()); handled {
		m.report(err)
		if m.editor.State() == editmode.StateView {
			m.editText.Blur()
			m.editDate.Blur()
		}
		return nil
	}

	var cmd tea.Cmd
	if m.editor.Focus() == editmode.FieldText {
		m.editText, cmd = m.editText.Update(msg)
	} else {
		m.editDate, cmd = m.editDate.Update(msg)
	}
	m.editor.SetText(m.editText.Value())
	m.editor.SetDueDate(m.editDate.Value())
	return cmd
}

func (m *Model) editLine(width int) string {
	t := ui.Current()
	line := t.Accent.Render("✎") + " " + m.editText.View() + "  " + t.Muted.Render("due") + " " + m.editDate.View() +
		"  " + t.Muted.Render("enter save · esc cancel")
	return ui.Truncate(line, width)
}
