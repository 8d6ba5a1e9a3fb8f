package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/duetodo/internal/editmode"
	"github.com/idilsaglam/duetodo/internal/todo"
	"github.com/idilsaglam/duetodo/internal/ui"
	"github.com/idilsaglam/duetodo/internal/view"
)

const emptyPlaceholder = "No todos yet. Press a to add one."

// Model is the Bubble Tea model for the todo list. It is used by pointer so
// the service's change notification can rebuild it in place.
type Model struct {
	svc      *todo.Service
	renderer *view.Renderer
	editor   *editmode.Controller
	keys     keyMap

	tree view.Tree
	list list.Model
	cmds []tea.Cmd

	// Inline add
	adding   bool
	addText  textinput.Model
	addDate  textinput.Model
	addFocus editmode.Field

	// Inline edit inputs; values mirror the controller's form.
	editText textinput.Model
	editDate textinput.Model

	status string
	width  int
	height int
}

// New wires the model to the service. It takes over svc.OnChange.
func New(svc *todo.Service, renderer *view.Renderer) *Model {
	m := &Model{
		svc:      svc,
		renderer: renderer,
		editor:   editmode.New(svc),
		keys:     defaultKeys(),
		width:    80,
		height:   24,
	}
	svc.OnChange = m.render
	m.editor.Rerender = m.render

	l := list.New(nil, rowDelegate{m: m}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = m.keys.listKeys
	l.AdditionalFullHelpKeys = m.keys.listKeys
	m.list = l

	m.addText = newInput("What needs doing?", 200)
	m.addDate = newInput("YYYY-MM-DD", 10)
	m.editText = newInput("Todo text", 200)
	m.editDate = newInput("YYYY-MM-DD", 10)

	m.render()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// Run starts the program on the alternate screen.
func Run(svc *todo.Service, renderer *view.Renderer) error {
	_, err := tea.NewProgram(New(svc, renderer), tea.WithAltScreen()).Run()
	return err
}

// render rebuilds the whole list from the store.
func (m *Model) render() {
	m.tree = m.renderer.Render()

	items := make([]list.Item, 0, len(m.tree.Rows))
	for _, r := range m.tree.Rows {
		items = append(items, rowItem{Row: r})
	}
	idx := m.list.Index()
	m.cmds = append(m.cmds, m.list.SetItems(items))
	if n := len(items); n > 0 {
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		m.list.Select(idx)
	}

	done, pending := m.tree.Summary()
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.editor.State() == editmode.StateEditing:
			cmd = m.updateEdit(msg)
		case m.adding:
			cmd = m.updateAdd(msg)
		default:
			var quit bool
			cmd, quit = m.updateList(msg)
			if quit {
				return m, tea.Quit
			}
		}
		return m, m.flush(cmd)
	}
	m.list, cmd = m.list.Update(msg)
	return m, m.flush(cmd)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd, false
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Add):
		m.openAdd()
		return textinput.Blink, false
	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selectedID(); ok && m.editor.Start(id) {
			m.loadEditForm()
			return textinput.Blink, false
		}
		return nil, false
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selectedID(); ok {
			m.report(m.svc.ToggleComplete(id))
		}
		return nil, false
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.report(m.svc.Delete(id))
		}
		return nil, false
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd, false
}

func (m *Model) selectedID() (string, bool) {
	it, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return "", false
	}
	return it.ID, true
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.cmds, cmd)
	m.cmds = nil
	return tea.Batch(cmds...)
}

func (m *Model) resize() {
	h := m.height - 5
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
	inputW := m.width / 3
	if inputW < 20 {
		inputW = 20
	}
	m.addText.Width = inputW
	m.editText.Width = inputW
	m.addDate.Width = 10
	m.editDate.Width = 10
}

func (m *Model) View() string {
	var b strings.Builder
	t := ui.Current()
	done, pending := m.tree.Summary()
	b.WriteString(t.Muted.Render(ui.ProgressBar(done, done+pending, 28)) + "\n")
	if m.tree.Empty {
		b.WriteString(m.list.Title + "\n\n")
		b.WriteString(t.Muted.Render(emptyPlaceholder))
	} else {
		b.WriteString(m.list.View())
	}
	if m.adding {
		b.WriteString("\n" + m.addView())
	}
	if m.status != "" {
		b.WriteString("\n" + t.Error.Render("✖ "+m.status))
	}
	return ui.Panel([]string{b.String()})
}
