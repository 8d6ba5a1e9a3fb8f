// Package editmode holds the inline edit state of the todo list.
//
// Exactly one row can be in EDITING at a time. The state lives only in the
// view layer; nothing is persisted until Save hands the form values to the
// update operation.
package editmode

import (
	"strings"

	"github.com/idilsaglam/duetodo/internal/model"
)

// State of the edit slot.
type State int

const (
	StateView State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "view"
}

// Field is the focused form field.
type Field int

const (
	FieldText Field = iota
	FieldDate
)

// Keys the controller reacts to while editing.
const (
	KeySave   = "enter"
	KeyCancel = "esc"
)

// Updater is the slice of the domain service the controller needs.
type Updater interface {
	Get(id string) (model.Todo, bool)
	Update(id, text, dueDate string) error
}

// Controller is the VIEW -> EDITING -> VIEW state machine.
type Controller struct {
	svc Updater

	// Rerender is called when an edit is discarded. A successful save
	// re-renders through the update operation instead.
	Rerender func()

	state   State
	id      string
	text    string
	dueDate string
	focus   Field
}

func New(svc Updater) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) State() State { return c.state }

// ID is the row being edited, or "".
func (c *Controller) ID() string { return c.id }

// Editing reports whether the row with id is in EDITING.
func (c *Controller) Editing(id string) bool {
	return c.state == StateEditing && c.id == id
}

// Form returns the current form values.
func (c *Controller) Form() (text, dueDate string) { return c.text, c.dueDate }

func (c *Controller) SetText(s string)    { c.text = s }
func (c *Controller) SetDueDate(s string) { c.dueDate = s }

func (c *Controller) Focus() Field { return c.focus }

// NextField moves focus between the text and date fields.
func (c *Controller) NextField() {
	if c.focus == FieldText {
		c.focus = FieldDate
	} else {
		c.focus = FieldText
	}
}

// Start puts the row for id into EDITING with the form filled from the
// stored todo. It returns false and changes nothing when the todo is gone.
// An edit already in progress on another row is discarded first.
func (c *Controller) Start(id string) bool {
	td, ok := c.svc.Get(id)
	if !ok {
		return false
	}
	if c.state == StateEditing && c.id != id {
		c.Cancel()
	}
	c.state = StateEditing
	c.id = td.ID
	c.text = td.Text
	c.dueDate = td.DueDate
	c.focus = FieldText
	return true
}

// Save commits the form through the update operation. Blank text is refused
// and the row stays in EDITING.
func (c *Controller) Save() (bool, error) {
	if c.state != StateEditing {
		return false, nil
	}
	if strings.TrimSpace(c.text) == "" {
		return false, nil
	}
	id, text, due := c.id, c.text, c.dueDate
	c.reset()
	if err := c.svc.Update(id, text, due); err != nil {
		// keep the form so the user can retry
		c.state, c.id, c.text, c.dueDate = StateEditing, id, text, due
		return false, err
	}
	return true, nil
}

// Cancel discards the form and re-renders without touching the store.
func (c *Controller) Cancel() {
	if c.state != StateEditing {
		return
	}
	c.reset()
	if c.Rerender != nil {
		c.Rerender()
	}
}

// HandleKey applies the keyboard contract: KeySave saves, KeyCancel
// cancels. Any other key is left to the caller.
func (c *Controller) HandleKey(key string) (handled bool, err error) {
	if c.state != StateEditing {
		return false, nil
	}
	switch key {
	case KeySave:
		_, err = c.Save()
		return true, err
	case KeyCancel:
		c.Cancel()
		return true, nil
	}
	return false, nil
}

func (c *Controller) reset() {
	c.state = StateView
	c.id, c.text, c.dueDate = "", "", ""
	c.focus = FieldText
}
