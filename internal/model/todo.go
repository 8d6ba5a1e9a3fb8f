package model

import (
	"encoding/json"
	"strings"
)

// DateLayout is the wire and input format of a due date.
const DateLayout = "2006-01-02"

// Todo is the domain model for a todo entry.
// DueDate is empty when the entry has no due date.
type Todo struct {
	ID        string
	Text      string
	DueDate   string
	Completed bool
}

// wireTodo is the persisted shape. An absent due date is stored as null.
type wireTodo struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	DueDate   *string `json:"dueDate"`
	Completed bool    `json:"completed"`
}

func (t Todo) MarshalJSON() ([]byte, error) {
	w := wireTodo{ID: t.ID, Text: t.Text, Completed: t.Completed}
	if t.DueDate != "" {
		d := t.DueDate
		w.DueDate = &d
	}
	return json.Marshal(w)
}

func (t *Todo) UnmarshalJSON(b []byte) error {
	var w wireTodo
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*t = Todo{ID: w.ID, Text: w.Text, Completed: w.Completed}
	if w.DueDate != nil {
		t.DueDate = strings.TrimSpace(*w.DueDate)
	}
	return nil
}

// Index returns the position of id in todos, or -1.
func Index(todos []Todo, id string) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the todo with the given id.
func Find(todos []Todo, id string) (Todo, bool) {
	if i := Index(todos, id); i >= 0 {
		return todos[i], true
	}
	return Todo{}, false
}

// The operations below never modify their input slice; they return a new one.

// Append adds a new incomplete todo at the end. Blank text is refused.
func Append(todos []Todo, id, text, dueDate string) ([]Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, false
	}
	out := make([]Todo, 0, len(todos)+1)
	out = append(out, todos...)
	out = append(out, Todo{ID: id, Text: text, DueDate: strings.TrimSpace(dueDate)})
	return out, true
}

// Remove drops the entry with the given id.
func Remove(todos []Todo, id string) ([]Todo, bool) {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out, len(out) != len(todos)
}

// Toggle flips Completed on the entry with the given id.
func Toggle(todos []Todo, id string) ([]Todo, bool) {
	out := clone(todos)
	i := Index(out, id)
	if i < 0 {
		return out, false
	}
	out[i].Completed = !out[i].Completed
	return out, true
}

// Edit replaces text and due date, keeping id, completion and position.
// Blank text is refused.
func Edit(todos []Todo, id, text, dueDate string) ([]Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, false
	}
	out := clone(todos)
	i := Index(out, id)
	if i < 0 {
		return out, false
	}
	out[i].Text = text
	out[i].DueDate = strings.TrimSpace(dueDate)
	return out, true
}

func clone(todos []Todo) []Todo {
	out := make([]Todo, len(todos))
	copy(out, todos)
	return out
}
