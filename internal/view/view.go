// Package view projects the persisted todo collection into a view tree.
//
// Render is a total rebuild: it re-reads the collection on every call and
// never reuses rows from an earlier call. Drawing the tree is left to the
// terminal layer.
package view

import (
	"time"

	"github.com/idilsaglam/duetodo/internal/model"
)

// BadgeLayout formats due dates as "Jan 2, 2006".
const BadgeLayout = "Jan 2, 2006"

// Action is an affordance a row exposes.
type Action string

const (
	ActionToggle Action = "toggle"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Badge is the due-date label of a row.
type Badge struct {
	Label   string
	Overdue bool
}

// Row is one rendered todo.
type Row struct {
	ID      string
	Checked bool
	Text    string
	Due     *Badge
	Actions []Action
}

// Tree is the whole rendered list.
type Tree struct {
	Empty bool
	Rows  []Row
}

// Summary counts done and pending rows.
func (t Tree) Summary() (done, pending int) {
	for _, r := range t.Rows {
		if r.Checked {
			done++
		} else {
			pending++
		}
	}
	return
}

// Source supplies the collection to render.
type Source interface {
	Load() []model.Todo
}

// Renderer builds a Tree from a Source.
type Renderer struct {
	src Source
	now func() time.Time
}

func NewRenderer(src Source) *Renderer {
	return &Renderer{src: src, now: time.Now}
}

// WithClock replaces the clock used to decide overdue badges.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Render reads the full collection and projects it.
func (r *Renderer) Render() Tree {
	return Build(r.src.Load(), r.now())
}

// Build projects todos as of now.
func Build(todos []model.Todo, now time.Time) Tree {
	if len(todos) == 0 {
		return Tree{Empty: true}
	}
	rows := make([]Row, 0, len(todos))
	for _, td := range todos {
		row := Row{
			ID:      td.ID,
			Checked: td.Completed,
			Text:    td.Text,
			Actions: []Action{ActionToggle, ActionEdit, ActionDelete},
		}
		if td.DueDate != "" {
			row.Due = &Badge{
				Label:   FormatDue(td.DueDate),
				Overdue: !td.Completed && IsOverdue(td.DueDate, now),
			}
		}
		rows = append(rows, row)
	}
	return Tree{Rows: rows}
}

// FormatDue renders a YYYY-MM-DD date as "Jan 2, 2006".
// Unparseable input is returned unchanged.
func FormatDue(date string) string {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(BadgeLayout)
}

// IsOverdue reports whether date falls strictly before the calendar day of
// now, in now's location. Time of day is ignored.
func IsOverdue(date string, now time.Time) bool {
	due, err := time.ParseInLocation(model.DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return due.Before(today)
}
