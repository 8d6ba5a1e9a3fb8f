// Package todo implements the domain operations over a persisted todo
// collection. Each operation re-reads the whole collection, applies a pure
// change, writes it back and then announces the change.
package todo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/duetodo/internal/model"
)

// Repository is the persistence boundary. Load never fails.
type Repository interface {
	Load() []model.Todo
	Save(todos []model.Todo) error
}

// Service runs add/delete/toggle/update against a Repository.
type Service struct {
	repo Repository

	// NewID returns a fresh id. Defaults to a time-ordered UUIDv7.
	NewID func() string

	// OnChange is called after every operation, including ones that changed
	// nothing, so observers can re-render.
	OnChange func()
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, NewID: newID}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// List returns the current collection.
func (s *Service) List() []model.Todo {
	return s.repo.Load()
}

// Get returns the todo with the given id.
func (s *Service) Get(id string) (model.Todo, bool) {
	return model.Find(s.repo.Load(), id)
}

// Add appends a new todo. Blank text is ignored and nothing is written.
// The returned todo is the zero value when nothing was added.
func (s *Service) Add(text, dueDate string) (model.Todo, error) {
	defer s.notify()
	todos := s.repo.Load()
	out, ok := model.Append(todos, s.uniqueID(todos), text, dueDate)
	if !ok {
		return model.Todo{}, nil
	}
	if err := s.repo.Save(out); err != nil {
		return model.Todo{}, fmt.Errorf("add: %w", err)
	}
	return out[len(out)-1], nil
}

// Delete removes the todo with the given id. Unknown ids leave the
// collection as it was.
func (s *Service) Delete(id string) error {
	defer s.notify()
	out, _ := model.Remove(s.repo.Load(), id)
	if err := s.repo.Save(out); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// ToggleComplete flips the completion flag of the todo with the given id.
func (s *Service) ToggleComplete(id string) error {
	defer s.notify()
	out, _ := model.Toggle(s.repo.Load(), id)
	if err := s.repo.Save(out); err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	return nil
}

// Update replaces text and due date. Blank text is refused without writing.
func (s *Service) Update(id, text, dueDate string) error {
	defer s.notify()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	out, _ := model.Edit(s.repo.Load(), id, text, dueDate)
	if err := s.repo.Save(out); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (s *Service) uniqueID(todos []model.Todo) string {
	gen := s.NewID
	if gen == nil {
		gen = newID
	}
	id := gen()
	for n := 1; model.Index(todos, id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", gen(), n)
	}
	return id
}

func (s *Service) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
