// Package store maps the todo collection to a single key-value slot.
//
// The collection is stored as one JSON array under Key. Reads never fail:
// a missing slot, an unreadable backend or a corrupt blob all load as an
// empty collection. Writes always replace the whole blob. There is no
// locking; two processes sharing a slot race with last-write-wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/duetodo/internal/model"
)

// Key is the slot the collection lives under.
const Key = "todos"

// Slot is a persistent key-value backend. Get reports a missing key with an
// error matching os.ErrNotExist.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store reads and writes the todo collection through a Slot.
type Store struct {
	slot Slot

	// OnError, when set, receives errors that Load recovered from.
	OnError func(error)
}

func New(slot Slot) *Store {
	return &Store{slot: slot}
}

// Load returns the persisted collection, or an empty one.
func (s *Store) Load() []model.Todo {
	b, err := s.slot.Get(Key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.report(fmt.Errorf("read %s: %w", Key, err))
		}
		return []model.Todo{}
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		s.report(fmt.Errorf("decode %s: %w", Key, err))
		return []model.Todo{}
	}
	if todos == nil {
		return []model.Todo{}
	}
	return todos
}

// Save overwrites the slot with the full collection.
func (s *Store) Save(todos []model.Todo) error {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.slot.Set(Key, b); err != nil {
		return fmt.Errorf("write %s: %w", Key, err)
	}
	return nil
}

// Close releases the backend if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Store) report(err error) {
	if s.OnError != nil {
		s.OnError(err)
	}
}
