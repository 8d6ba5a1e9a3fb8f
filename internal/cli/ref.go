package cli

import (
	"fmt"
	"strconv"

	"github.com/idilsaglam/duetodo/internal/model"
)

// resolveRef maps an id or a 1-based index (as printed by `todo ls`) to a todo.
func resolveRef(todos []model.Todo, ref string) (model.Todo, error) {
	if td, ok := model.Find(todos, ref); ok {
		return td, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return model.Todo{}, fmt.Errorf("no todo with id %q", ref)
	}
	if n < 1 || n > len(todos) {
		return model.Todo{}, fmt.Errorf("index out of range: have %d, got %d", len(todos), n)
	}
	return todos[n-1], nil
}
