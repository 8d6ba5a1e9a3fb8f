package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/duetodo/internal/model"
	"github.com/idilsaglam/duetodo/internal/store"
	"github.com/idilsaglam/duetodo/internal/store/filekv"
)

type env struct {
	dataDir string
	config  string
}

func newEnv(t *testing.T) env {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, k := range []string{"TODO_CONFIG", "TODO_BACKEND", "TODO_DATA_DIR", "TODO_THEME"} {
		t.Setenv(k, "")
	}
	return env{
		dataDir: t.TempDir(),
		config:  filepath.Join(t.TempDir(), "config.toml"),
	}
}

func (e env) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.config, "--data-dir", e.dataDir, "--theme", "mono"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func (e env) todos(t *testing.T) []model.Todo {
	t.Helper()
	return store.New(filekv.New(e.dataDir)).Load()
}

func TestAddAndList(t *testing.T) {
	e := newEnv(t)

	out, _, err := e.run(t, "add", "Buy", "milk", "--due", "2025-01-01")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "added") {
		t.Fatalf("add output = %q", out)
	}
	todos := e.todos(t)
	if len(todos) != 1 || todos[0].Text != "Buy milk" || todos[0].DueDate != "2025-01-01" || todos[0].ID == "" {
		t.Fatalf("todos = %#v", todos)
	}

	out, _, err = e.run(t, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, " 1. [ ] Buy milk · overdue Jan 1, 2025") {
		t.Fatalf("ls output:\n%s", out)
	}
}

func TestAdd_RejectsBadInput(t *testing.T) {
	e := newEnv(t)
	if _, _, err := e.run(t, "add", "   "); err == nil {
		t.Fatalf("blank add succeeded")
	}
	if _, _, err := e.run(t, "add", "x", "--due", "tomorrow"); err == nil {
		t.Fatalf("bad due date accepted")
	}
	if got := e.todos(t); len(got) != 0 {
		t.Fatalf("todos = %#v", got)
	}
}

func TestDoneEditRemove(t *testing.T) {
	e := newEnv(t)
	for _, text := range []string{"one", "two", "three"} {
		if _, _, err := e.run(t, "add", text); err != nil {
			t.Fatalf("add %s: %v", text, err)
		}
	}

	if _, _, err := e.run(t, "done", "2"); err != nil {
		t.Fatalf("done: %v", err)
	}
	todos := e.todos(t)
	if todos[0].Completed || !todos[1].Completed || todos[2].Completed {
		t.Fatalf("after done = %#v", todos)
	}

	// By id this time.
	if _, _, err := e.run(t, "edit", todos[2].ID, "--text", "drei", "--due", "2030-01-01"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := e.todos(t)[2]; got.Text != "drei" || got.DueDate != "2030-01-01" || got.ID != todos[2].ID {
		t.Fatalf("after edit = %#v", got)
	}
	if _, _, err := e.run(t, "edit", "3", "--clear-due"); err != nil {
		t.Fatalf("edit --clear-due: %v", err)
	}
	if got := e.todos(t)[2]; got.DueDate != "" || got.Text != "drei" {
		t.Fatalf("after clear = %#v", got)
	}
	if _, _, err := e.run(t, "edit", "1", "--text", "  "); err == nil {
		t.Fatalf("blank edit succeeded")
	}

	if _, _, err := e.run(t, "rm", "1"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	got := e.todos(t)
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "drei" {
		t.Fatalf("after rm = %#v", got)
	}
}

func TestRefOutOfRange(t *testing.T) {
	e := newEnv(t)
	_, errOut, err := e.run(t, "done", "4")
	if err == nil || !strings.Contains(err.Error(), "index out of range") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(errOut, "todo ls") {
		t.Fatalf("missing hint: %q", errOut)
	}
}

func TestListGroupedAndEmpty(t *testing.T) {
	e := newEnv(t)
	out, _, err := e.run(t, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "no todos") {
		t.Fatalf("empty ls:\n%s", out)
	}

	_, _, _ = e.run(t, "add", "a")
	_, _, _ = e.run(t, "add", "b")
	_, _, _ = e.run(t, "done", "1")

	out, _, err = e.run(t, "ls", "--group")
	if err != nil {
		t.Fatalf("ls --group: %v", err)
	}
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	if pending < 0 || done < pending {
		t.Fatalf("grouped ls:\n%s", out)
	}
	// Indexes stay the positions used by done/rm.
	if !strings.Contains(out, " 2. [ ] b") || !strings.Contains(out, " 1. [x] a") {
		t.Fatalf("grouped ls indexes:\n%s", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	e := newEnv(t)
	_, _, _ = e.run(t, "add", "Pay rent", "--due", "2000-01-01")
	_, _, _ = e.run(t, "add", "Read")
	_, _, _ = e.run(t, "done", "2")

	out, _, err := e.run(t, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "# Todos\n\n- [ ] Pay rent (**overdue** Jan 1, 2000)\n- [x] Read\n"
	if !strings.HasPrefix(out, want) {
		t.Fatalf("export = %q, want prefix %q", out, want)
	}

	out, _, err = e.run(t, "export", "--render")
	if err != nil {
		t.Fatalf("export --render: %v", err)
	}
	if !strings.Contains(out, "Pay rent") {
		t.Fatalf("rendered export = %q", out)
	}
}

func TestConfigFileSelectsSQLite(t *testing.T) {
	e := newEnv(t)
	if err := os.WriteFile(e.config, []byte("backend = \"sqlite\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, _, err := e.run(t, "add", "stored in sqlite"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := os.Stat(filepath.Join(e.dataDir, "todo.sqlite")); err != nil {
		t.Fatalf("sqlite file missing: %v", err)
	}
	out, _, err := e.run(t, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "stored in sqlite") {
		t.Fatalf("ls output:\n%s", out)
	}
}

func TestVerboseReportsCorruptStore(t *testing.T) {
	e := newEnv(t)
	if err := os.WriteFile(filepath.Join(e.dataDir, "todos.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out, errOut, err := e.run(t, "--verbose", "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(out, "no todos") {
		t.Fatalf("corrupt store not treated as empty:\n%s", out)
	}
	if !strings.Contains(errOut, "storage:") {
		t.Fatalf("verbose warning missing: %q", errOut)
	}
}

func TestResolveRef(t *testing.T) {
	todos := []model.Todo{{ID: "abc"}, {ID: "def"}}
	if td, err := resolveRef(todos, "def"); err != nil || td.ID != "def" {
		t.Fatalf("by id = %#v, %v", td, err)
	}
	if td, err := resolveRef(todos, "1"); err != nil || td.ID != "abc" {
		t.Fatalf("by index = %#v, %v", td, err)
	}
	if _, err := resolveRef(todos, "0"); err == nil {
		t.Fatalf("index 0 accepted")
	}
	if _, err := resolveRef(todos, "zzz"); err == nil {
		t.Fatalf("unknown id accepted")
	}
}
