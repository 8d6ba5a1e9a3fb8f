package sqlitekv

import (
	"errors"
	"os"
	"testing"
)

func TestGet_MissingKey(t *testing.T) {
	kv, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	defer kv.Close()

	if _, err := kv.Get("todos"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Get missing = %v, want os.ErrNotExist", err)
	}
}

func TestSet_Overwrites(t *testing.T) {
	dir := t.TempDir()
	kv, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := kv.Set("todos", []byte("[1]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("todos", []byte("[2]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_ = kv.Close()

	// Reopen to check the value survived.
	kv, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	got, err := kv.Get("todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "[2]" {
		t.Fatalf("Get = %q, want [2]", got)
	}
}
