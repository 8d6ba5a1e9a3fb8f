// Package filekv is a directory-backed key-value slot: one JSON file per key.
// Human-readable and portable. No locking; fine for a local single-user tool.
package filekv

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV stores each key as <Dir>/<key>.json.
type KV struct {
	Dir string
}

// New returns a KV rooted at dir. An empty dir means the working directory.
func New(dir string) *KV {
	return &KV{Dir: dir}
}

func (kv *KV) path(key string) (string, error) {
	dir := kv.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, key+".json"), nil
}

// Get returns the stored bytes. A missing file yields an os.ErrNotExist error.
func (kv *KV) Get(key string) ([]byte, error) {
	p, err := kv.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Set replaces the file through a rename so readers never see a partial write.
func (kv *KV) Set(key string, value []byte) error {
	p, err := kv.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
