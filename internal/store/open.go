package store

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/duetodo/internal/store/filekv"
	"github.com/idilsaglam/duetodo/internal/store/memkv"
	"github.com/idilsaglam/duetodo/internal/store/sqlitekv"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open builds a Store on the named backend rooted at dir.
func Open(backend, dir string) (*Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return New(filekv.New(dir)), nil
	case BackendSQLite:
		db, err := sqlitekv.Open(dir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return New(db), nil
	case BackendMemory:
		return New(memkv.New()), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want file|sqlite|memory)", backend)
}
