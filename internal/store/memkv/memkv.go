// Package memkv is an in-memory key-value slot, used as a test fake and for
// throwaway sessions.
package memkv

import (
	"fmt"
	"os"
)

type KV struct {
	data map[string][]byte
}

func New() *KV {
	return &KV{data: map[string][]byte{}}
}

func (kv *KV) Get(key string) ([]byte, error) {
	b, ok := kv.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, os.ErrNotExist)
	}
	return append([]byte(nil), b...), nil
}

func (kv *KV) Set(key string, value []byte) error {
	kv.data[key] = append([]byte(nil), value...)
	return nil
}
