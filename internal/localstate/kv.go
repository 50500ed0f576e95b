// Package localstate is the client-side analog of browser storage: a handful
// of fixed keys persisted as JSON so the session and moodboard survive
// restarts without a server round trip.
package localstate

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// KV is a minimal key-value surface the stores are written against, so tests
// can swap the filesystem out.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV persists each key as one JSON file under a directory.
type FileKV struct {
	dir string
}

func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (kv *FileKV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

func (kv *FileKV) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(kv.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (kv *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(kv.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(kv.path(key), value, 0o644)
}

func (kv *FileKV) Delete(key string) error {
	err := os.Remove(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemKV is the in-memory implementation used in tests.
type MemKV struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{values: map[string][]byte{}}
}

func (kv *MemKV) Get(key string) ([]byte, bool) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	data, ok := kv.values[key]
	return data, ok
}

func (kv *MemKV) Set(key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.values[key] = append([]byte{}, value...)
	return nil
}

func (kv *MemKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.values, key)
	return nil
}
