// Package store provides the selection stores (cart, wishlist) and their
// durable key-value persistence.
package store

import (
	"os"
	"path/filepath"
	"sync"
)

// Persistence keys for the two selection snapshots.
const (
	CartKey     = "cart"
	WishlistKey = "wishlist"
)

// KV is the durable key-value contract backing the selection stores. Load's
// second return reports whether the key existed.
type KV interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
}

// FileKV stores one JSON file per key under a directory.
type FileKV struct {
	dir string
}

// compile-time assertion
var _ KV = (*FileKV)(nil)

// NewFileKV constructs a FileKV rooted at dir. The directory is created on
// first save, not here.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Load(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			// no snapshot yet; that's fine
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *FileKV) Save(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	// write to a temp file then rename for an atomic replace
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

// MemKV is a map-backed KV used for memory-only sessions and tests.
type MemKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// compile-time assertion
var _ KV = (*MemKV)(nil)

// NewMemKV constructs an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (m *MemKV) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := make([]byte, len(data))
	copy(b, data)
	m.data[key] = b
	return nil
}
