package store

import "fmt"

// NewKV constructs a KV backend by kind: "memory" or "file".
// For file, provide the data directory in dir; for memory, dir is ignored.
func NewKV(kind, dir string) (KV, error) {
	switch kind {
	case "memory", "mem":
		return NewMemKV(), nil
	case "file":
		if dir == "" {
			return nil, fmt.Errorf("data directory required for file store")
		}
		return NewFileKV(dir), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
