package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV implements KV backed by a single JSON file. The whole map is
// rewritten on every Set; fine for the handful of small values this
// service keeps.
type FileKV struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewFileKV loads (or initializes) a FileKV at path. A corrupt file is
// discarded rather than failing startup.
func NewFileKV(path string) (*FileKV, error) {
	f := &FileKV{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path comes from trusted config
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			f.data = make(map[string]json.RawMessage)
		}
	}

	return f, nil
}

// Get implements KV.Get.
func (f *FileKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Set implements KV.Set and flushes the file.
func (f *FileKV) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = json.RawMessage(value)

	if dir := filepath.Dir(f.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	if err := os.WriteFile(f.path, raw, 0o644); err != nil { //nolint:gosec // non-secret app state
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}
