package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the minimal key/value surface the tracker persists through.
// Values are raw JSON; Get returns ok=false for a missing key.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileKV stores all keys in a single JSON object file under the user
// data directory. Writes rewrite the whole file; the data is tiny.
type FileKV struct {
	path string
	data map[string]json.RawMessage
}

// OpenFileKV loads (or initializes) the key/value file at path. A
// malformed file is treated as empty so a corrupt progress file never
// blocks startup.
func OpenFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress file %s is malformed, starting fresh: %v\n", path, err)
		kv.data = make(map[string]json.RawMessage)
	}
	return kv, nil
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	f.data[key] = value
	return f.flush()
}

func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// DefaultPath resolves the progress file path next to the database:
// $XDG_DATA_HOME/slang/progress.json, or ~/.local/share/slang/progress.json.
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "slang", "progress.json"), nil
}
