package settings

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"

	// settingsKey is the store key the automation settings live under.
	settingsKey = "settings"
)

// Store is a key-value settings store. Values round-trip through YAML, so
// struct fields are addressed by their yaml tags.
type Store interface {
	// Get decodes the value stored under key into dst and reports whether
	// the key was present. dst is left untouched when it is not.
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
}

// document is the in-memory form shared by the file and memory stores.
type document struct {
	mu      sync.Mutex
	values  map[string]any
	persist func(map[string]any) error
}

func (d *document) Get(key string, dst any) (bool, error) {
	d.mu.Lock()
	value, ok := d.values[key]
	d.mu.Unlock()
	if !ok {
		return false, nil
	}

	raw, err := yaml.Marshal(value)
	if err != nil {
		return true, fmt.Errorf("encode %q: %w", key, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (d *document) Set(key string, value any) error {
	raw, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	var plain any
	if err := yaml.Unmarshal(raw, &plain); err != nil {
		return fmt.Errorf("normalize %q: %w", key, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	previous, had := d.values[key]
	d.values[key] = plain
	if d.persist == nil {
		return nil
	}
	if err := d.persist(d.values); err != nil {
		if had {
			d.values[key] = previous
		} else {
			delete(d.values, key)
		}
		return err
	}
	return nil
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	document
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{document{values: map[string]any{}}}
}

// FileStore persists values to a YAML file on every Set.
type FileStore struct {
	document
	path string
}

// OpenFileStore loads the YAML file at path. A missing file yields an empty
// store; the file and its directory are created on the first Set.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	fs.values = map[string]any{}
	fs.persist = fs.write

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fs.values); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	if fs.values == nil {
		fs.values = map[string]any{}
	}
	return fs, nil
}

// Path returns the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) write(values map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

// DefaultPath returns the settings file location under the user's config
// directory.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Load reads the automation settings from store, filling in defaults for
// anything not stored.
func Load(store Store) (Settings, error) {
	s := Defaults()
	found, err := store.Get(settingsKey, &s)
	if err != nil {
		return Defaults(), err
	}
	if !found {
		log.Printf("settings: nothing stored, using defaults")
	}
	return s.Normalized(), nil
}

// Save writes the automation settings to store.
func Save(store Store, s Settings) error {
	if err := store.Set(settingsKey, s.Normalized()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
