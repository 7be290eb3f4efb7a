package homehive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Storage is the key-value persistence boundary of the whole package: string
// keys, raw JSON values. Implementations must be safe to call from a single
// goroutine; there is no concurrent writer in this application.
//
// Reads report absence with a false boolean, not an error. Writes may fail
// (disk full, quota) and callers are expected to convert that failure into a
// user-visible warning rather than a crash.
type Storage interface {
	// Get returns the value stored under key, and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns all keys starting with prefix, sorted.
	Keys(prefix string) ([]string, error)
}

// ErrQuotaExceeded reports a write rejected because the backing store is full.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Keys of the storage namespace.
const (
	keyProperties     = "properties"
	keyHistoricalData = "historicalData"
	keyLastMigration  = "lastHistoricalMigration"
	keyNotifications  = "notifications"
)

func yearDataKey(propertyID string) string { return "property_data_" + propertyID }

func temporalKey(recordType, propertyID string) string {
	return fmt.Sprintf("temporal_%s_%s", recordType, propertyID)
}

func historicalInventoryKey(propertyID string, year int) string {
	return fmt.Sprintf("historicalInventory_%s_%d", propertyID, year)
}

func historicalTasksKey(propertyID string, year int) string {
	return fmt.Sprintf("historicalTasks_%s_%d", propertyID, year)
}

// loadJSON reads and decodes the value under key into v.
// It returns false when the key does not exist.
func loadJSON(s Storage, key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, fmt.Errorf("cannot read %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("corrupt value under %q: %w", key, err)
	}
	return true, nil
}

// saveJSON encodes v and stores it under key.
func saveJSON(s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode value for %q: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}

// MemoryStorage is a map-backed Storage for tests and ephemeral runs.
// Quota, when positive, caps the total stored bytes so that quota-failure
// paths can be exercised deterministically.
type MemoryStorage struct {
	data  map[string][]byte
	Quota int
}

// NewMemoryStorage returns an empty in-memory store with no quota.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(key string, value []byte) error {
	if s.Quota > 0 {
		total := len(value)
		for k, v := range s.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > s.Quota {
			return ErrQuotaExceeded
		}
	}
	// copy: callers may reuse their buffer.
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Keys(prefix string) ([]string, error) {
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// DirStorage persists each key as one JSON file in a data directory, in a way
// that is still human-readable and git-friendly. Keys only contain letters,
// digits, '_' and '-', so the key is the file name.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a Storage rooted at dir, creating it if needed.
func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	return &DirStorage{dir: dir}, nil
}

// Dir returns the data directory.
func (s *DirStorage) Dir() string { return s.dir }

func (s *DirStorage) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStorage) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *DirStorage) Set(key string, value []byte) error {
	// write to a temp file then rename, so a full disk never leaves a
	// half-written value under the real key.
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *DirStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DirStorage) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

var (
	_ Storage = (*MemoryStorage)(nil)
	_ Storage = (*DirStorage)(nil)
)
