// Package storage provides the durable key-value store the session state is
// persisted to. A store is an opaque get/set contract; the file backend keeps
// one JSON document per key and the SQLite backend keeps a single kv table.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xolan/tasbih/internal/osutil"
)

const (
	// BackendFile stores each key as <dir>/<key>.json.
	BackendFile = "file"
	// BackendSQLite stores every key in <dir>/tasbih.db.
	BackendSQLite = "sqlite"
	// BackendMemory keeps values in process memory. Used by tests.
	BackendMemory = "memory"

	// DatabaseFile is the SQLite database file name inside the data dir.
	DatabaseFile = "tasbih.db"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrInvalidKey is returned for empty keys or keys containing path separators.
	ErrInvalidKey = errors.New("invalid storage key")
	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("storage is closed")
)

// Store is the durable key-value contract. Get reports whether the key was
// present; a missing key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Backends lists the backend names accepted by Open.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// DefaultDir returns the application data directory, creating it if needed.
func DefaultDir() (string, error) {
	return osutil.AppDir()
}

// Open returns the store for the given backend rooted at dir. An empty dir
// uses DefaultDir. An empty backend selects the file backend.
func Open(backend, dir string) (Store, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == BackendMemory {
		return NewMemoryStore(), nil
	}

	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	switch backend {
	case "", BackendFile:
		return NewFileStore(dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, DatabaseFile))
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
