// Package prefs persists the player's boolean preferences.
package prefs

import (
	"errors"
	"fmt"
	"log/slog"
)

// KeySoundOn stores whether sound is enabled.
const KeySoundOn = "isSoundOn"

// Store is a small boolean key-value store. Missing keys are not an error;
// Bool reports ok=false for them.
type Store interface {
	Bool(key string) (value, ok bool, err error)
	SetBool(key string, value bool) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown preferences backend")

// Open returns the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendFile:
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// SoundEnabled reads the sound flag, defaulting to true when it was never
// saved or cannot be read.
func SoundEnabled(s Store, log *slog.Logger) bool {
	if s == nil {
		return true
	}
	v, ok, err := s.Bool(KeySoundOn)
	if err != nil {
		if log != nil {
			log.Warn("reading sound preference", slog.Any("err", err))
		}
		return true
	}
	if !ok {
		return true
	}
	return v
}

// Memory is an in-process Store, used when nothing is persisted.
type Memory struct {
	values map[string]bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]bool)}
}

func (m *Memory) Bool(key string) (bool, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) SetBool(key string, value bool) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
