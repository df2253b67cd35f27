package prefs

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openStores(t *testing.T) map[string]func(dir string) Store {
	t.Helper()
	return map[string]func(dir string) Store{
		BackendFile: func(dir string) Store {
			s, err := Open(BackendFile, filepath.Join(dir, "prefs.yaml"))
			if err != nil {
				t.Fatalf("Open file: %v", err)
			}
			return s
		},
		BackendSQLite: func(dir string) Store {
			s, err := Open(BackendSQLite, filepath.Join(dir, "prefs.db"))
			if err != nil {
				t.Fatalf("Open sqlite: %v", err)
			}
			return s
		},
	}
}

func TestStoreDefaultsToSoundOn(t *testing.T) {
	for name, open := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t.TempDir())
			defer s.Close()

			_, ok, err := s.Bool(KeySoundOn)
			if err != nil || ok {
				t.Fatalf("Bool on empty store = ok %v, err %v", ok, err)
			}
			if !SoundEnabled(s, quietLogger()) {
				t.Fatal("sound should default to enabled")
			}
		})
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	for name, open := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			s := open(dir)
			if err := s.SetBool(KeySoundOn, false); err != nil {
				t.Fatalf("SetBool: %v", err)
			}
			if err := s.SetBool(KeySoundOn, false); err != nil {
				t.Fatalf("SetBool again: %v", err)
			}
			s.Close()

			s = open(dir)
			defer s.Close()
			if SoundEnabled(s, quietLogger()) {
				t.Fatal("sound flag was not persisted as off")
			}

			if err := s.SetBool(KeySoundOn, true); err != nil {
				t.Fatalf("SetBool: %v", err)
			}
			v, ok, err := s.Bool(KeySoundOn)
			if err != nil || !ok || !v {
				t.Fatalf("Bool = %v, %v, %v", v, ok, err)
			}
		})
	}
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("isSoundOn: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("etcd", "x")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestSoundEnabledNilStore(t *testing.T) {
	if !SoundEnabled(nil, quietLogger()) {
		t.Fatal("nil store should read as enabled")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if !SoundEnabled(m, quietLogger()) {
		t.Fatal("empty memory store should read as enabled")
	}
	_ = m.SetBool(KeySoundOn, false)
	if SoundEnabled(m, quietLogger()) {
		t.Fatal("memory store ignored SetBool")
	}
}
