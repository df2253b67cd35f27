package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewManagerCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	cfg := m.Config()
	if cfg.Prefs.Backend != "file" || cfg.Audio.SampleRate != 44100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Audio.AssetsDir != filepath.Join(filepath.Dir(path), "sounds") {
		t.Fatalf("assets dir = %q", cfg.Audio.AssetsDir)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "prefs:\n  backend: sqlite\naudio:\n  buffer: 80ms\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prefs.Backend != "sqlite" {
		t.Errorf("backend = %q", cfg.Prefs.Backend)
	}
	if cfg.Audio.Buffer != 80*time.Millisecond {
		t.Errorf("buffer = %v", cfg.Audio.Buffer)
	}
	if cfg.Window.Width != ScreenWidth || cfg.Log.Level != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("err = %v, want ErrNoConfig", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetAssetsDirPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetAssetsDir("/opt/sounds"); err != nil {
		t.Fatalf("SetAssetsDir: %v", err)
	}

	again, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Config().Audio.AssetsDir != "/opt/sounds" {
		t.Fatalf("assets dir = %q", again.Config().Audio.AssetsDir)
	}
}
