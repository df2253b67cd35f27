// Package config holds layout constants and the user's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by Load when the file does not exist.
var ErrNoConfig = errors.New("config file not found")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Audio  AudioConfig  `yaml:"audio"`
	Prefs  PrefsConfig  `yaml:"prefs"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AudioConfig struct {
	// AssetsDir is the root of the sound bundle. Empty means no sounds.
	AssetsDir  string        `yaml:"assets_dir"`
	SampleRate int           `yaml:"sample_rate"`
	Buffer     time.Duration `yaml:"buffer"`
}

type PrefsConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists. dir is the
// per-user application directory.
func Default(dir string) *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "L'AuLake Gaming",
		},
		Audio: AudioConfig{
			AssetsDir:  filepath.Join(dir, "sounds"),
			SampleRate: 44100,
			Buffer:     50 * time.Millisecond,
		},
		Prefs: PrefsConfig{
			Backend: "file",
			Path:    filepath.Join(dir, "prefs.yaml"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, so missing keys keep default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
	}
	if err != nil {
		return nil, err
	}

	cfg := Default(filepath.Dir(path))
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Manager owns the configuration file on disk.
type Manager struct {
	config     *Config
	configPath string
}

// NewManager loads path, creating it with defaults when it does not exist.
// An empty path selects ~/.valve-wheel/config.yaml.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	m := &Manager{configPath: path}
	cfg, err := Load(path)
	switch {
	case errors.Is(err, ErrNoConfig):
		m.config = Default(filepath.Dir(path))
		if err := m.Save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		m.config = cfg
	}
	return m, nil
}

func (m *Manager) Config() *Config { return m.config }

func (m *Manager) Path() string { return m.configPath }

func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(m.configPath, data, 0644)
}

// SetAssetsDir records a new sound bundle location and saves it.
func (m *Manager) SetAssetsDir(dir string) error {
	m.config.Audio.AssetsDir = dir
	return m.Save()
}

// DefaultDir is the per-user application directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".valve-wheel"), nil
}
