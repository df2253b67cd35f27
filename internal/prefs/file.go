package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File keeps preferences in a flat YAML mapping, rewritten on every change.
type File struct {
	path   string
	values map[string]bool
}

// OpenFile loads path if it exists. A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("parsing preferences %q: %w", path, err)
	}
	if f.values == nil {
		f.values = make(map[string]bool)
	}
	return f, nil
}

func (f *File) Bool(key string) (bool, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) SetBool(key string, value bool) error {
	f.values[key] = value
	return f.save()
}

func (f *File) Close() error { return nil }

func (f *File) save() error {
	data, err := yaml.Marshal(f.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	return os.WriteFile(f.path, data, 0644)
}
