package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrNotFound is returned when no file in the bundle matches a sound name.
var ErrNotFound = errors.New("sound asset not found")

// DefaultExtensions are tried in order for a name given without extension.
var DefaultExtensions = []string{"wav", "mp3", "m4a", "aac", "caf", "aif", "aiff"}

type resolution struct {
	path string
	err  error
}

// Resolver maps logical sound names to files in an asset bundle. Lookups go
// to the bundle root first and fall back to a recursive, case-insensitive
// filename search. Every answer, including a miss, is cached.
type Resolver struct {
	root  fs.FS
	exts  []string
	cache map[string]resolution
}

// NewResolver returns a resolver over root. A nil root resolves nothing.
func NewResolver(root fs.FS) *Resolver {
	return &Resolver{
		root:  root,
		exts:  DefaultExtensions,
		cache: make(map[string]resolution),
	}
}

// Resolve returns the bundle path for name, e.g. "siren_loop" or "ui_click.wav".
func (r *Resolver) Resolve(name string) (string, error) {
	if res, ok := r.cache[name]; ok {
		return res.path, res.err
	}
	p, err := r.lookup(name)
	r.cache[name] = resolution{path: p, err: err}
	return p, err
}

// Open opens a path previously returned by Resolve.
func (r *Resolver) Open(p string) (fs.File, error) {
	if r.root == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return r.root.Open(p)
}

func (r *Resolver) lookup(name string) (string, error) {
	if r.root == nil {
		return "", fmt.Errorf("%w: %s (no asset bundle)", ErrNotFound, name)
	}

	if ext := path.Ext(name); ext != "" {
		base := strings.TrimSuffix(name, ext)
		if p, ok := r.find(base, ext[1:]); ok {
			return p, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, ext := range r.exts {
		if p, ok := r.find(name, ext); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (r *Resolver) find(base, ext string) (string, bool) {
	target := base + "." + ext
	if fi, err := fs.Stat(r.root, target); err == nil && fi.Mode().IsRegular() {
		return target, true
	}
	return r.search(target)
}

// search walks the whole bundle, skipping hidden entries.
func (r *Resolver) search(target string) (string, bool) {
	var found string
	_ = fs.WalkDir(r.root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.EqualFold(d.Name(), target) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}
