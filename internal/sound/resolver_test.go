package sound

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

// countingFS records how often the bundle is walked.
type countingFS struct {
	fstest.MapFS
	reads int
}

func (c *countingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	c.reads++
	return c.MapFS.ReadDir(name)
}

func TestResolve(t *testing.T) {
	assets := fstest.MapFS{
		"ui_click.wav":              {Data: []byte("a")},
		"ui_click.mp3":              {Data: []byte("b")},
		"siren_loop.aiff":           {Data: []byte("c")},
		"sfx/deep/AMBIENT_LOOP.M4A": {Data: []byte("d")},
		".hidden/ghost.wav":         {Data: []byte("e")},
		"named/explicit.flac":       {Data: []byte("f")},
	}
	tests := []struct {
		name    string
		want    string
		missing bool
	}{
		{name: "ui_click", want: "ui_click.wav"},
		{name: "ui_click.mp3", want: "ui_click.mp3"},
		{name: "siren_loop", want: "siren_loop.aiff"},
		{name: "ambient_loop", want: "sfx/deep/AMBIENT_LOOP.M4A"},
		{name: "explicit.flac", want: "named/explicit.flac"},
		{name: "ghost", missing: true},
		{name: "nothing", missing: true},
		{name: "ui_click.ogg", missing: true},
	}
	r := NewResolver(assets)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.name)
			if tt.missing {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("Resolve(%q) = %q, %v; want ErrNotFound", tt.name, got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Resolve(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
			}
		})
	}
}

func TestResolveCachesMisses(t *testing.T) {
	assets := &countingFS{MapFS: fstest.MapFS{
		"a/b/c.txt": {Data: []byte("x")},
	}}
	r := NewResolver(assets)

	if _, err := r.Resolve("siren_loop"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	walked := assets.reads
	if walked == 0 {
		t.Fatal("expected a recursive search on first miss")
	}
	if _, err := r.Resolve("siren_loop"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if assets.reads != walked {
		t.Fatalf("second lookup walked the bundle again (%d -> %d reads)", walked, assets.reads)
	}
}

func TestResolveWithoutBundle(t *testing.T) {
	r := NewResolver(nil)
	if _, err := r.Resolve("ui_click"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if _, err := r.Open("ui_click.wav"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open err = %v", err)
	}
}
