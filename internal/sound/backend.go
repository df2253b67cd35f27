package sound

import (
	"errors"
	"io"
)

// ErrNoDevice is returned by Silent when asked to load anything.
var ErrNoDevice = errors.New("audio output unavailable")

// Backend decodes sound files into playable voices.
type Backend interface {
	// Load decodes r, whose encoding is given by its file extension
	// (".wav", ".mp3", ...). Looping voices repeat until stopped.
	Load(r io.Reader, ext string, loop bool) (Voice, error)
}

// Voice is one decoded sound with its own volume and transport.
type Voice interface {
	// Play starts the voice from the beginning unless it is already playing.
	Play()
	// Stop halts and rewinds the voice.
	Stop()
	Playing() bool
	// SetVolume takes a linear gain in [0,1]; it applies immediately and to
	// later plays.
	SetVolume(v float64)
}

// Leveler is implemented by backends that can report the current output level.
type Leveler interface {
	Level() float64
}

// Silent is the backend used when no audio device could be opened.
type Silent struct{}

func (Silent) Load(io.Reader, string, bool) (Voice, error) { return nil, ErrNoDevice }
