// Package beepout plays game sounds through the beep speaker. It is the only
// package that opens an audio device.
package beepout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/valve-wheel/internal/sound"
)

// ErrUnsupported is returned for encodings the decoder set cannot read.
var ErrUnsupported = errors.New("unsupported audio encoding")

const (
	resampleQuality = 4
	levelRingSize   = 8192
	levelWindow     = 2048
)

// Backend plays voices through a single mixer on the beep speaker.
// Decoded sounds are held in memory, resampled to the speaker rate.
type Backend struct {
	format beep.Format
	mixer  *beep.Mixer
	tap    *levelTap
}

// New opens the speaker. The returned error means there is no usable output
// device; callers fall back to sound.Silent.
func New(sampleRate int, bufferDuration time.Duration) (*Backend, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(bufferDuration)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	b := &Backend{
		format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		mixer:  &beep.Mixer{},
	}
	b.tap = newLevelTap(b.mixer, levelRingSize)
	speaker.Play(b.tap)
	return b, nil
}

func (b *Backend) Load(r io.Reader, ext string, loop bool) (sound.Voice, error) {
	buf, err := decodeBuffer(r, ext, b.format)
	if err != nil {
		return nil, err
	}
	return &beepVoice{buf: buf, loop: loop, mixer: b.mixer, volume: 1}, nil
}

// Level is the RMS of the most recent output, compressed for display.
func (b *Backend) Level() float64 {
	return math.Pow(b.tap.rms(levelWindow), 0.3)
}

// Close silences everything still playing.
func (b *Backend) Close() {
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
}

func decode(r io.Reader, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(io.NopCloser(r))
	case ".flac":
		return flac.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// decodeBuffer reads the whole stream into a buffer in the target format.
func decodeBuffer(r io.Reader, ext string, target beep.Format) (*beep.Buffer, error) {
	streamer, format, err := decode(r, ext)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != target.SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, target.SampleRate, streamer)
	}
	buf := beep.NewBuffer(target)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decoding %s stream: %w", ext, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decoding %s stream: no samples", ext)
	}
	return buf, nil
}

// beepVoice replays an in-memory buffer. Fields other than playing and gen
// are only touched from the caller's goroutine or under speaker.Lock.
type beepVoice struct {
	buf   *beep.Buffer
	loop  bool
	mixer *beep.Mixer

	ctrl   *beep.Ctrl
	gain   *effects.Gain
	volume float64

	playing atomic.Bool
	gen     atomic.Uint64
}

func (v *beepVoice) Play() {
	if v.playing.Load() {
		return
	}
	var s beep.Streamer = v.buf.Streamer(0, v.buf.Len())
	if v.loop {
		s = beep.Loop(-1, v.buf.Streamer(0, v.buf.Len()))
	}
	gen := v.gen.Add(1)

	speaker.Lock()
	v.gain = &effects.Gain{Streamer: s, Gain: v.volume - 1}
	v.ctrl = &beep.Ctrl{Streamer: v.gain}
	v.playing.Store(true)
	v.mixer.Add(beep.Seq(v.ctrl, beep.Callback(func() {
		// Runs on the speaker goroutine; a newer Play owns the flag.
		if v.gen.Load() == gen {
			v.playing.Store(false)
		}
	})))
	speaker.Unlock()
}

func (v *beepVoice) Stop() {
	v.gen.Add(1)
	speaker.Lock()
	if v.ctrl != nil {
		v.ctrl.Streamer = nil
	}
	v.ctrl, v.gain = nil, nil
	speaker.Unlock()
	v.playing.Store(false)
}

func (v *beepVoice) Playing() bool { return v.playing.Load() }

func (v *beepVoice) SetVolume(vol float64) {
	speaker.Lock()
	v.volume = vol
	if v.gain != nil {
		v.gain.Gain = vol - 1
	}
	speaker.Unlock()
}
