// Package sound owns game audio: asset lookup, the UI click and the two
// gameplay loops whose crossfade follows the countdown.
package sound

import (
	"log/slog"
	"path"

	"github.com/iburimskiy/valve-wheel/internal/prefs"
)

// Logical sound names looked up in the asset bundle.
const (
	NameClick   = "ui_click"
	NameSiren   = "siren_loop"
	NameAmbient = "ambient_loop"
)

// blendRampSeconds is how long before expiry the ambient bed starts
// fading into the siren.
const blendRampSeconds = 5

// BlendFor maps the seconds remaining to the ambient share of the mix:
// 1 while more than five seconds remain, then a linear ramp to 0.
func BlendFor(remaining int) float64 {
	if remaining > blendRampSeconds {
		return 1
	}
	return clamp01(float64(remaining) / blendRampSeconds)
}

// Service coordinates every sound the game makes. It is created once in
// main and handed to whatever needs it; all calls come from the UI goroutine.
// Audio failures are logged and otherwise ignored.
type Service struct {
	log      *slog.Logger
	backend  Backend
	resolver *Resolver
	store    prefs.Store

	enabled        bool
	gameplayActive bool
	blend          float64

	click   Voice
	siren   Voice
	ambient Voice

	// failed names are not retried.
	failed map[string]bool
}

// NewService builds the service and applies the persisted sound flag. Nil
// arguments other than store fall back to silence, an empty bundle and a
// discarding logger.
func NewService(backend Backend, resolver *Resolver, store prefs.Store, log *slog.Logger) *Service {
	if backend == nil {
		backend = Silent{}
	}
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		log:      log,
		backend:  backend,
		resolver: resolver,
		store:    store,
		enabled:  true,
		failed:   make(map[string]bool),
	}
	s.SyncWithSettings()
	return s
}

// SyncWithSettings re-reads the persisted flag and applies it.
func (s *Service) SyncWithSettings() {
	s.SetSoundEnabled(prefs.SoundEnabled(s.store, s.log))
}

// SaveSoundEnabled persists the flag and applies it. A failed write is
// logged; the new value still takes effect for this run.
func (s *Service) SaveSoundEnabled(enabled bool) {
	if s.store != nil {
		if err := s.store.SetBool(prefs.KeySoundOn, enabled); err != nil {
			s.log.Warn("saving sound preference", slog.Any("err", err))
		}
	}
	s.SetSoundEnabled(enabled)
}

// SetSoundEnabled turns all audio on or off. Disabling silences and stops
// every voice at once; enabling resumes the gameplay loops if they should
// be running.
func (s *Service) SetSoundEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.stopAll()
		return
	}
	if s.gameplayActive {
		s.StartGameplay(s.blend)
	}
}

// Enabled reports the current sound flag.
func (s *Service) Enabled() bool { return s.enabled }

// PlayClick plays the UI click from the start.
func (s *Service) PlayClick() {
	if !s.enabled {
		return
	}
	if s.click == nil {
		s.click = s.voice(NameClick, false)
	}
	if s.click == nil {
		return
	}
	s.click.Stop()
	s.click.SetVolume(1)
	s.click.Play()
}

// StartGameplay marks gameplay audio active at blend and starts both loops
// unless sound is disabled.
func (s *Service) StartGameplay(blend float64) {
	s.gameplayActive = true
	s.blend = clamp01(blend)

	if !s.enabled {
		s.stopLoops()
		return
	}

	if s.siren == nil {
		s.siren = s.voice(NameSiren, true)
	}
	if s.ambient == nil {
		s.ambient = s.voice(NameAmbient, true)
	}
	play(s.siren)
	play(s.ambient)
	s.applyBlend()
}

// SetGameplayBlend moves the crossfade. Loops that were found stopped are
// restarted first; otherwise only volumes change.
func (s *Service) SetGameplayBlend(blend float64) {
	s.blend = clamp01(blend)
	if !s.enabled || !s.gameplayActive {
		return
	}
	if !playing(s.siren) || !playing(s.ambient) {
		s.StartGameplay(s.blend)
		return
	}
	s.applyBlend()
}

// StopGameplay ends gameplay audio and rewinds both loops.
func (s *Service) StopGameplay() {
	s.gameplayActive = false
	s.stopLoops()
}

// GameplayActive reports whether gameplay audio is supposed to be running.
func (s *Service) GameplayActive() bool { return s.gameplayActive }

// Blend is the last requested crossfade position.
func (s *Service) Blend() float64 { return s.blend }

// Level is the current output level in [0,1] for visual feedback, or 0 when
// the backend cannot measure it.
func (s *Service) Level() float64 {
	if l, ok := s.backend.(Leveler); ok && s.enabled {
		return clamp01(l.Level())
	}
	return 0
}

// Preload decodes the next sound not yet loaded or failed. It returns how
// many of the game's sounds have been dealt with, out of total.
func (s *Service) Preload() (done, total int) {
	slots := []struct {
		v    *Voice
		name string
		loop bool
	}{
		{&s.click, NameClick, false},
		{&s.siren, NameSiren, true},
		{&s.ambient, NameAmbient, true},
	}
	loaded := false
	for _, slot := range slots {
		if *slot.v != nil || s.failed[slot.name] {
			done++
			continue
		}
		if !loaded {
			*slot.v = s.voice(slot.name, slot.loop)
			loaded = true
			done++
		}
	}
	return done, len(slots)
}

func (s *Service) applyBlend() {
	if s.siren != nil {
		s.siren.SetVolume(1 - s.blend)
	}
	if s.ambient != nil {
		s.ambient.SetVolume(s.blend)
	}
}

func (s *Service) stopLoops() {
	for _, v := range []Voice{s.siren, s.ambient} {
		if v != nil {
			v.SetVolume(0)
			v.Stop()
		}
	}
}

func (s *Service) stopAll() {
	if s.click != nil {
		s.click.Stop()
	}
	s.stopLoops()
}

// voice resolves, decodes and wraps name. Any failure yields nil.
func (s *Service) voice(name string, loop bool) Voice {
	if s.failed[name] {
		return nil
	}
	v, err := s.load(name, loop)
	if err != nil {
		s.failed[name] = true
		s.log.Debug("sound unavailable", slog.String("sound", name), slog.Any("err", err))
		return nil
	}
	return v
}

func (s *Service) load(name string, loop bool) (Voice, error) {
	p, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := s.resolver.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return s.backend.Load(f, path.Ext(p), loop)
}

func play(v Voice) {
	if v != nil {
		v.Play()
	}
}

func playing(v Voice) bool {
	return v != nil && v.Playing()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
