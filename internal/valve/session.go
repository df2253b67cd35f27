// Package valve holds one play session of the valve wheel: the countdown,
// the drag converter and the gameplay audio that follows them. Hosts call
// the mutation methods from their UI loop and render from View.
package valve

import (
	"github.com/iburimskiy/valve-wheel/internal/sound"
	"github.com/iburimskiy/valve-wheel/internal/wheel"
)

// Audio is the part of the sound service a session drives.
type Audio interface {
	SyncWithSettings()
	StartGameplay(blend float64)
	SetGameplayBlend(blend float64)
	StopGameplay()
}

// Session is the gameplay state of one visit to the wheel screen.
type Session struct {
	audio Audio

	timer     wheel.Timer
	converter *wheel.Converter

	// activated is set by the first increment; audio stays off until then.
	activated    bool
	audioRunning bool
}

// NewSession returns an idle session. audio may be nil.
func NewSession(audio Audio) *Session {
	s := &Session{audio: audio}
	s.converter = wheel.NewConverter(&s.timer)
	return s
}

// Appear resets audio bookkeeping when the wheel screen is shown.
func (s *Session) Appear() {
	if s.audio != nil {
		s.audio.SyncWithSettings()
	}
	s.activated = false
	s.audioRunning = false
	if s.audio != nil {
		s.audio.StopGameplay()
	}
}

// Disappear stops gameplay audio and returns everything to defaults.
func (s *Session) Disappear() {
	if s.audio != nil {
		s.audio.StopGameplay()
	}
	s.timer.Set(0)
	s.converter.Reset()
	s.activated = false
	s.audioRunning = false
}

// Tick is the 1 second countdown.
func (s *Session) Tick() {
	before := s.timer.Remaining()
	s.timer.Tick()
	if s.timer.Remaining() != before {
		s.syncAudio()
	}
}

// Drag feeds a pointer position (x, y) for a wheel centred at (cx, cy).
func (s *Session) Drag(x, y, cx, cy float64) wheel.Steps {
	before := s.timer.Remaining()
	steps := s.converter.Move(x, y, cx, cy)
	s.afterSteps(steps, before)
	return steps
}

// Rotate turns the wheel by delta degrees without a pointer, e.g. from keys.
func (s *Session) Rotate(delta float64) wheel.Steps {
	before := s.timer.Remaining()
	steps := s.converter.Rotate(delta)
	s.afterSteps(steps, before)
	return steps
}

// Release ends the current drag.
func (s *Session) Release() {
	s.converter.Release()
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool { return s.converter.Dragging() }

// Remaining is the countdown in seconds.
func (s *Session) Remaining() int { return s.timer.Remaining() }

// Activated reports whether the wheel has been wound up at least once.
func (s *Session) Activated() bool { return s.activated }

// AudioRunning reports whether the session has started gameplay audio.
func (s *Session) AudioRunning() bool { return s.audioRunning }

// View derives everything a host needs to draw the current state.
func (s *Session) View() View {
	return newView(s.timer.Remaining(), s.converter.Rotation())
}

func (s *Session) afterSteps(steps wheel.Steps, before int) {
	if steps.Up > 0 {
		s.activated = true
	}
	if s.timer.Remaining() != before {
		s.syncAudio()
	}
}

// syncAudio brings gameplay audio in line with the countdown.
func (s *Session) syncAudio() {
	if s.audio == nil {
		return
	}
	if !s.activated {
		if s.audioRunning {
			s.audio.StopGameplay()
			s.audioRunning = false
		}
		return
	}

	blend := sound.BlendFor(s.timer.Remaining())
	if !s.audioRunning {
		s.audio.StartGameplay(blend)
		s.audioRunning = true
	}
	s.audio.SetGameplayBlend(blend)
}
