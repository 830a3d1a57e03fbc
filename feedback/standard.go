package feedback

import (
	"io"

	"github.com/keyboardkit/keyboardkit/gestures"
)

// AudioEngine plays a resolved audio feedback type. Engines must treat
// AudioNone as a no-op.
type AudioEngine interface {
	Play(a Audio)
}

// HapticEngine fires a resolved haptic feedback type. Engines must
// treat HapticNone as a no-op.
type HapticEngine interface {
	Trigger(h Haptic)
}

// StandardHandler resolves pairs through its configurations and
// forwards the result to the engines. TriggerFeedback composes both
// sub-triggers.
type StandardHandler struct {
	Audio        AudioConfiguration
	Haptic       HapticConfiguration
	AudioEngine  AudioEngine
	HapticEngine HapticEngine
}

// NewStandardHandler wires the standard configurations to the given
// engines.
func NewStandardHandler(audio AudioEngine, haptic HapticEngine) *StandardHandler {
	return &StandardHandler{
		Audio:        StandardAudioConfiguration(),
		Haptic:       StandardHapticConfiguration(),
		AudioEngine:  audio,
		HapticEngine: haptic,
	}
}

func (h *StandardHandler) TriggerFeedback(g gestures.Gesture, a gestures.Action) {
	h.TriggerAudioFeedback(g, a)
	h.TriggerHapticFeedback(g, a)
}

func (h *StandardHandler) TriggerAudioFeedback(g gestures.Gesture, a gestures.Action) {
	if h.AudioEngine == nil {
		return
	}
	audio := h.Audio.Resolve(g, a)
	if audio == AudioNone {
		return
	}
	h.AudioEngine.Play(audio)
}

func (h *StandardHandler) TriggerHapticFeedback(g gestures.Gesture, a gestures.Action) {
	if h.HapticEngine == nil {
		return
	}
	haptic := h.Haptic.Resolve(g, a)
	if haptic == HapticNone {
		return
	}
	h.HapticEngine.Trigger(haptic)
}

// BellAudioEngine writes the terminal bell for any non-None audio.
// Used by the demo app, where the terminal is the only speaker we have.
type BellAudioEngine struct {
	W io.Writer
}

func (e BellAudioEngine) Play(a Audio) {
	if a == AudioNone || e.W == nil {
		return
	}
	_, _ = e.W.Write([]byte("\a"))
}

// NoopHapticEngine ignores every trigger. Terminals cannot vibrate.
type NoopHapticEngine struct{}

func (NoopHapticEngine) Trigger(Haptic) {}
