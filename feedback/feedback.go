// Package feedback maps (gesture, action) pairs to audio and haptic
// output. The Handler interface is the surface action-handling code
// calls per user gesture; implementations decide policy and treat
// unmapped pairs as silent no-ops.
package feedback

import "github.com/keyboardkit/keyboardkit/gestures"

// Handler triggers feedback for a gesture on an action. None of the
// operations fail; an implementation with nothing to play stays quiet.
type Handler interface {
	// TriggerFeedback triggers feedback for the pair. The standard
	// implementation composes both sub-triggers; custom implementations
	// may diverge.
	TriggerFeedback(g gestures.Gesture, a gestures.Action)

	// TriggerAudioFeedback triggers audio feedback only.
	TriggerAudioFeedback(g gestures.Gesture, a gestures.Action)

	// TriggerHapticFeedback triggers haptic feedback only.
	TriggerHapticFeedback(g gestures.Gesture, a gestures.Action)
}

// Audio identifies an audio feedback type.
type Audio string

const (
	AudioNone   Audio = "none"
	AudioInput  Audio = "input"
	AudioDelete Audio = "delete"
	AudioSystem Audio = "system"
)

// Haptic identifies a haptic feedback type.
type Haptic string

const (
	HapticNone             Haptic = "none"
	HapticLightImpact      Haptic = "light_impact"
	HapticMediumImpact     Haptic = "medium_impact"
	HapticHeavyImpact      Haptic = "heavy_impact"
	HapticSelectionChanged Haptic = "selection_changed"
	HapticSuccess          Haptic = "success"
	HapticError            Haptic = "error"
)

// Trigger is a (gesture, action) pair used as a configuration key.
type Trigger struct {
	Gesture gestures.Gesture
	Action  gestures.Action
}
