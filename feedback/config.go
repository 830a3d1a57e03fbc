package feedback

import "github.com/keyboardkit/keyboardkit/gestures"

// AudioConfiguration decides which audio plays for a pair. Explicit
// pair entries win; otherwise input actions get Input, delete actions
// get Delete, everything else resolves to None.
type AudioConfiguration struct {
	Enabled bool
	Input   Audio
	Delete  Audio
	Pairs   map[Trigger]Audio
}

// StandardAudioConfiguration enables input and delete sounds on tap.
func StandardAudioConfiguration() AudioConfiguration {
	return AudioConfiguration{
		Enabled: true,
		Input:   AudioInput,
		Delete:  AudioDelete,
	}
}

// DisabledAudioConfiguration resolves everything to None.
func DisabledAudioConfiguration() AudioConfiguration {
	return AudioConfiguration{}
}

// Resolve returns the audio for the pair, AudioNone when nothing
// applies.
func (c AudioConfiguration) Resolve(g gestures.Gesture, a gestures.Action) Audio {
	if !c.Enabled {
		return AudioNone
	}
	if v, ok := c.Pairs[Trigger{Gesture: g, Action: a}]; ok {
		return v
	}
	if g != gestures.GestureTap && g != gestures.GestureRepeatPress {
		return AudioNone
	}
	switch {
	case a.IsDelete():
		return c.Delete
	case a.IsInput():
		return c.Input
	}
	return AudioNone
}

// HapticConfiguration decides which haptic fires for a pair. Explicit
// pair entries win; otherwise long presses get LongPress and, when
// tap feedback is enabled, taps on any key get Tap.
type HapticConfiguration struct {
	Enabled   bool
	TapFeed   bool
	Tap       Haptic
	LongPress Haptic
	Pairs     map[Trigger]Haptic
}

// StandardHapticConfiguration fires on long press only; per-tap
// haptics are off by default since they drain the battery.
func StandardHapticConfiguration() HapticConfiguration {
	return HapticConfiguration{
		Enabled:   true,
		Tap:       HapticLightImpact,
		LongPress: HapticMediumImpact,
	}
}

// DisabledHapticConfiguration resolves everything to None.
func DisabledHapticConfiguration() HapticConfiguration {
	return HapticConfiguration{}
}

// Resolve returns the haptic for the pair, HapticNone when nothing
// applies.
func (c HapticConfiguration) Resolve(g gestures.Gesture, a gestures.Action) Haptic {
	if !c.Enabled {
		return HapticNone
	}
	if v, ok := c.Pairs[Trigger{Gesture: g, Action: a}]; ok {
		return v
	}
	switch g {
	case gestures.GestureLongPress:
		return c.LongPress
	case gestures.GestureTap:
		if c.TapFeed {
			return c.Tap
		}
	}
	return HapticNone
}
