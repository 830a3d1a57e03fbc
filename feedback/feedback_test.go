package feedback

import (
	"bytes"
	"testing"

	"github.com/keyboardkit/keyboardkit/gestures"
)

type recordingAudio struct {
	played []Audio
}

func (r *recordingAudio) Play(a Audio) { r.played = append(r.played, a) }

type recordingHaptic struct {
	fired []Haptic
}

func (r *recordingHaptic) Trigger(h Haptic) { r.fired = append(r.fired, h) }

func TestTriggerFeedbackComposesBothSubTriggers(t *testing.T) {
	audio := &recordingAudio{}
	haptic := &recordingHaptic{}
	h := NewStandardHandler(audio, haptic)
	h.Haptic.TapFeed = true

	h.TriggerFeedback(gestures.GestureTap, gestures.ActionCharacter)

	if len(audio.played) != 1 || audio.played[0] != AudioInput {
		t.Fatalf("audio played = %v, want [input]", audio.played)
	}
	if len(haptic.fired) != 1 || haptic.fired[0] != HapticLightImpact {
		t.Fatalf("haptic fired = %v, want [light_impact]", haptic.fired)
	}

	// Sub-triggers alone reproduce the same effects.
	audio2 := &recordingAudio{}
	haptic2 := &recordingHaptic{}
	h2 := NewStandardHandler(audio2, haptic2)
	h2.Haptic.TapFeed = true
	h2.TriggerAudioFeedback(gestures.GestureTap, gestures.ActionCharacter)
	h2.TriggerHapticFeedback(gestures.GestureTap, gestures.ActionCharacter)

	if len(audio2.played) != len(audio.played) || audio2.played[0] != audio.played[0] {
		t.Fatalf("audio-only trigger diverged: %v vs %v", audio2.played, audio.played)
	}
	if len(haptic2.fired) != len(haptic.fired) || haptic2.fired[0] != haptic.fired[0] {
		t.Fatalf("haptic-only trigger diverged: %v vs %v", haptic2.fired, haptic.fired)
	}
}

func TestUnmappedPairIsSilentNoop(t *testing.T) {
	audio := &recordingAudio{}
	haptic := &recordingHaptic{}
	h := NewStandardHandler(audio, haptic)

	h.TriggerFeedback(gestures.GestureRelease, gestures.ActionShift)

	if len(audio.played) != 0 {
		t.Fatalf("audio played = %v, want none", audio.played)
	}
	if len(haptic.fired) != 0 {
		t.Fatalf("haptic fired = %v, want none", haptic.fired)
	}
}

func TestDeleteResolvesToDeleteAudio(t *testing.T) {
	cfg := StandardAudioConfiguration()

	if got := cfg.Resolve(gestures.GestureTap, gestures.ActionBackspace); got != AudioDelete {
		t.Fatalf("backspace audio = %q, want delete", got)
	}
	if got := cfg.Resolve(gestures.GestureRepeatPress, gestures.ActionBackspace); got != AudioDelete {
		t.Fatalf("repeat backspace audio = %q, want delete", got)
	}
	if got := cfg.Resolve(gestures.GestureTap, gestures.ActionEmoji); got != AudioInput {
		t.Fatalf("emoji audio = %q, want input", got)
	}
}

func TestExplicitPairOverridesDefaults(t *testing.T) {
	cfg := StandardAudioConfiguration()
	cfg.Pairs = map[Trigger]Audio{
		{Gesture: gestures.GestureTap, Action: gestures.ActionSpace}: AudioSystem,
	}

	if got := cfg.Resolve(gestures.GestureTap, gestures.ActionSpace); got != AudioSystem {
		t.Fatalf("space audio = %q, want system", got)
	}
	// Other pairs keep their default resolution.
	if got := cfg.Resolve(gestures.GestureTap, gestures.ActionCharacter); got != AudioInput {
		t.Fatalf("character audio = %q, want input", got)
	}
}

func TestDisabledConfigurationsResolveNone(t *testing.T) {
	a := DisabledAudioConfiguration()
	if got := a.Resolve(gestures.GestureTap, gestures.ActionCharacter); got != AudioNone {
		t.Fatalf("disabled audio = %q, want none", got)
	}
	h := DisabledHapticConfiguration()
	if got := h.Resolve(gestures.GestureLongPress, gestures.ActionSpace); got != HapticNone {
		t.Fatalf("disabled haptic = %q, want none", got)
	}
}

func TestLongPressHaptic(t *testing.T) {
	cfg := StandardHapticConfiguration()

	if got := cfg.Resolve(gestures.GestureLongPress, gestures.ActionSpace); got != HapticMediumImpact {
		t.Fatalf("long press haptic = %q, want medium_impact", got)
	}
	// Tap haptics are off unless opted in.
	if got := cfg.Resolve(gestures.GestureTap, gestures.ActionCharacter); got != HapticNone {
		t.Fatalf("tap haptic = %q, want none", got)
	}
}

func TestNilEnginesAreSafe(t *testing.T) {
	h := NewStandardHandler(nil, nil)
	h.TriggerFeedback(gestures.GestureTap, gestures.ActionCharacter)
}

func TestBellAudioEngine(t *testing.T) {
	var buf bytes.Buffer
	e := BellAudioEngine{W: &buf}

	e.Play(AudioInput)
	if buf.String() != "\a" {
		t.Fatalf("bell output = %q, want \\a", buf.String())
	}

	buf.Reset()
	e.Play(AudioNone)
	if buf.Len() != 0 {
		t.Fatal("AudioNone should not ring the bell")
	}
}
