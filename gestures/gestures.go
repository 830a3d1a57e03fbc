// Package gestures defines the gesture and action classifications the
// keyboard reports for user input. Feedback handlers and key routing
// key off (Gesture, Action) pairs.
package gestures

// Gesture classifies how the user touched a key.
type Gesture string

const (
	GesturePress       Gesture = "press"
	GestureRelease     Gesture = "release"
	GestureTap         Gesture = "tap"
	GestureDoubleTap   Gesture = "double_tap"
	GestureLongPress   Gesture = "long_press"
	GestureRepeatPress Gesture = "repeat_press"
)

// Action classifies what a key does when triggered.
type Action string

const (
	ActionCharacter Action = "character"
	ActionEmoji     Action = "emoji"
	ActionBackspace Action = "backspace"
	ActionSpace     Action = "space"
	ActionReturn    Action = "return"
	ActionShift     Action = "shift"
	ActionTab       Action = "tab"
	ActionDismiss   Action = "dismiss"
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionNone      Action = "none"
)

// IsInput reports whether the action inserts content into the text
// document, as opposed to navigating or editing.
func (a Action) IsInput() bool {
	switch a {
	case ActionCharacter, ActionEmoji, ActionSpace, ActionReturn, ActionTab:
		return true
	}
	return false
}

// IsDelete reports whether the action removes content.
func (a Action) IsDelete() bool { return a == ActionBackspace }
