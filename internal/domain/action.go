package domain

// ActionKind discriminates the transitions the store understands.
type ActionKind string

const (
	ActionIncrement     ActionKind = "increment_current"
	ActionDecrement     ActionKind = "decrement_current"
	ActionReset         ActionKind = "reset_current"
	ActionChangeSession ActionKind = "change_session"
)

// AdjustStep is the payload of the +5 MIN / -5 MIN controls, in seconds.
const AdjustStep = 300

// TickStep is the payload dispatched by each countdown tick, in seconds.
const TickStep = 1

// Action is one transition request. Payload is only read by Increment and Decrement.
type Action struct {
	Kind    ActionKind
	Payload int
}

// Increment adds seconds to the active session.
func Increment(seconds int) Action {
	return Action{Kind: ActionIncrement, Payload: seconds}
}

// Decrement removes seconds from the active session.
func Decrement(seconds int) Action {
	return Action{Kind: ActionDecrement, Payload: seconds}
}

// Reset restores the active session to its initial time.
func Reset() Action {
	return Action{Kind: ActionReset}
}

// ChangeSession toggles the active session.
func ChangeSession() Action {
	return Action{Kind: ActionChangeSession}
}
