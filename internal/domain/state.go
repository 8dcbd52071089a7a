package domain

// Default session lengths in seconds. They are fixed for the lifetime of a record.
const (
	PomodoroInitialTime = 1500
	BreakInitialTime    = 300
)

// AppState holds both session records and which one is active.
// It is a value type: transitions return a new AppState.
type AppState struct {
	Current  SessionName
	Pomodoro SessionRecord
	Break    SessionRecord
}

// InitialState returns the startup state: pomodoro active, both records full.
func InitialState() AppState {
	return AppState{
		Current:  SessionPomodoro,
		Pomodoro: newSessionRecord(SessionPomodoro, PomodoroInitialTime),
		Break:    newSessionRecord(SessionBreak, BreakInitialTime),
	}
}

// Active returns the record named by Current.
func (s AppState) Active() SessionRecord {
	return s.Session(s.Current)
}

// Session returns the record for name. Unknown names yield the zero record.
func (s AppState) Session(name SessionName) SessionRecord {
	switch name {
	case SessionPomodoro:
		return s.Pomodoro
	case SessionBreak:
		return s.Break
	default:
		return SessionRecord{}
	}
}

// withActive returns a copy of s with the active record replaced.
func (s AppState) withActive(r SessionRecord) AppState {
	switch s.Current {
	case SessionPomodoro:
		s.Pomodoro = r
	case SessionBreak:
		s.Break = r
	}
	return s
}

// Apply computes the state that follows action. It has no side effects.
// Unknown action kinds return s unchanged.
func Apply(s AppState, action Action) AppState {
	active := s.Active()

	switch action.Kind {
	case ActionIncrement:
		active.TimeLeft = min(active.TimeLeft+action.Payload, MaxTimeLeft)
		return s.withActive(active)
	case ActionDecrement:
		active.TimeLeft = max(active.TimeLeft-action.Payload, 0)
		return s.withActive(active)
	case ActionReset:
		active.TimeLeft = active.InitialTime
		return s.withActive(active)
	case ActionChangeSession:
		s.Current = s.Current.Other()
		return s
	default:
		return s
	}
}
