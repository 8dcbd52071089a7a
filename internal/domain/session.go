package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSession is returned when a session name is neither pomodoro nor break.
var ErrUnknownSession = errors.New("unknown session")

// MaxTimeLeft is the ceiling for any session's remaining time, in seconds (60:00).
const MaxTimeLeft = 3600

// SessionName identifies one of the two timer modes.
type SessionName string

const (
	SessionPomodoro SessionName = "pomodoro"
	SessionBreak    SessionName = "break"
)

// ParseSessionName validates an externally supplied session name.
func ParseSessionName(s string) (SessionName, error) {
	switch n := SessionName(s); n {
	case SessionPomodoro, SessionBreak:
		return n, nil
	default:
		return "", fmt.Errorf("%w %q: must be one of pomodoro, break", ErrUnknownSession, s)
	}
}

// Label returns the heading shown above the clock.
func (n SessionName) Label() string {
	switch n {
	case SessionPomodoro:
		return "Pomodoro Timer"
	case SessionBreak:
		return "Break"
	default:
		return "Unknown"
	}
}

// Other returns the session that is not n.
func (n SessionName) Other() SessionName {
	if n == SessionPomodoro {
		return SessionBreak
	}
	return SessionPomodoro
}

// SessionRecord is the countdown state of one session. Times are in seconds.
type SessionRecord struct {
	Name        SessionName
	InitialTime int
	TimeLeft    int
}

// Progress returns the elapsed fraction of InitialTime, clamped to [0, 1].
// Time added beyond InitialTime reads as zero progress.
func (r SessionRecord) Progress() float64 {
	if r.InitialTime <= 0 || r.TimeLeft >= r.InitialTime {
		return 0
	}
	return 1 - float64(r.TimeLeft)/float64(r.InitialTime)
}

// IsFinished returns true once the countdown has reached zero.
func (r SessionRecord) IsFinished() bool {
	return r.TimeLeft <= 0
}

func newSessionRecord(name SessionName, initial int) SessionRecord {
	return SessionRecord{
		Name:        name,
		InitialTime: initial,
		TimeLeft:    initial,
	}
}
