package domain

import "fmt"

// Clock is a formatted minutes/seconds pair, each zero-padded to two digits.
type Clock struct {
	Mins string
	Secs string
}

// FormatTime splits seconds into a Clock. 3600 formats as 60:00.
func FormatTime(seconds int) Clock {
	if seconds < 0 {
		seconds = 0
	}
	return Clock{
		Mins: fmt.Sprintf("%02d", seconds/60),
		Secs: fmt.Sprintf("%02d", seconds%60),
	}
}

// String returns the clock as mm:ss.
func (c Clock) String() string {
	return c.Mins + ":" + c.Secs
}
