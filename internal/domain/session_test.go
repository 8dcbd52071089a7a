package domain

import (
	"errors"
	"testing"
)

func TestParseSessionName(t *testing.T) {
	tests := []struct {
		in      string
		want    SessionName
		wantErr bool
	}{
		{"pomodoro", SessionPomodoro, false},
		{"break", SessionBreak, false},
		{"Pomodoro", "", true},
		{"", "", true},
		{"long_break", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSessionName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSession) {
					t.Errorf("ParseSessionName(%q) error = %v, want ErrUnknownSession", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSessionName(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSessionName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSessionName_Label(t *testing.T) {
	if got := SessionPomodoro.Label(); got != "Pomodoro Timer" {
		t.Errorf("pomodoro label = %q", got)
	}
	if got := SessionBreak.Label(); got != "Break" {
		t.Errorf("break label = %q", got)
	}
}

func TestSessionRecord_Progress(t *testing.T) {
	tests := []struct {
		name     string
		timeLeft int
		want     float64
	}{
		{"full", 1500, 0},
		{"half", 750, 0.5},
		{"done", 0, 1},
		{"extended", 1800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SessionRecord{Name: SessionPomodoro, InitialTime: 1500, TimeLeft: tt.timeLeft}
			if got := r.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
