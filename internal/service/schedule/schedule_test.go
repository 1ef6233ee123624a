package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name    string
		day     DayHours
		wantErr error
	}{
		{"valid window", DayHours{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "18:00"}, nil},
		{"closed day skips times", DayHours{DayOfWeek: 0, Closed: true}, nil},
		{"day too high", DayHours{DayOfWeek: 7, OpenTime: "09:00", CloseTime: "18:00"}, ErrInvalidDay},
		{"negative day", DayHours{DayOfWeek: -1, OpenTime: "09:00", CloseTime: "18:00"}, ErrInvalidDay},
		{"bad open time", DayHours{DayOfWeek: 2, OpenTime: "9am", CloseTime: "18:00"}, ErrInvalidTime},
		{"bad close time", DayHours{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "25:00"}, ErrInvalidTime},
		{"open equals close", DayHours{DayOfWeek: 3, OpenTime: "09:00", CloseTime: "09:00"}, ErrOpenAfterClose},
		{"open after close", DayHours{DayOfWeek: 3, OpenTime: "18:00", CloseTime: "09:00"}, ErrOpenAfterClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDay(tt.day)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("validateDay(%+v) = %v, want nil", tt.day, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("validateDay(%+v) = %v, want %v", tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestWithinWindow(t *testing.T) {
	at := func(v string) time.Time {
		clock, err := parseClock(v)
		if err != nil {
			t.Fatalf("parseClock(%q): %v", v, err)
		}
		return clock
	}

	tests := []struct {
		name  string
		clock string
		want  bool
	}{
		{"before opening", "08:59", false},
		{"at opening", "09:00", true},
		{"mid-day", "12:30", true},
		{"last minute inside", "17:59", true},
		{"at closing", "18:00", false},
		{"after closing", "20:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := withinWindow("09:00", "18:00", at(tt.clock))
			if err != nil {
				t.Fatalf("withinWindow: %v", err)
			}
			if got != tt.want {
				t.Fatalf("withinWindow(09:00, 18:00, %s) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}

func TestWithinWindowBadStoredTimes(t *testing.T) {
	if _, err := withinWindow("open", "18:00", time.Time{}); err == nil {
		t.Fatal("expected error for malformed stored open time")
	}
	if _, err := withinWindow("09:00", "late", time.Time{}); err == nil {
		t.Fatal("expected error for malformed stored close time")
	}
}
