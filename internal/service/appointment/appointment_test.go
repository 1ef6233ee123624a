package appointment

import (
	"errors"
	"testing"
)

func TestValidateDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		wantErr error
	}{
		{"valid", "2026-09-15", "14:30", nil},
		{"midnight", "2026-01-01", "00:00", nil},
		{"bad date order", "15-09-2026", "14:30", ErrInvalidDate},
		{"date with time", "2026-09-15T14:30", "14:30", ErrInvalidDate},
		{"bad time", "2026-09-15", "9am", ErrInvalidTime},
		{"time with seconds", "2026-09-15", "14:30:00", ErrInvalidTime},
		{"empty date", "", "14:30", ErrInvalidDate},
		{"empty time", "2026-09-15", "", ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDateTime(tt.date, tt.time)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
