package client

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"national mobile", "11 91234-5678", "+5511912345678"},
		{"already e164", "+5511912345678", "+5511912345678"},
		{"foreign with code", "+14155552671", "+14155552671"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.in)
			if err != nil {
				t.Fatalf("normalizePhone(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	for _, in := range []string{"", "123", "not a number"} {
		if _, err := normalizePhone(in); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("normalizePhone(%q) err = %v, want ErrInvalidPhone", in, err)
		}
	}
}
