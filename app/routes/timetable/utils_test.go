package timetable

import "testing"

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"08:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"12:60", false},
		{"8:00", false},
		{"0800", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateTimeFormat(tt.in); got != tt.want {
			t.Fatalf("ValidateTimeFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateDayOfWeek(t *testing.T) {
	for _, day := range []string{"monday", "Friday", "SUNDAY"} {
		if !ValidateDayOfWeek(day) {
			t.Fatalf("expected %q to be a valid day", day)
		}
	}
	for _, day := range []string{"someday", "mon", ""} {
		if ValidateDayOfWeek(day) {
			t.Fatalf("expected %q to be invalid", day)
		}
	}
}
