package commands

import "testing"

func TestHasMarker(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"trip /by 2023-08-31 12:00", true},
		{"café /by 2023-08-31 12:00", true},
		{"日本 /by 明日", true},
		{"trip_ /by _x", true},
		{"trip /by  2023-08-31", false},
		{"trip. /by 2023-08-31", false},
		{" /by 2023-08-31", false},
		{"trip /by ", false},
		{"trip  /by  x /by 2023", true},
		{"trip", false},
	}
	for _, tt := range tests {
		if got := hasMarker(tt.input, bySep); got != tt.want {
			t.Errorf("hasMarker(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
