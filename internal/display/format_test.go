package display

import (
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		noun string
		want string
	}{
		{"zero", 0, "file", "0 files"},
		{"one", 1, "file", "1 file"},
		{"many", 12, "rename", "12 renames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.n, tt.noun)
			if got != tt.want {
				t.Errorf("Count(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
			}
		})
	}
}
