package components

import (
	"strings"
	"testing"
)

func TestProgressBar_Cells(t *testing.T) {
	tests := []struct {
		value         float64
		width         int
		filled, empty int
	}{
		{0, 20, 0, 20},
		{50, 20, 10, 10},
		{100, 20, 20, 0},
		{150, 20, 20, 0},
		{-5, 20, 0, 20},
		{11.2, 10, 1, 9},
	}
	for _, tt := range tests {
		f, e := NewProgressBar("", tt.value, false, tt.width).Cells(tt.width)
		if f != tt.filled || e != tt.empty {
			t.Errorf("Cells(%v, %d) = %d/%d, want %d/%d", tt.value, tt.width, f, e, tt.filled, tt.empty)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	out := NewProgressBar("travel", 42.5, true, 40).View()
	if !strings.Contains(out, "travel") {
		t.Errorf("View() = %q, missing label", out)
	}
	if !strings.Contains(out, "42.5%") {
		t.Errorf("View() = %q, missing percent", out)
	}
}
